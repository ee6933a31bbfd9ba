package state

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/simark/many-buildroots/internal/core/ports"
)

const (
	// StatusNodeID is the unique identifier for the status store Graft node.
	StatusNodeID graft.ID = "adapter.status_store"
	// StampNodeID is the unique identifier for the stamp store Graft node.
	StampNodeID graft.ID = "adapter.stamp_store"
)

func init() {
	graft.Register(graft.Node[ports.StatusStore]{
		ID:        StatusNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StatusStore, error) {
			return NewStatusStore(), nil
		},
	})

	graft.Register(graft.Node[ports.StampStore]{
		ID:        StampNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StampStore, error) {
			return NewStampStore(), nil
		},
	})
}
