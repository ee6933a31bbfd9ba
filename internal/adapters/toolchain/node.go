package toolchain

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/simark/many-buildroots/internal/core/ports"
)

// NodeID is the unique identifier for the toolchain locator Graft node.
const NodeID graft.ID = "adapter.toolchain_locator"

func init() {
	graft.Register(graft.Node[ports.Locator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Locator, error) {
			return NewLocator(), nil
		},
	})
}
