package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/simark/many-buildroots/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the executor Graft node.
	NodeID graft.ID = "adapter.executor"
	// SubshellNodeID is the unique identifier for the subshell Graft node.
	SubshellNodeID graft.ID = "adapter.subshell"
)

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Executor, error) {
			return NewExecutor(), nil
		},
	})

	graft.Register(graft.Node[ports.Subshell]{
		ID:        SubshellNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Subshell, error) {
			return NewSubshell(), nil
		},
	})
}
