package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/simark/many-buildroots/internal/adapters/config"
	"github.com/simark/many-buildroots/internal/adapters/logger"
	"github.com/simark/many-buildroots/internal/adapters/shell"
	"github.com/simark/many-buildroots/internal/adapters/state"
	"github.com/simark/many-buildroots/internal/adapters/toolchain"
	"github.com/simark/many-buildroots/internal/core/ports"
)

// NodeID is the unique identifier for the application Graft node.
const NodeID graft.ID = "app.components"

// Components bundles the fully wired application with the pieces main
// needs alongside it.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			config.NodeID,
			shell.NodeID,
			shell.SubshellNodeID,
			toolchain.NodeID,
			state.StampNodeID,
			state.StatusNodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			subshell, err := graft.Dep[ports.Subshell](ctx)
			if err != nil {
				return nil, err
			}
			locator, err := graft.Dep[ports.Locator](ctx)
			if err != nil {
				return nil, err
			}
			stamps, err := graft.Dep[ports.StampStore](ctx)
			if err != nil {
				return nil, err
			}
			status, err := graft.Dep[ports.StatusStore](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(loader, executor, log, locator, stamps, status, subshell),
				Logger: log,
			}, nil
		},
	})
}
