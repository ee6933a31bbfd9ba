// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/simark/many-buildroots/internal/adapters/config"
	_ "github.com/simark/many-buildroots/internal/adapters/logger"
	_ "github.com/simark/many-buildroots/internal/adapters/shell"
	_ "github.com/simark/many-buildroots/internal/adapters/state"
	_ "github.com/simark/many-buildroots/internal/adapters/toolchain"
	// Register the app node.
	_ "github.com/simark/many-buildroots/internal/app"
)
