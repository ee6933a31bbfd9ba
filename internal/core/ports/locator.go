package ports

import "github.com/simark/many-buildroots/internal/core/domain"

// Locator defines the interface for discovering a target's built toolchain.
//
//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type Locator interface {
	// Locate scans the target's toolchain directory and derives the
	// cross-toolchain environment from it.
	//
	// A missing directory, no candidate compiler, or several candidate
	// compilers all return domain.ErrToolchainNotFound; callers decide
	// whether that is fatal.
	Locate(target domain.Target) (*domain.ToolchainEnv, error)
}
