// Package ports defines the core interfaces for the application.
package ports

import "github.com/simark/many-buildroots/internal/core/domain"

// ConfigLoader defines the interface for loading the target registry.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration starting from the given working
	// directory and returns the project, rooted at the directory the
	// configuration file was found in.
	Load(cwd string) (*domain.Project, error)

	// DiscoverRoot walks up from cwd to find the project root.
	// Returns the directory containing buildroots.yaml.
	DiscoverRoot(cwd string) (string, error)
}
