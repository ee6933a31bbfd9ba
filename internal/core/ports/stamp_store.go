package ports

import "github.com/simark/many-buildroots/internal/core/domain"

// StampStore defines the interface for prepare stamps, the markers that
// record a build directory as successfully prepared.
//
//go:generate mockgen -source=stamp_store.go -destination=mocks/mock_stamp_store.go -package=mocks
type StampStore interface {
	// Load retrieves the stamp from the given build directory.
	// Returns nil, nil if no stamp exists.
	Load(buildDir string) (*domain.PrepareStamp, error)

	// Save writes the stamp into the given build directory.
	Save(buildDir string, stamp domain.PrepareStamp) error

	// Invalidate removes the stamp, if any. Called before re-running
	// prepare so a failed prepare cannot leave a stale stamp behind.
	Invalidate(buildDir string) error
}
