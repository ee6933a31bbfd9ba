package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/simark/many-buildroots/internal/core/domain"
	"go.trai.ch/zerr"
)

// StampStore implements ports.StampStore with a JSON file inside each build
// directory.
type StampStore struct{}

// NewStampStore creates a new StampStore.
func NewStampStore() *StampStore {
	return &StampStore{}
}

// Load reads the prepare stamp from buildDir. A missing stamp is not an
// error; a corrupt one is, and the caller decides whether to treat it as
// merely stale.
func (s *StampStore) Load(buildDir string) (*domain.PrepareStamp, error) {
	//nolint:gosec // Path is derived from the project layout
	data, err := os.ReadFile(filepath.Join(buildDir, domain.StampFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStampReadFailed.Error())
	}

	var stamp domain.PrepareStamp
	if err := json.Unmarshal(data, &stamp); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStampUnmarshalFailed.Error())
	}

	return &stamp, nil
}

// Save writes the prepare stamp into buildDir.
func (s *StampStore) Save(buildDir string, stamp domain.PrepareStamp) error {
	data, err := json.MarshalIndent(stamp, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStampMarshalFailed.Error())
	}

	path := filepath.Join(buildDir, domain.StampFileName)
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStampWriteFailed.Error())
	}

	return nil
}

// Invalidate removes the prepare stamp from buildDir, if present.
func (s *StampStore) Invalidate(buildDir string) error {
	err := os.Remove(filepath.Join(buildDir, domain.StampFileName))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.Wrap(err, domain.ErrStampWriteFailed.Error())
	}
	return nil
}
