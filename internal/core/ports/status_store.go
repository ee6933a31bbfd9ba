package ports

import "github.com/simark/many-buildroots/internal/core/domain"

// StatusStore defines the interface for the durable per-target status
// records of a pipeline. Stores are stateless; the project root is passed
// explicitly on every call.
//
//go:generate mockgen -source=status_store.go -destination=mocks/mock_status_store.go -package=mocks
type StatusStore interface {
	// Append adds one record to the pipeline's status file under root.
	// Records are append-only; the file accumulates one line per
	// (run, target).
	Append(root string, pipeline domain.Pipeline, record domain.StatusRecord) error

	// Load reads all records for a pipeline, oldest first.
	// Returns nil, nil if no status file exists yet.
	Load(root string, pipeline domain.Pipeline) ([]domain.StatusRecord, error)
}
