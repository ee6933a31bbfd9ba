package ports

import (
	"context"

	"github.com/simark/many-buildroots/internal/core/domain"
)

// PipelineRunner defines the interface for running one target's full
// prepare→compile pipeline.
//
//go:generate mockgen -source=pipeline.go -destination=mocks/mock_pipeline.go -package=mocks
type PipelineRunner interface {
	// Execute runs the pipeline for one target and converts every
	// per-target failure into a terminal result. Nothing escapes as an
	// error except environment faults that must abort the whole batch.
	Execute(ctx context.Context, target domain.Target, opts domain.RunOptions) (domain.Result, error)
}
