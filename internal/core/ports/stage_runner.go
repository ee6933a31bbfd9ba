package ports

import (
	"context"

	"github.com/simark/many-buildroots/internal/core/domain"
)

// StageRunner defines the interface for executing one pipeline stage.
//
//go:generate mockgen -source=stage_runner.go -destination=mocks/mock_stage_runner.go -package=mocks
type StageRunner interface {
	// Run executes one stage for one target: it acquires the stage's
	// working directory, builds the external command lines, runs them
	// with output captured to the stage log (and streamed live in
	// verbose mode), and interprets the exit status.
	//
	// The returned result always carries the log path when a log was
	// opened, also on failure.
	Run(ctx context.Context, req domain.StageRequest) (domain.StageResult, error)
}
