package ports

import (
	"context"
	"io"

	"github.com/simark/many-buildroots/internal/core/domain"
)

// Executor defines the interface for running external commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command and blocks until it exits.
	//
	// The command's stdout and stderr both go to output, preserving the
	// process's own interleaving. Cancelling the context kills the
	// command's whole process group.
	//
	// A non-zero exit is reported as an error carrying the exit code.
	Execute(ctx context.Context, cmd domain.Command, output io.Writer) error
}
