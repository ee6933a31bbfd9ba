package ports

import "context"

//go:generate mockgen -source=subshell.go -destination=mocks/mock_subshell.go -package=mocks

// Subshell opens an interactive shell with a prepared environment.
type Subshell interface {
	// Open runs the user's shell in dir with env overlaid onto the parent
	// environment. It returns once the shell exits; a non-zero exit from
	// the shell itself is not an error.
	Open(ctx context.Context, dir string, env map[string]string) error
}
