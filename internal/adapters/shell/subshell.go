package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"github.com/simark/many-buildroots/internal/core/domain"
	"golang.org/x/term"
)

// Subshell implements ports.Subshell by running the user's shell on a pty.
type Subshell struct{}

// NewSubshell creates a new Subshell.
func NewSubshell() *Subshell {
	return &Subshell{}
}

// Open spawns $SHELL (falling back to /bin/bash) in dir with env overlaid
// onto the parent environment and wires it to the current terminal until it
// exits.
func (s *Subshell) Open(ctx context.Context, dir string, env map[string]string) error {
	shellPath := os.Getenv("SHELL")
	if shellPath == "" {
		shellPath = "/bin/bash"
	}

	cmd := exec.CommandContext(ctx, shellPath)
	cmd.Dir = dir
	cmd.Env = resolveEnvironment(os.Environ(), env)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return errors.Join(domain.ErrShellStartFailed, err)
	}
	defer func() { _ = ptmx.Close() }()

	// Track terminal size changes, seeding the initial size.
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	defer func() {
		signal.Stop(winch)
		close(winch)
	}()
	go func() {
		for range winch {
			_ = pty.InheritSize(os.Stdin, ptmx)
		}
	}()
	winch <- syscall.SIGWINCH

	// Raw mode hands line editing and signal keys to the inner shell.
	if oldState, rawErr := term.MakeRaw(int(os.Stdin.Fd())); rawErr == nil {
		defer func() { _ = term.Restore(int(os.Stdin.Fd()), oldState) }()
	}

	go func() { _, _ = io.Copy(ptmx, os.Stdin) }()
	_, _ = io.Copy(os.Stdout, ptmx)

	// The shell's own exit status is the user's business, not ours.
	var exitErr *exec.ExitError
	if waitErr := cmd.Wait(); waitErr != nil && !errors.As(waitErr, &exitErr) {
		return waitErr
	}
	return nil
}
