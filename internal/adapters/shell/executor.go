// Package shell runs build commands as subprocesses.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/simark/many-buildroots/internal/core/domain"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct{}

// NewExecutor creates a new Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Execute runs cmd and waits for it to complete. Stdout and stderr both go
// to output; handing os/exec the same writer for both keeps the interleaving
// the kernel produced instead of re-serializing it through pipes.
func (e *Executor) Execute(ctx context.Context, cmd domain.Command, output io.Writer) error {
	if len(cmd.Args) == 0 {
		return zerr.With(domain.ErrCommandStartFailed, "reason", "empty command")
	}

	proc := exec.Command(cmd.Args[0], cmd.Args[1:]...) // #nosec G204 -- commands are assembled from the configuration
	proc.Dir = cmd.Dir
	proc.Env = resolveEnvironment(os.Environ(), cmd.Env)
	proc.Stdout = output
	proc.Stderr = output

	// Run the command in its own process group so that cancellation can
	// take out make's whole descendant tree, not just make itself.
	proc.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := proc.Start(); err != nil {
		werr := errors.Join(domain.ErrCommandStartFailed, err)
		return zerr.With(werr, "command", cmd.Args[0])
	}

	pgid := proc.Process.Pid
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = syscall.Kill(-pgid, syscall.SIGKILL)
		case <-done:
		}
	}()

	if err := proc.Wait(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		werr := errors.Join(domain.ErrCommandFailed, err)
		werr = zerr.With(werr, "command", strings.Join(cmd.Args, " "))
		return zerr.With(werr, "exit_code", exitCode)
	}

	return nil
}

// resolveEnvironment overlays overrides onto the parent environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return sysEnv
	}

	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}
