package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/simark/many-buildroots/cmd/many-buildroots/commands"
	"github.com/simark/many-buildroots/internal/app"
	"github.com/simark/many-buildroots/internal/build"
	"github.com/simark/many-buildroots/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockApp struct {
	runBatchFunc    func(ctx context.Context, targetNames []string, opts app.RunOptions) error
	listTargetsFunc func(ctx context.Context) error
	shellFunc       func(ctx context.Context, targetNames []string) error
}

func (m *mockApp) RunBatch(ctx context.Context, targetNames []string, opts app.RunOptions) error {
	if m.runBatchFunc != nil {
		return m.runBatchFunc(ctx, targetNames, opts)
	}
	return nil
}

func (m *mockApp) ListTargets(ctx context.Context) error {
	if m.listTargetsFunc != nil {
		return m.listTargetsFunc(ctx)
	}
	return nil
}

func (m *mockApp) Shell(ctx context.Context, targetNames []string) error {
	if m.shellFunc != nil {
		return m.shellFunc(ctx, targetNames)
	}
	return nil
}

func TestCommands_BuildToolchains(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions
		var capturedTargets []string
		called := false

		mock := &mockApp{
			runBatchFunc: func(_ context.Context, targetNames []string, opts app.RunOptions) error {
				capturedOpts = opts
				capturedTargets = targetNames
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build-toolchains", "aarch64", "riscv64", "--clean", "--keep-going", "-j", "8", "-v"})

		// We don't care about output here, just flag propagation
		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, domain.PipelineToolchain, capturedOpts.Pipeline)
		assert.Equal(t, domain.ModePrepareAndBuild, capturedOpts.Mode)
		assert.True(t, capturedOpts.Clean)
		assert.True(t, capturedOpts.KeepGoing)
		assert.True(t, capturedOpts.Verbose)
		assert.Equal(t, 8, capturedOpts.Jobs)
		assert.Equal(t, []string{"aarch64", "riscv64"}, capturedTargets)
	})

	t.Run("runs every target when none are named", func(t *testing.T) {
		var capturedTargets []string
		called := false

		mock := &mockApp{
			runBatchFunc: func(_ context.Context, targetNames []string, _ app.RunOptions) error {
				capturedTargets = targetNames
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build-toolchains"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Empty(t, capturedTargets)
	})

	t.Run("propagates the build failure sentinel", func(t *testing.T) {
		mock := &mockApp{
			runBatchFunc: func(_ context.Context, _ []string, _ app.RunOptions) error {
				return domain.ErrBuildFailed
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build-toolchains", "aarch64"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBuildFailed)
	})
}

func TestCommands_InitToolchains(t *testing.T) {
	var capturedOpts app.RunOptions

	mock := &mockApp{
		runBatchFunc: func(_ context.Context, _ []string, opts app.RunOptions) error {
			capturedOpts = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"init-toolchains", "-s", "/src/buildroot", "microblazeel"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.PipelineToolchain, capturedOpts.Pipeline)
	assert.Equal(t, domain.ModePrepareOnly, capturedOpts.Mode)
	assert.Equal(t, "/src/buildroot", capturedOpts.SrcDir)
}

func TestCommands_GDB(t *testing.T) {
	t.Run("passes configure options", func(t *testing.T) {
		var capturedOpts app.RunOptions

		mock := &mockApp{
			runBatchFunc: func(_ context.Context, _ []string, opts app.RunOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build-gdb", "--configure-opts=--disable-sim", "aarch64"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.PipelineGDB, capturedOpts.Pipeline)
		assert.Equal(t, domain.ModePrepareAndBuild, capturedOpts.Mode)
		assert.Equal(t, "--disable-sim", capturedOpts.ConfigureOpts)
	})

	t.Run("maps init-gdb to prepare only", func(t *testing.T) {
		var capturedOpts app.RunOptions

		mock := &mockApp{
			runBatchFunc: func(_ context.Context, _ []string, opts app.RunOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"init-gdb", "xtensa"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.PipelineGDB, capturedOpts.Pipeline)
		assert.Equal(t, domain.ModePrepareOnly, capturedOpts.Mode)
		assert.Zero(t, capturedOpts.Jobs)
	})
}

func TestCommands_OutputMode(t *testing.T) {
	t.Run("defaults to auto", func(t *testing.T) {
		var capturedOpts app.RunOptions

		mock := &mockApp{
			runBatchFunc: func(_ context.Context, _ []string, opts app.RunOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build-toolchains", "aarch64"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "auto", capturedOpts.OutputMode)
	})

	t.Run("ci forces linear", func(t *testing.T) {
		var capturedOpts app.RunOptions

		mock := &mockApp{
			runBatchFunc: func(_ context.Context, _ []string, opts app.RunOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build-toolchains", "--ci", "aarch64"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "linear", capturedOpts.OutputMode)
	})
}

func TestCommands_ListTargets(t *testing.T) {
	called := false

	mock := &mockApp{
		listTargetsFunc: func(_ context.Context) error {
			called = true
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"list-targets"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, called)
}

func TestCommands_Shell(t *testing.T) {
	t.Run("passes target names", func(t *testing.T) {
		var capturedTargets []string

		mock := &mockApp{
			shellFunc: func(_ context.Context, targetNames []string) error {
				capturedTargets = targetNames
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"shell", "aarch64"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"aarch64"}, capturedTargets)
	})

	t.Run("returns error when no toolchain is built", func(t *testing.T) {
		mock := &mockApp{
			shellFunc: func(_ context.Context, _ []string) error {
				return errors.New("toolchain not found")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"shell"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "toolchain not found")
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
