package pipeline_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/simark/many-buildroots/internal/core/domain"
	"github.com/simark/many-buildroots/internal/core/ports/mocks"
	"github.com/simark/many-buildroots/internal/engine/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type controllerTestMocks struct {
	stages  *mocks.MockStageRunner
	locator *mocks.MockLocator
	stamps  *mocks.MockStampStore
}

func setupControllerTest(t *testing.T) (*pipeline.Controller, controllerTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := controllerTestMocks{
		stages:  mocks.NewMockStageRunner(ctrl),
		locator: mocks.NewMockLocator(ctrl),
		stamps:  mocks.NewMockStampStore(ctrl),
	}
	return pipeline.NewController(m.stages, m.locator, m.stamps), m
}

func buildTarget(t *testing.T) domain.Target {
	t.Helper()
	layout := domain.NewLayout(t.TempDir())
	return domain.Target{
		Name:         "aarch64",
		Defconfig:    "qemu_aarch64_virt_defconfig",
		BuildDir:     layout.BuildDir("aarch64"),
		ToolchainDir: layout.ToolchainDir("aarch64"),
		GDBBuildDir:  layout.GDBBuildDir("aarch64"),
	}
}

// prepared simulates the directory a finished prepare stage leaves behind.
func prepared(t *testing.T, dir, artifact string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, artifact), []byte("# generated\n"), domain.FilePerm))
}

func toolchainOpts() domain.RunOptions {
	return domain.RunOptions{
		Pipeline: domain.PipelineToolchain,
		Mode:     domain.ModePrepareAndBuild,
		Settings: domain.Settings{SrcDir: "/src/buildroot"},
		Jobs:     4,
	}
}

func gdbOpts() domain.RunOptions {
	return domain.RunOptions{
		Pipeline: domain.PipelineGDB,
		Mode:     domain.ModePrepareAndBuild,
		Settings: domain.Settings{SrcDir: "/src/binutils-gdb", ConfigureOpts: "--enable-gdbserver --disable-sim"},
		Jobs:     4,
	}
}

// captureStages records every stage request handed to the runner.
func captureStages(m controllerTestMocks, got *[]domain.StageRequest, times int, err error) {
	m.stages.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.StageRequest) (domain.StageResult, error) {
			*got = append(*got, req)
			return domain.StageResult{LogPath: "/logs/" + string(req.Stage) + ".log"}, err
		},
	).Times(times)
}

func TestController_FreshPrepareAndBuild(t *testing.T) {
	c, m := setupControllerTest(t)
	target := buildTarget(t)
	opts := toolchainOpts()
	print := pipeline.Fingerprint(opts.Pipeline, target, opts.Settings, nil)

	m.stamps.EXPECT().Load(target.BuildDir).Return(nil, nil)
	m.stamps.EXPECT().Invalidate(target.BuildDir).Return(nil)

	var stages []domain.StageRequest
	captureStages(m, &stages, 2, nil)

	m.stamps.EXPECT().Save(target.BuildDir, gomock.Any()).DoAndReturn(
		func(_ string, stamp domain.PrepareStamp) error {
			assert.Equal(t, print, stamp.Fingerprint)
			assert.False(t, stamp.CreatedAt.IsZero())
			return nil
		},
	)

	res, err := c.Execute(context.Background(), target, opts)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, res.Outcome)
	assert.Equal(t, target.Name, res.Target)
	assert.NotZero(t, res.Duration)

	require.Len(t, stages, 2)
	assert.Equal(t, domain.StagePrepare, stages[0].Stage)
	assert.Nil(t, stages[0].Toolchain)
	assert.False(t, stages[0].Clean)
	assert.Equal(t, domain.StageCompile, stages[1].Stage)
	assert.Equal(t, opts.Jobs, stages[1].Jobs)
}

func TestController_ValidStampSkipsPrepare(t *testing.T) {
	c, m := setupControllerTest(t)
	target := buildTarget(t)
	opts := toolchainOpts()
	print := pipeline.Fingerprint(opts.Pipeline, target, opts.Settings, nil)
	prepared(t, target.BuildDir, domain.DotConfigName)

	m.stamps.EXPECT().Load(target.BuildDir).Return(
		&domain.PrepareStamp{Fingerprint: print, CreatedAt: time.Now()}, nil,
	)

	var stages []domain.StageRequest
	captureStages(m, &stages, 1, nil)

	res, err := c.Execute(context.Background(), target, opts)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, res.Outcome)

	require.Len(t, stages, 1)
	assert.Equal(t, domain.StageCompile, stages[0].Stage)
}

func TestController_MissingArtifactForcesPrepare(t *testing.T) {
	c, m := setupControllerTest(t)
	target := buildTarget(t)
	opts := toolchainOpts()
	print := pipeline.Fingerprint(opts.Pipeline, target, opts.Settings, nil)

	// The stamp matches but the generated .config is gone, so the stamp
	// is not to be believed.
	require.NoError(t, os.MkdirAll(target.BuildDir, domain.DirPerm))
	m.stamps.EXPECT().Load(target.BuildDir).Return(
		&domain.PrepareStamp{Fingerprint: print, CreatedAt: time.Now()}, nil,
	)
	m.stamps.EXPECT().Invalidate(target.BuildDir).Return(nil)
	var stages []domain.StageRequest
	captureStages(m, &stages, 2, nil)
	m.stamps.EXPECT().Save(target.BuildDir, gomock.Any()).Return(nil)

	res, err := c.Execute(context.Background(), target, opts)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, res.Outcome)
	require.Len(t, stages, 2)
	assert.Equal(t, domain.StagePrepare, stages[0].Stage)
}

func TestController_PrepareOnlyIdempotent(t *testing.T) {
	c, m := setupControllerTest(t)
	target := buildTarget(t)
	opts := toolchainOpts()
	opts.Mode = domain.ModePrepareOnly
	prepared(t, target.BuildDir, domain.DotConfigName)

	// First invocation: no stamp, the prepare stage runs and is stamped.
	var saved domain.PrepareStamp
	m.stamps.EXPECT().Load(target.BuildDir).Return(nil, nil)
	m.stamps.EXPECT().Invalidate(target.BuildDir).Return(nil)
	var stages []domain.StageRequest
	captureStages(m, &stages, 1, nil)
	m.stamps.EXPECT().Save(target.BuildDir, gomock.Any()).DoAndReturn(
		func(_ string, stamp domain.PrepareStamp) error {
			saved = stamp
			return nil
		},
	)

	res, err := c.Execute(context.Background(), target, opts)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, res.Outcome)
	require.Len(t, stages, 1)
	assert.Equal(t, domain.StagePrepare, stages[0].Stage)

	// Second invocation: the stamp satisfies the same inputs, so no stage
	// runs at all and the outcome is still a success.
	m.stamps.EXPECT().Load(target.BuildDir).Return(&saved, nil)

	res, err = c.Execute(context.Background(), target, opts)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, res.Outcome)
}

func TestController_CleanForcesPrepare(t *testing.T) {
	c, m := setupControllerTest(t)
	target := buildTarget(t)
	opts := toolchainOpts()
	opts.Clean = true
	prepared(t, target.BuildDir, domain.DotConfigName)

	// The stamp is not even consulted on a clean run.
	m.stamps.EXPECT().Invalidate(target.BuildDir).Return(nil)
	var stages []domain.StageRequest
	captureStages(m, &stages, 2, nil)
	m.stamps.EXPECT().Save(target.BuildDir, gomock.Any()).Return(nil)

	res, err := c.Execute(context.Background(), target, opts)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, res.Outcome)

	require.Len(t, stages, 2)
	assert.Equal(t, domain.StagePrepare, stages[0].Stage)
	assert.True(t, stages[0].Clean)

	// The compile runs in the directory prepare just set up; scrubbing it
	// again would undo the preparation.
	assert.Equal(t, domain.StageCompile, stages[1].Stage)
	assert.False(t, stages[1].Clean)
}

func TestController_FingerprintMismatchForcesPrepare(t *testing.T) {
	c, m := setupControllerTest(t)
	target := buildTarget(t)
	opts := toolchainOpts()
	prepared(t, target.BuildDir, domain.DotConfigName)

	m.stamps.EXPECT().Load(target.BuildDir).Return(
		&domain.PrepareStamp{Fingerprint: "0123456789abcdef"}, nil,
	)
	m.stamps.EXPECT().Invalidate(target.BuildDir).Return(nil)
	var stages []domain.StageRequest
	captureStages(m, &stages, 2, nil)
	m.stamps.EXPECT().Save(target.BuildDir, gomock.Any()).Return(nil)

	res, err := c.Execute(context.Background(), target, opts)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, res.Outcome)
	require.Len(t, stages, 2)
	assert.Equal(t, domain.StagePrepare, stages[0].Stage)
}

func TestController_CorruptStampForcesPrepare(t *testing.T) {
	c, m := setupControllerTest(t)
	target := buildTarget(t)
	opts := toolchainOpts()

	// An unreadable stamp is merely stale, never fatal.
	m.stamps.EXPECT().Load(target.BuildDir).Return(nil, errors.New("failed to unmarshal prepare stamp"))
	m.stamps.EXPECT().Invalidate(target.BuildDir).Return(nil)
	var stages []domain.StageRequest
	captureStages(m, &stages, 2, nil)
	m.stamps.EXPECT().Save(target.BuildDir, gomock.Any()).Return(nil)

	res, err := c.Execute(context.Background(), target, opts)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, res.Outcome)
}

func TestController_PrepareFailure(t *testing.T) {
	c, m := setupControllerTest(t)
	target := buildTarget(t)
	opts := toolchainOpts()

	m.stamps.EXPECT().Load(target.BuildDir).Return(nil, nil)
	m.stamps.EXPECT().Invalidate(target.BuildDir).Return(nil)
	m.stages.EXPECT().Run(gomock.Any(), gomock.Any()).Return(
		domain.StageResult{LogPath: "/logs/prepare.log"},
		errors.Join(domain.ErrStageFailed, errors.New("exit status 2")),
	)

	res, err := c.Execute(context.Background(), target, opts)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomePrepareFailed, res.Outcome)
	assert.Equal(t, "/logs/prepare.log", res.LogPath)
	assert.Contains(t, res.Reason, domain.ErrStageFailed.Error())

	// No compile attempt and no stamp: both mocks would flag the calls.
}

func TestController_CompileFailure(t *testing.T) {
	c, m := setupControllerTest(t)
	target := buildTarget(t)
	opts := toolchainOpts()
	print := pipeline.Fingerprint(opts.Pipeline, target, opts.Settings, nil)
	prepared(t, target.BuildDir, domain.DotConfigName)

	m.stamps.EXPECT().Load(target.BuildDir).Return(&domain.PrepareStamp{Fingerprint: print}, nil)
	m.stages.EXPECT().Run(gomock.Any(), gomock.Any()).Return(
		domain.StageResult{LogPath: "/logs/build.log"},
		errors.Join(domain.ErrStageFailed, errors.New("exit status 2")),
	)

	res, err := c.Execute(context.Background(), target, opts)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeCompileFailed, res.Outcome)
	assert.Equal(t, "/logs/build.log", res.LogPath)
}

func TestController_GDBLocatesBeforeStages(t *testing.T) {
	c, m := setupControllerTest(t)
	target := buildTarget(t)
	opts := gdbOpts()
	prepared(t, target.GDBBuildDir, domain.MakefileName)

	env := &domain.ToolchainEnv{
		Prefix: "aarch64-buildroot-linux-gnu",
		BinDir: filepath.Join(target.ToolchainDir, "bin"),
	}
	m.locator.EXPECT().Locate(target).Return(env, nil)

	// The GDB pipeline stamps its own build directory.
	print := pipeline.Fingerprint(opts.Pipeline, target, opts.Settings, env)
	m.stamps.EXPECT().Load(target.GDBBuildDir).Return(&domain.PrepareStamp{Fingerprint: print}, nil)

	var stages []domain.StageRequest
	captureStages(m, &stages, 1, nil)

	res, err := c.Execute(context.Background(), target, opts)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, res.Outcome)

	require.Len(t, stages, 1)
	assert.Equal(t, domain.StageCompile, stages[0].Stage)
	assert.Equal(t, domain.PipelineGDB, stages[0].Pipeline)
	assert.Same(t, env, stages[0].Toolchain)
}

func TestController_GDBToolchainMissing(t *testing.T) {
	c, m := setupControllerTest(t)
	target := buildTarget(t)
	opts := gdbOpts()

	m.locator.EXPECT().Locate(target).Return(nil, domain.ErrToolchainNotFound)

	res, err := c.Execute(context.Background(), target, opts)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeToolchainNotFound, res.Outcome)
	assert.Contains(t, res.Reason, domain.ErrToolchainNotFound.Error())

	// Neither stage runs and the stamp is untouched: the mocks would
	// report any call.
}

func TestController_StampSaveFailureIsNotFatal(t *testing.T) {
	c, m := setupControllerTest(t)
	target := buildTarget(t)
	opts := toolchainOpts()

	m.stamps.EXPECT().Load(target.BuildDir).Return(nil, nil)
	m.stamps.EXPECT().Invalidate(target.BuildDir).Return(nil)
	var stages []domain.StageRequest
	captureStages(m, &stages, 2, nil)
	m.stamps.EXPECT().Save(target.BuildDir, gomock.Any()).Return(errors.New("read-only file system"))

	res, err := c.Execute(context.Background(), target, opts)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, res.Outcome)
}

func TestController_InvalidateFailureFailsPrepare(t *testing.T) {
	c, m := setupControllerTest(t)
	target := buildTarget(t)
	opts := toolchainOpts()

	// If the stale stamp cannot be removed, running prepare could leave a
	// failed preparation looking valid, so the pipeline stops here.
	m.stamps.EXPECT().Load(target.BuildDir).Return(nil, nil)
	m.stamps.EXPECT().Invalidate(target.BuildDir).Return(errors.New("permission denied"))

	res, err := c.Execute(context.Background(), target, opts)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomePrepareFailed, res.Outcome)
	assert.Contains(t, res.Reason, "permission denied")
}

func TestController_CancelledRunEscapes(t *testing.T) {
	c, m := setupControllerTest(t)
	target := buildTarget(t)
	opts := toolchainOpts()

	ctx, cancel := context.WithCancel(context.Background())

	m.stamps.EXPECT().Load(target.BuildDir).Return(nil, nil)
	m.stamps.EXPECT().Invalidate(target.BuildDir).Return(nil)
	m.stages.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(runCtx context.Context, _ domain.StageRequest) (domain.StageResult, error) {
			cancel()
			return domain.StageResult{}, runCtx.Err()
		},
	)

	_, err := c.Execute(ctx, target, opts)
	require.ErrorIs(t, err, context.Canceled)
}
