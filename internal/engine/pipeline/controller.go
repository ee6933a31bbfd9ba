// Package pipeline sequences the prepare and compile stages of one target.
package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/simark/many-buildroots/internal/core/domain"
	"github.com/simark/many-buildroots/internal/core/ports"
)

// Controller implements ports.PipelineRunner: one target in, one terminal
// result out. Every build failure is converted to an outcome at this
// boundary; the only errors that escape are faults that invalidate the
// whole batch, such as a cancelled run.
type Controller struct {
	stages  ports.StageRunner
	locator ports.Locator
	stamps  ports.StampStore
}

// NewController creates a new Controller with the given dependencies.
func NewController(stages ports.StageRunner, locator ports.Locator, stamps ports.StampStore) *Controller {
	return &Controller{
		stages:  stages,
		locator: locator,
		stamps:  stamps,
	}
}

// Execute runs the pipeline for one target: locate the toolchain when the
// pipeline consumes one, prepare when the stamp does not already satisfy
// the current inputs, then compile unless the run is prepare-only.
func (c *Controller) Execute(ctx context.Context, target domain.Target, opts domain.RunOptions) (domain.Result, error) {
	started := time.Now()
	result := domain.Result{Target: target.Name}

	finish := func(outcome domain.Outcome) (domain.Result, error) {
		result.Outcome = outcome
		result.Duration = time.Since(started)
		return result, nil
	}

	// The GDB pipeline consumes a toolchain, and already its configure
	// needs the cross environment, so locating happens before any stage.
	// A missing toolchain preempts both.
	var tc *domain.ToolchainEnv
	if opts.Pipeline == domain.PipelineGDB {
		env, err := c.locator.Locate(target)
		if err != nil {
			result.Reason = err.Error()
			return finish(domain.OutcomeToolchainNotFound)
		}
		tc = env
	}

	stageDir := target.StageDir(opts.Pipeline)
	print := fingerprint(opts.Pipeline, target, opts.Settings, tc)

	if c.needsPrepare(opts.Pipeline, stageDir, print, opts.Clean) {
		// A failed prepare must not leave the previous run's stamp
		// behind, so the stamp goes away before the stage starts.
		if err := c.stamps.Invalidate(stageDir); err != nil {
			result.Reason = err.Error()
			return finish(domain.OutcomePrepareFailed)
		}

		res, err := c.stages.Run(ctx, domain.StageRequest{
			Pipeline:  opts.Pipeline,
			Stage:     domain.StagePrepare,
			Target:    target,
			Toolchain: tc,
			Settings:  opts.Settings,
			Jobs:      opts.Jobs,
			Clean:     opts.Clean,
			Verbose:   opts.Verbose,
		})
		result.LogPath = res.LogPath
		if err != nil {
			if ctx.Err() != nil {
				return domain.Result{}, ctx.Err()
			}
			result.Reason = err.Error()
			return finish(domain.OutcomePrepareFailed)
		}

		// A stamp that cannot be written only costs a redundant prepare
		// on the next run; the preparation itself already succeeded.
		_ = c.stamps.Save(stageDir, domain.PrepareStamp{
			Fingerprint: print,
			CreatedAt:   time.Now(),
		})
	}

	if opts.Mode == domain.ModePrepareOnly {
		return finish(domain.OutcomeSuccess)
	}

	res, err := c.stages.Run(ctx, domain.StageRequest{
		Pipeline:  opts.Pipeline,
		Stage:     domain.StageCompile,
		Target:    target,
		Toolchain: tc,
		Settings:  opts.Settings,
		Jobs:      opts.Jobs,
		Verbose:   opts.Verbose,
	})
	result.LogPath = res.LogPath
	if err != nil {
		if ctx.Err() != nil {
			return domain.Result{}, ctx.Err()
		}
		result.Reason = err.Error()
		return finish(domain.OutcomeCompileFailed)
	}

	return finish(domain.OutcomeSuccess)
}

// needsPrepare reports whether the prepare stage has to run. A clean run
// always prepares. Otherwise a stamp carrying the current fingerprint lets
// the stage be skipped; a missing, unreadable or mismatching stamp forces
// it. The stamp alone is not trusted: the build system's own generated file
// must still be present, since a user can delete .config or Makefile
// without touching the stamp next to it.
func (c *Controller) needsPrepare(p domain.Pipeline, stageDir, print string, clean bool) bool {
	if clean {
		return true
	}

	stamp, err := c.stamps.Load(stageDir)
	if err != nil || stamp == nil {
		return true
	}
	if stamp.Fingerprint != print {
		return true
	}

	_, err = os.Stat(filepath.Join(stageDir, domain.ArtifactFileName(p)))
	return err != nil
}
