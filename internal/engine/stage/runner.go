// Package stage turns pipeline stage requests into external build commands.
package stage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/simark/many-buildroots/internal/core/domain"
	"github.com/simark/many-buildroots/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.StageRunner. It owns everything between a stage
// request and the external processes that satisfy it: the stage working
// directory, the log sink, the command lines and the stage span.
type Runner struct {
	executor ports.Executor
	tracer   ports.Tracer
}

// NewRunner creates a new Runner with the given dependencies.
func NewRunner(executor ports.Executor, tracer ports.Tracer) *Runner {
	return &Runner{
		executor: executor,
		tracer:   tracer,
	}
}

// Run executes one stage for one target. Any failure on the way, from the
// working directory to a non-zero build exit, comes back as a stage failure
// carrying the target, the stage and the log path when one was opened.
func (r *Runner) Run(ctx context.Context, req domain.StageRequest) (domain.StageResult, error) {
	ctx, span := r.tracer.Start(ctx, string(req.Stage))
	defer span.End()

	span.SetAttribute("buildroots.target", req.Target.Name)
	span.SetAttribute("buildroots.pipeline", string(req.Pipeline))

	res, err := r.execute(ctx, span, req)
	if err != nil {
		werr := zerr.With(zerr.Wrap(err, domain.ErrStageFailed.Error()), "target", req.Target.Name)
		werr = zerr.With(werr, "stage", string(req.Stage))
		if res.LogPath != "" {
			werr = zerr.With(werr, "log", res.LogPath)
		}
		span.RecordError(werr)
		return res, werr
	}

	return res, nil
}

func (r *Runner) execute(ctx context.Context, span ports.Span, req domain.StageRequest) (domain.StageResult, error) {
	dir := req.Target.StageDir(req.Pipeline)

	// Cleanup happens before use, never after: a clean rebuild scrubs the
	// directory on acquisition and leaves the results in place when done.
	if req.Clean {
		if err := os.RemoveAll(dir); err != nil {
			return domain.StageResult{}, zerr.Wrap(err, domain.ErrBuildDirCleanFailed.Error())
		}
	}
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return domain.StageResult{}, zerr.Wrap(err, domain.ErrBuildDirCreateFailed.Error())
	}

	logPath := filepath.Join(dir, domain.LogFileName(req.Pipeline, req.Stage))
	//nolint:gosec // Path is derived from the project layout.
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return domain.StageResult{}, zerr.Wrap(err, domain.ErrLogCreateFailed.Error())
	}
	defer logFile.Close() //nolint:errcheck // The log is best effort once written.

	res := domain.StageResult{LogPath: logPath}

	// The log file always captures the full output; verbose adds the span
	// as a second live sink so renderers can show the stream as it happens.
	sink := io.Writer(logFile)
	if req.Verbose {
		sink = io.MultiWriter(logFile, span)
	}

	switch {
	case req.Pipeline == domain.PipelineGDB && req.Stage == domain.StagePrepare:
		err = r.configureGDB(ctx, req, sink)
	case req.Pipeline == domain.PipelineGDB:
		err = r.compileGDB(ctx, req, sink)
	case req.Stage == domain.StagePrepare:
		err = r.prepareToolchain(ctx, req, sink)
	default:
		err = r.compileToolchain(ctx, req, sink)
	}

	return res, err
}

// jobArg renders the make parallelism flag. A degree below one falls back
// to the host's CPU count.
func jobArg(jobs int) string {
	if jobs < 1 {
		jobs = runtime.NumCPU()
	}
	return "-j" + strconv.Itoa(jobs)
}
