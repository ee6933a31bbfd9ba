// Package batch runs one pipeline across every requested target in order.
package batch

import (
	"context"
	"errors"
	"time"

	"github.com/simark/many-buildroots/internal/core/domain"
	"github.com/simark/many-buildroots/internal/core/ports"
)

// Orchestrator iterates the requested targets, drives the pipeline for each
// and aggregates the outcomes into a run report. Targets run strictly one at
// a time: a Buildroot build already saturates the machine on its own.
type Orchestrator struct {
	pipeline ports.PipelineRunner
	tracer   ports.Tracer
	status   ports.StatusStore
}

// NewOrchestrator creates an Orchestrator with the given dependencies.
func NewOrchestrator(pipeline ports.PipelineRunner, tracer ports.Tracer, status ports.StatusStore) *Orchestrator {
	return &Orchestrator{
		pipeline: pipeline,
		tracer:   tracer,
		status:   status,
	}
}

// Run executes the pipeline for each target in request order and returns the
// report covering every requested target. A batch with any non-Success
// outcome returns the complete report together with ErrBuildFailed, which
// callers map to the exit status. Any other error is a batch-aborting fault
// and comes with whatever partial report exists.
func (o *Orchestrator) Run(
	ctx context.Context,
	root string,
	targets []domain.Target,
	opts domain.RunOptions,
) (*domain.RunReport, error) {
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.Name
	}
	o.tracer.EmitPlan(ctx, string(opts.Pipeline), names)

	report := domain.NewRunReport(opts.Pipeline)

	for i, target := range targets {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}

		res, err := o.runTarget(ctx, target, opts)
		if err != nil {
			return report, err
		}

		if err := o.record(root, opts.Pipeline, report, res); err != nil {
			return report, err
		}

		if !res.Outcome.OK() && !opts.KeepGoing {
			if err := o.skipRemaining(root, opts.Pipeline, report, targets[i+1:]); err != nil {
				return report, err
			}
			break
		}
	}

	if !report.Success() {
		return report, domain.ErrBuildFailed
	}
	return report, nil
}

// runTarget wraps one target's pipeline in a span. Stage spans open as
// children of this one, so renderers see the target as a group.
func (o *Orchestrator) runTarget(
	ctx context.Context,
	target domain.Target,
	opts domain.RunOptions,
) (domain.Result, error) {
	ctx, span := o.tracer.Start(ctx, target.Name)
	defer span.End()

	span.SetAttribute("buildroots.pipeline", string(opts.Pipeline))

	res, err := o.pipeline.Execute(ctx, target, opts)
	if err != nil {
		span.RecordError(err)
		return domain.Result{}, err
	}

	span.SetAttribute("buildroots.outcome", string(res.Outcome))
	if !res.Outcome.OK() {
		span.RecordError(errors.New(res.Reason))
	}

	return res, nil
}

// record appends the result to both the in-memory report and the durable
// status file. A status line that cannot be written aborts the batch: the
// file is the record later invocations and users rely on.
func (o *Orchestrator) record(
	root string,
	pipeline domain.Pipeline,
	report *domain.RunReport,
	res domain.Result,
) error {
	report.Append(res)

	return o.status.Append(root, pipeline, domain.StatusRecord{
		Time:     time.Now(),
		Target:   res.Target,
		Outcome:  res.Outcome,
		Duration: res.Duration,
	})
}

// skipRemaining backfills a Skipped result for every target after the first
// failure under the stop-on-failure policy. Skipped targets get no span and
// no stage side effects, only bookkeeping.
func (o *Orchestrator) skipRemaining(
	root string,
	pipeline domain.Pipeline,
	report *domain.RunReport,
	rest []domain.Target,
) error {
	for _, target := range rest {
		res := domain.Result{
			Target:  target.Name,
			Outcome: domain.OutcomeSkipped,
			Reason:  domain.SkipReasonStopped,
		}
		if err := o.record(root, pipeline, report, res); err != nil {
			return err
		}
	}
	return nil
}
