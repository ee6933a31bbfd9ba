package domain

import "time"

// Outcome is the terminal result of one target's pipeline within one run.
// Exactly one outcome is produced per (target, run).
type Outcome string

const (
	// OutcomeSuccess means every executed stage exited zero.
	OutcomeSuccess Outcome = "Success"
	// OutcomePrepareFailed means the prepare stage exited non-zero.
	OutcomePrepareFailed Outcome = "PrepareFailed"
	// OutcomeCompileFailed means the compile stage exited non-zero.
	OutcomeCompileFailed Outcome = "CompileFailed"
	// OutcomeSkipped means the target was never attempted, typically
	// because an earlier target failed under the stop-on-failure policy.
	OutcomeSkipped Outcome = "Skipped"
	// OutcomeToolchainNotFound means no usable cross-toolchain could be
	// located for the target.
	OutcomeToolchainNotFound Outcome = "ToolchainNotFound"
)

// SkipReasonStopped is the reason recorded on targets skipped by the
// stop-on-first-failure policy.
const SkipReasonStopped = "stopped after prior failure"

// OK reports whether the outcome counts as a success.
func (o Outcome) OK() bool {
	return o == OutcomeSuccess
}

// Tag returns the stable uppercase token used in status files.
func (o Outcome) Tag() string {
	switch o {
	case OutcomeSuccess:
		return "SUCCESS"
	case OutcomePrepareFailed:
		return "PREPARE-FAILED"
	case OutcomeCompileFailed:
		return "COMPILE-FAILED"
	case OutcomeSkipped:
		return "SKIPPED"
	case OutcomeToolchainNotFound:
		return "NO-TOOLCHAIN"
	default:
		return "UNKNOWN"
	}
}

// OutcomeFromTag maps a status-file token back to an Outcome.
func OutcomeFromTag(tag string) (Outcome, bool) {
	switch tag {
	case "SUCCESS":
		return OutcomeSuccess, true
	case "PREPARE-FAILED":
		return OutcomePrepareFailed, true
	case "COMPILE-FAILED":
		return OutcomeCompileFailed, true
	case "SKIPPED":
		return OutcomeSkipped, true
	case "NO-TOOLCHAIN":
		return OutcomeToolchainNotFound, true
	default:
		return "", false
	}
}

// Result is one target's entry in a run report.
type Result struct {
	Target  string
	Outcome Outcome

	// Reason elaborates on non-Success outcomes: the skip reason, or a
	// short failure note.
	Reason string

	// LogPath points at the captured output of the failing stage, when
	// one ran.
	LogPath string

	Duration time.Duration
}

// RunReport is the ordered record of one orchestrator invocation. It covers
// every requested target: skipped targets still get an entry, so the report
// is a total function over the request list.
type RunReport struct {
	Pipeline Pipeline
	Results  []Result
}

// NewRunReport returns an empty report for the given pipeline.
func NewRunReport(p Pipeline) *RunReport {
	return &RunReport{Pipeline: p}
}

// Append adds one target's result. Results are appended in request order.
func (r *RunReport) Append(res Result) {
	r.Results = append(r.Results, res)
}

// Len returns the number of recorded results.
func (r *RunReport) Len() int {
	return len(r.Results)
}

// Success reports whether every recorded outcome is a success. This single
// boolean drives the process exit status.
func (r *RunReport) Success() bool {
	for _, res := range r.Results {
		if !res.Outcome.OK() {
			return false
		}
	}
	return true
}

// Counts tallies the report for summaries.
func (r *RunReport) Counts() (succeeded, failed, skipped int) {
	for _, res := range r.Results {
		switch {
		case res.Outcome.OK():
			succeeded++
		case res.Outcome == OutcomeSkipped:
			skipped++
		default:
			failed++
		}
	}
	return succeeded, failed, skipped
}

// StatusRecord is one durable status line for one (run, target) pair.
type StatusRecord struct {
	Time     time.Time
	Target   string
	Outcome  Outcome
	Duration time.Duration
}
