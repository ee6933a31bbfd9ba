// Package app implements the application layer for many-buildroots.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/simark/many-buildroots/internal/adapters/config"
	"github.com/simark/many-buildroots/internal/adapters/detector"
	"github.com/simark/many-buildroots/internal/adapters/linear"
	"github.com/simark/many-buildroots/internal/adapters/telemetry"
	"github.com/simark/many-buildroots/internal/adapters/tui"
	"github.com/simark/many-buildroots/internal/core/domain"
	"github.com/simark/many-buildroots/internal/core/ports"
	"github.com/simark/many-buildroots/internal/engine/batch"
	"github.com/simark/many-buildroots/internal/engine/pipeline"
	"github.com/simark/many-buildroots/internal/engine/stage"
	"github.com/simark/many-buildroots/internal/ui/summary"
)

// App represents the main application logic.
type App struct {
	loader   ports.ConfigLoader
	executor ports.Executor
	logger   ports.Logger
	locator  ports.Locator
	stamps   ports.StampStore
	status   ports.StatusStore
	subshell ports.Subshell

	teaOptions  []tea.ProgramOption
	disableTick bool
	stdout      io.Writer
	stderr      io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	executor ports.Executor,
	log ports.Logger,
	locator ports.Locator,
	stamps ports.StampStore,
	status ports.StatusStore,
	subshell ports.Subshell,
) *App {
	return &App{
		loader:   loader,
		executor: executor,
		logger:   log,
		locator:  locator,
		stamps:   stamps,
		status:   status,
		subshell: subshell,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithDisableTick disables the TUI tick loop.
// This is primarily used for testing with synctest to avoid goroutine deadlocks.
func (a *App) WithDisableTick() *App {
	a.disableTick = true
	return a
}

// WithStreams redirects the App's stdout and stderr.
// This is primarily used for testing to capture output.
func (a *App) WithStreams(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// RunOptions configuration for the RunBatch method.
type RunOptions struct {
	// Pipeline and Mode select what to run and how far to take it.
	Pipeline domain.Pipeline
	Mode     domain.Mode

	Jobs      int
	Clean     bool
	KeepGoing bool
	Verbose   bool

	// SrcDir and ConfigureOpts are flag-level overrides layered over the
	// environment and the configuration file.
	SrcDir        string
	ConfigureOpts string

	// OutputMode is the user's renderer choice: "auto", "tui", "linear"
	// or "ci".
	OutputMode string
}

// RunBatch executes one pipeline across the named targets.
//
//nolint:cyclop // orchestration function
func (a *App) RunBatch(ctx context.Context, targetNames []string, opts RunOptions) error {
	// 1. Load the target registry
	project, err := a.loader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	// 2. Resolve the request and the pipeline settings
	targets, err := project.Resolve(targetNames)
	if err != nil {
		return err
	}

	settings, err := resolveSettings(project, opts)
	if err != nil {
		return err
	}

	// 3. Initialize Renderer
	// Detect environment and resolve output mode
	autoMode := detector.DetectEnvironment()
	mode := detector.ResolveMode(autoMode, opts.OutputMode, opts.Verbose, len(targets))

	var renderer ports.Renderer
	if mode == detector.ModeTUI {
		model := tui.NewModel(a.stderr)
		if a.disableTick {
			model = model.WithDisableTick()
		}
		optsTea := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
		renderer = tui.NewRenderer(&model, optsTea...)
	} else {
		renderer = linear.NewRenderer(a.stdout, a.stderr)
	}

	// 4. Initialize Telemetry
	// Create a bridge that sends OTel spans to the renderer.
	bridge := telemetry.NewBridge(renderer)

	// Configure the global OTel SDK to use our bridge for spans.
	// This ensures that when OTelTracer uses otel.Tracer(), it uses a provider
	// that forwards events to our bridge.
	setupOTel(bridge)

	// Create and configure the OTel Tracer adapter.
	// We inject the renderer so it can stream logs directly via the batcher.
	tracer := telemetry.NewOTelTracer("many-buildroots").WithRenderer(renderer)
	defer func() {
		_ = tracer.Shutdown(ctx)
	}()

	// 5. Assemble the engine
	runner := stage.NewRunner(a.executor, tracer)
	controller := pipeline.NewController(runner, a.locator, a.stamps)
	orchestrator := batch.NewOrchestrator(controller, tracer, a.status)

	runOpts := domain.RunOptions{
		Pipeline:  opts.Pipeline,
		Mode:      opts.Mode,
		Settings:  settings,
		Jobs:      opts.Jobs,
		Clean:     opts.Clean,
		KeepGoing: opts.KeepGoing,
		// The TUI's log pane needs live output on the spans; quiet linear
		// runs leave build output in the per-stage log files alone.
		Verbose: opts.Verbose || mode == detector.ModeTUI,
	}

	// 6. Run Renderer and Orchestrator concurrently
	g, ctx := errgroup.WithContext(ctx)

	// Renderer Routine
	g.Go(func() error {
		if err := renderer.Start(ctx); err != nil {
			return err
		}
		// Wait blocks until the renderer has terminated.
		return renderer.Wait()
	})

	// Orchestrator Routine
	var report *domain.RunReport
	g.Go(func() error {
		defer func() {
			// Handle panic recovery for the orchestrator goroutine
			if r := recover(); r != nil {
				// Print panic info before renderer shutdown
				fmt.Fprintf(a.stderr, "Orchestrator panic: %v\n", r)
			}
			// Ensure renderer stops when the orchestrator finishes.
			_ = renderer.Stop()
		}()

		rep, runErr := orchestrator.Run(ctx, project.Root, targets, runOpts)
		report = rep
		return runErr
	})

	err = g.Wait()

	// 7. Print the closing summary once the renderer has released the
	// terminal. The report covers every requested target even after a
	// failure, so the summary distinguishes "failed" from "never attempted".
	if report != nil && report.Len() > 0 {
		summary.Render(a.stdout, report)
	}

	return err
}

// ListTargets prints the target table: every configured target with its
// defconfig, whether a toolchain is currently installed, and the last
// recorded toolchain outcome.
func (a *App) ListTargets(_ context.Context) error {
	project, err := a.loader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	records, err := a.status.Load(project.Root, domain.PipelineToolchain)
	if err != nil {
		return err
	}

	// Records are oldest first, so the last write per target wins.
	latest := make(map[string]domain.StatusRecord, len(records))
	for _, rec := range records {
		latest[rec.Target] = rec
	}

	rows := make([]summary.TargetRow, 0, len(project.Targets))
	for _, target := range project.Targets {
		_, locErr := a.locator.Locate(target)

		row := summary.TargetRow{
			Name:             target.Name,
			Defconfig:        target.Defconfig,
			ToolchainPresent: locErr == nil,
		}
		if rec, ok := latest[target.Name]; ok {
			row.LastOutcome = rec.Outcome
			row.LastTime = rec.Time
		}
		rows = append(rows, row)
	}

	summary.RenderTargetList(a.stdout, rows)
	return nil
}

// Shell opens an interactive subshell with the selected targets' toolchains
// on PATH. With exactly one target selected, the cross tool variables are
// exported too, so CROSS_COMPILE-style invocations work out of the box.
func (a *App) Shell(ctx context.Context, targetNames []string) error {
	project, err := a.loader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	targets, err := project.Resolve(targetNames)
	if err != nil {
		return err
	}

	envs := make([]*domain.ToolchainEnv, 0, len(targets))
	binDirs := make([]string, 0, len(targets))
	for _, target := range targets {
		env, locErr := a.locator.Locate(target)
		if locErr != nil {
			return locErr
		}
		envs = append(envs, env)
		binDirs = append(binDirs, env.BinDir)
	}

	overlay := map[string]string{
		"PATH": strings.Join(append(binDirs, os.Getenv("PATH")), string(os.PathListSeparator)),
	}
	if len(envs) == 1 {
		env := envs[0]
		overlay["CROSS_COMPILE"] = env.CrossCompile()
		overlay["CC"] = env.CC()
		overlay["CXX"] = env.CXX()
		overlay["AR"] = env.AR()
		overlay["RANLIB"] = env.Ranlib()
	}

	names := make([]string, len(targets))
	for i, target := range targets {
		names[i] = target.Name
	}
	a.logger.Info(fmt.Sprintf("entering shell with toolchains for %s", strings.Join(names, ", ")))

	return a.subshell.Open(ctx, project.Root, overlay)
}

// resolveSettings layers the override chain onto the configured settings:
// flags beat environment variables beat the configuration file.
func resolveSettings(project *domain.Project, opts RunOptions) (domain.Settings, error) {
	settings := project.SettingsFor(opts.Pipeline)

	envVar := config.BuildrootSrcEnv
	if opts.Pipeline == domain.PipelineGDB {
		envVar = config.GDBSrcEnv
	}
	if src := os.Getenv(envVar); src != "" {
		settings.SrcDir = src
	}
	if opts.SrcDir != "" {
		settings.SrcDir = opts.SrcDir
	}
	if opts.ConfigureOpts != "" {
		settings.ConfigureOpts = opts.ConfigureOpts
	}

	hint := "set it in " + domain.ConfigFileName + ", $" + envVar + " or --src"

	if settings.SrcDir == "" {
		werr := zerr.With(domain.ErrNoSourceDir, "pipeline", string(opts.Pipeline))
		return domain.Settings{}, zerr.With(werr, "hint", hint)
	}

	srcDir, err := config.ExpandHome(settings.SrcDir)
	if err != nil {
		return domain.Settings{}, err
	}
	settings.SrcDir = srcDir

	// The batch fails fast on a source tree that is not there, rather than
	// once per target inside make.
	if _, err := os.Stat(settings.SrcDir); err != nil {
		werr := zerr.With(domain.ErrSourceDirMissing, "pipeline", string(opts.Pipeline))
		werr = zerr.With(werr, "dir", settings.SrcDir)
		return domain.Settings{}, zerr.With(werr, "hint", hint)
	}

	return settings, nil
}

// setupOTel configures the OpenTelemetry SDK with the renderer bridge.
func setupOTel(bridge *telemetry.Bridge) {
	// Create a new TracerProvider with the bridge as a SpanProcessor.
	// This ensures that all started spans are reported to the renderer.
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bridge),
	)

	// Register it as the global provider.
	otel.SetTracerProvider(tp)
}
