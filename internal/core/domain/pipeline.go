package domain

// Pipeline selects which of the two chained build pipelines a batch drives.
type Pipeline string

const (
	// PipelineToolchain builds cross-toolchains with Buildroot.
	PipelineToolchain Pipeline = "toolchain"
	// PipelineGDB builds GDB against an already-built toolchain.
	PipelineGDB Pipeline = "gdb"
)

// Stage is one of the two ordered phases of a pipeline.
type Stage string

const (
	// StagePrepare configures a target's build directory.
	StagePrepare Stage = "prepare"
	// StageCompile runs the actual build.
	StageCompile Stage = "compile"
)

// Mode selects how far a pipeline runs for each target.
type Mode string

const (
	// ModePrepareOnly stops after the prepare stage.
	ModePrepareOnly Mode = "prepare-only"
	// ModePrepareAndBuild runs prepare (when needed) followed by compile.
	ModePrepareAndBuild Mode = "prepare-and-build"
)

// Settings holds the per-pipeline knobs resolved from configuration, the
// environment and command-line flags before a batch starts.
type Settings struct {
	// SrcDir is the source tree the pipeline builds from (the Buildroot
	// checkout or the binutils-gdb checkout).
	SrcDir string

	// Fragment is an optional configuration fragment file appended to
	// every target's generated .config. Toolchain pipeline only.
	Fragment string

	// ConfigureOpts are extra options passed to configure, as a single
	// space-separated string. GDB pipeline only.
	ConfigureOpts string
}

// RunOptions parameterizes one orchestrator invocation.
type RunOptions struct {
	Pipeline  Pipeline
	Mode      Mode
	Settings  Settings
	Jobs      int
	Clean     bool
	KeepGoing bool
	Verbose   bool
}

// StageRequest asks the stage runner to execute one stage for one target.
type StageRequest struct {
	Pipeline Pipeline
	Stage    Stage
	Target   Target

	// Toolchain is the located cross-toolchain environment. Set for the
	// GDB pipeline only; the toolchain pipeline produces the toolchain
	// rather than consuming one.
	Toolchain *ToolchainEnv

	Settings Settings
	Jobs     int
	Clean    bool
	Verbose  bool
}

// StageResult reports where a stage's output was captured. Whether the
// stage succeeded travels on the accompanying error.
type StageResult struct {
	LogPath string
}

// Command is one external process invocation, fully specified: no implicit
// working directory and no implicit environment beyond the parent's.
type Command struct {
	// Args is the command line; Args[0] is the executable.
	Args []string

	// Dir is the working directory the command runs in.
	Dir string

	// Env holds environment overrides merged over the parent environment.
	Env map[string]string
}
