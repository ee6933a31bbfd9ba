// Package domain contains the core types of the build orchestrator.
package domain

// Target is one named build configuration (typically one CPU architecture)
// with its own toolchain and build directories. Targets are created by the
// registry at configuration load time and are immutable for the duration of
// a run.
type Target struct {
	// Name uniquely identifies the target within a run.
	Name string

	// Defconfig is the Buildroot defconfig the toolchain is built from.
	Defconfig string

	// Options are extra Buildroot configuration lines appended to the
	// generated .config, in declaration order.
	Options []string

	// External optionally names a Bootlin external-toolchain configuration.
	// When set, the prepared .config selects that prebuilt toolchain
	// instead of building one from source.
	External string

	// CFlags and LDFlags carry per-target compiler and linker quirks for
	// the GDB build (for example -mlongcalls on xtensa, -latomic on
	// microblaze).
	CFlags  []string
	LDFlags []string

	// BuildDir is the Buildroot output directory for this target.
	BuildDir string

	// ToolchainDir is where the finished toolchain is installed.
	ToolchainDir string

	// GDBBuildDir is the out-of-tree GDB build directory for this target.
	GDBBuildDir string
}

// StageDir returns the working directory a pipeline's stages run in.
func (t Target) StageDir(p Pipeline) string {
	if p == PipelineGDB {
		return t.GDBBuildDir
	}
	return t.BuildDir
}
