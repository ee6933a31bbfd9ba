package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "buildroots.yaml"

	// BuildsDirName is where per-target Buildroot output directories live.
	BuildsDirName = "builds"

	// ToolchainsDirName is where finished toolchains are installed.
	ToolchainsDirName = "toolchains"

	// GDBBuildsDirName is where per-target GDB build directories live.
	GDBBuildsDirName = "gdb-builds"

	// StatusFileName is the per-pipeline status record file.
	StatusFileName = "build-status.txt"

	// StampFileName is the prepare stamp written into a build directory.
	StampFileName = ".prepare-stamp.json"

	// PrepareLogName is the toolchain prepare stage log.
	PrepareLogName = "prepare.log"

	// ConfigureLogName is the GDB prepare stage log.
	ConfigureLogName = "configure.log"

	// DotConfigName is the configuration file Buildroot generates in a
	// build directory.
	DotConfigName = ".config"

	// MakefileName is the top-level makefile configure generates in a GDB
	// build directory.
	MakefileName = "Makefile"

	// BuildLogName is the compile stage log of both pipelines.
	BuildLogName = "build.log"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Layout derives every well-known path of a project from its root. Paths are
// always absolute; nothing in the orchestrator depends on the process
// working directory.
type Layout struct {
	Root string
}

// NewLayout returns a layout rooted at the given project directory.
func NewLayout(root string) Layout {
	return Layout{Root: root}
}

// BuildDir returns the Buildroot output directory for a target.
func (l Layout) BuildDir(target string) string {
	return filepath.Join(l.Root, BuildsDirName, target)
}

// ToolchainDir returns the toolchain install directory for a target.
func (l Layout) ToolchainDir(target string) string {
	return filepath.Join(l.Root, ToolchainsDirName, target)
}

// GDBBuildDir returns the GDB build directory for a target.
func (l Layout) GDBBuildDir(target string) string {
	return filepath.Join(l.Root, GDBBuildsDirName, target)
}

// StatusFile returns the status record file for a pipeline. Toolchain
// records live next to the toolchains, GDB records next to the GDB builds.
func (l Layout) StatusFile(p Pipeline) string {
	if p == PipelineGDB {
		return filepath.Join(l.Root, GDBBuildsDirName, StatusFileName)
	}
	return filepath.Join(l.Root, ToolchainsDirName, StatusFileName)
}

// LogFileName returns the log file name for one stage of one pipeline. The
// log lives in the target's stage directory.
func LogFileName(p Pipeline, s Stage) string {
	if s == StagePrepare {
		if p == PipelineGDB {
			return ConfigureLogName
		}
		return PrepareLogName
	}
	return BuildLogName
}

// ArtifactFileName returns the file a pipeline's prepare stage is expected to
// leave in the stage directory. Its presence is part of "prepared": a stamp
// alone proves nothing once the generated files are gone.
func ArtifactFileName(p Pipeline) string {
	if p == PipelineGDB {
		return MakefileName
	}
	return DotConfigName
}
