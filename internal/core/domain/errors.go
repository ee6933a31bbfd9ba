package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no buildroots.yaml can be found.
	ErrConfigNotFound = zerr.New("could not find buildroots.yaml")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read configuration file")

	// ErrConfigParseFailed is returned when the configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse configuration file")

	// ErrNoTargetsDefined is returned when the configuration declares no targets.
	ErrNoTargetsDefined = zerr.New("no targets defined in configuration")

	// ErrDuplicateTarget is returned when two targets share a name.
	ErrDuplicateTarget = zerr.New("duplicate target name")

	// ErrInvalidTarget is returned when a target declaration is incomplete.
	ErrInvalidTarget = zerr.New("target must have a name and a defconfig")

	// ErrUnknownTarget is returned when a requested target is not in the registry.
	ErrUnknownTarget = zerr.New("unknown target")

	// ErrNoSourceDir is returned when a pipeline has no source directory after
	// applying the configuration, environment and flag override chain.
	ErrNoSourceDir = zerr.New("no source directory configured")

	// ErrSourceDirMissing is returned when the resolved source directory does
	// not exist on disk.
	ErrSourceDirMissing = zerr.New("source directory does not exist")

	// ErrHomeDirUnknown is returned when the home directory cannot be determined
	// while expanding a ~ path.
	ErrHomeDirUnknown = zerr.New("failed to determine home directory")

	// ErrToolchainNotFound is returned when no usable toolchain exists for a
	// target: the bin directory is absent, or it contains zero or several
	// candidate cross compilers.
	ErrToolchainNotFound = zerr.New("toolchain not found")

	// ErrBuildDirCreateFailed is returned when a stage working directory cannot
	// be created.
	ErrBuildDirCreateFailed = zerr.New("failed to create build directory")

	// ErrBuildDirCleanFailed is returned when a stage working directory cannot
	// be removed for a clean rebuild.
	ErrBuildDirCleanFailed = zerr.New("failed to clean build directory")

	// ErrLogCreateFailed is returned when a stage log file cannot be created.
	ErrLogCreateFailed = zerr.New("failed to create log file")

	// ErrFragmentReadFailed is returned when a configuration fragment file
	// cannot be read.
	ErrFragmentReadFailed = zerr.New("failed to read configuration fragment")

	// ErrDotConfigUpdateFailed is returned when the generated Buildroot .config
	// cannot be amended.
	ErrDotConfigUpdateFailed = zerr.New("failed to update buildroot .config")

	// ErrCommandStartFailed is returned when an external command cannot be started.
	ErrCommandStartFailed = zerr.New("failed to start command")

	// ErrCommandFailed is returned when an external command exits non-zero.
	ErrCommandFailed = zerr.New("command failed")

	// ErrStageFailed is returned when a pipeline stage exits non-zero.
	ErrStageFailed = zerr.New("stage failed")

	// ErrBuildFailed is returned when at least one target of a batch did not succeed.
	ErrBuildFailed = zerr.New("build failed for one or more targets")

	// ErrStatusCreateFailed is returned when the status file's directory cannot
	// be created.
	ErrStatusCreateFailed = zerr.New("failed to create status directory")

	// ErrStatusWriteFailed is returned when a status record cannot be appended.
	ErrStatusWriteFailed = zerr.New("failed to write status record")

	// ErrStatusReadFailed is returned when the status file cannot be read.
	ErrStatusReadFailed = zerr.New("failed to read status file")

	// ErrStampReadFailed is returned when a prepare stamp cannot be read.
	ErrStampReadFailed = zerr.New("failed to read prepare stamp")

	// ErrStampUnmarshalFailed is returned when a prepare stamp cannot be unmarshaled.
	ErrStampUnmarshalFailed = zerr.New("failed to unmarshal prepare stamp")

	// ErrStampMarshalFailed is returned when a prepare stamp cannot be marshaled.
	ErrStampMarshalFailed = zerr.New("failed to marshal prepare stamp")

	// ErrStampWriteFailed is returned when a prepare stamp cannot be written.
	ErrStampWriteFailed = zerr.New("failed to write prepare stamp")

	// ErrShellStartFailed is returned when the interactive subshell cannot be
	// spawned.
	ErrShellStartFailed = zerr.New("failed to start shell")
)
