// Package config provides the configuration loader for many-buildroots.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/simark/many-buildroots/internal/core/domain"
	"github.com/simark/many-buildroots/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultBuildrootSrc is the Buildroot checkout used when neither the
	// configuration nor BuildrootSrcEnv names one.
	DefaultBuildrootSrc = "~/src/buildroot"
	// DefaultGDBSrc is the binutils-gdb checkout used when neither the
	// configuration nor GDBSrcEnv names one.
	DefaultGDBSrc = "~/src/binutils-gdb"
	// DefaultConfigureOpts is passed to GDB's configure script unless the
	// configuration overrides it.
	DefaultConfigureOpts = "--enable-gdbserver --disable-sim"

	// BuildrootSrcEnv overrides the configured Buildroot source tree.
	BuildrootSrcEnv = "BUILDROOT_SRC"
	// GDBSrcEnv overrides the configured binutils-gdb source tree.
	GDBSrcEnv = "GDB_SRC"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the nearest buildroots.yaml at or above cwd and returns the
// project it describes. Targets keep their declaration order.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var file File
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}

	return l.buildProject(filepath.Dir(configPath), &file)
}

// DiscoverRoot returns the directory containing the nearest buildroots.yaml
// at or above cwd.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return "", err
	}
	return filepath.Dir(configPath), nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := cwd

	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) buildProject(root string, file *File) (*domain.Project, error) {
	if len(file.Targets) == 0 {
		return nil, zerr.With(domain.ErrNoTargetsDefined, "config", filepath.Join(root, domain.ConfigFileName))
	}

	buildrootSrc, err := resolveSrc(file.Buildroot.Src, BuildrootSrcEnv, DefaultBuildrootSrc)
	if err != nil {
		return nil, err
	}
	gdbSrc, err := resolveSrc(file.GDB.Src, GDBSrcEnv, DefaultGDBSrc)
	if err != nil {
		return nil, err
	}

	configureOpts := file.GDB.ConfigureOpts
	if configureOpts == "" {
		configureOpts = DefaultConfigureOpts
	}

	fragment := file.Buildroot.Fragment
	if fragment != "" {
		if !filepath.IsAbs(fragment) {
			fragment = filepath.Join(root, fragment)
		}
		if _, statErr := os.Stat(fragment); statErr != nil {
			l.Logger.Warn(fmt.Sprintf("config fragment %s does not exist", fragment))
		}
	}

	layout := domain.NewLayout(root)
	seen := make(map[string]bool, len(file.Targets))
	targets := make([]domain.Target, 0, len(file.Targets))

	for _, dto := range file.Targets {
		if dto.Name == "" || dto.Defconfig == "" {
			return nil, zerr.With(domain.ErrInvalidTarget, "target", dto.Name)
		}
		if seen[dto.Name] {
			return nil, zerr.With(domain.ErrDuplicateTarget, "target", dto.Name)
		}
		seen[dto.Name] = true

		targets = append(targets, domain.Target{
			Name:         dto.Name,
			Defconfig:    dto.Defconfig,
			Options:      dto.Options,
			External:     dto.External,
			CFlags:       dto.CFlags,
			LDFlags:      dto.LDFlags,
			BuildDir:     layout.BuildDir(dto.Name),
			ToolchainDir: layout.ToolchainDir(dto.Name),
			GDBBuildDir:  layout.GDBBuildDir(dto.Name),
		})
	}

	return &domain.Project{
		Root:      root,
		Buildroot: domain.Settings{SrcDir: buildrootSrc, Fragment: fragment},
		GDB:       domain.Settings{SrcDir: gdbSrc, ConfigureOpts: configureOpts},
		Targets:   targets,
	}, nil
}

// resolveSrc picks a source tree. The environment variable wins over the
// configured value, which wins over the built-in default.
func resolveSrc(configured, envVar, fallback string) (string, error) {
	src := fallback
	if configured != "" {
		src = configured
	}
	if env := os.Getenv(envVar); env != "" {
		src = env
	}
	return ExpandHome(src)
}

// ExpandHome replaces a leading ~ with the current user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Join(domain.ErrHomeDirUnknown, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
