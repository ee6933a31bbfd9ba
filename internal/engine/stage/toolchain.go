package stage

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/simark/many-buildroots/internal/core/domain"
	"go.trai.ch/zerr"
)

// hostDirKey is the .config option naming the toolchain install directory.
const hostDirKey = "BR2_HOST_DIR="

// prepareToolchain configures a target's Buildroot build directory: it
// generates the defconfig out of tree, amends the resulting .config, and
// lets olddefconfig resolve the amended file into a consistent
// configuration.
func (r *Runner) prepareToolchain(ctx context.Context, req domain.StageRequest, sink io.Writer) error {
	defconfig := domain.Command{
		Args: []string{"make", "-C", req.Settings.SrcDir, "O=" + req.Target.BuildDir, req.Target.Defconfig},
		Dir:  req.Target.BuildDir,
	}
	if err := r.executor.Execute(ctx, defconfig, sink); err != nil {
		return err
	}

	if err := amendDotConfig(req.Target, req.Settings); err != nil {
		return err
	}

	olddefconfig := domain.Command{
		Args: []string{"make", "-C", req.Settings.SrcDir, "O=" + req.Target.BuildDir, "olddefconfig"},
		Dir:  req.Target.BuildDir,
	}
	return r.executor.Execute(ctx, olddefconfig, sink)
}

// compileToolchain builds the toolchain and the target libraries.
func (r *Runner) compileToolchain(ctx context.Context, req domain.StageRequest, sink io.Writer) error {
	cmd := domain.Command{
		Args: []string{"make", "-C", req.Settings.SrcDir, "O=" + req.Target.BuildDir, jobArg(req.Jobs)},
		Dir:  req.Target.BuildDir,
	}
	return r.executor.Execute(ctx, cmd, sink)
}

// amendDotConfig rewrites the generated .config between the defconfig and
// olddefconfig runs. The project fragment, the external-toolchain selection
// and the target's own option lines are appended in that order; Kconfig
// gives later lines precedence, so appends act as overrides. BR2_HOST_DIR
// is then pointed at the target's toolchain directory across the whole
// file, the fragment included.
func amendDotConfig(target domain.Target, settings domain.Settings) error {
	configPath := filepath.Join(target.BuildDir, domain.DotConfigName)

	//nolint:gosec // Path is derived from the project layout.
	cfg, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrDotConfigUpdateFailed.Error())
	}

	var buf bytes.Buffer
	buf.Write(cfg)

	if settings.Fragment != "" {
		//nolint:gosec // Path comes from the project configuration.
		fragment, err := os.ReadFile(settings.Fragment)
		if err != nil {
			werr := zerr.Wrap(err, domain.ErrFragmentReadFailed.Error())
			return zerr.With(werr, "fragment", settings.Fragment)
		}
		buf.Write(fragment)
		if len(fragment) > 0 && fragment[len(fragment)-1] != '\n' {
			buf.WriteByte('\n')
		}
	}

	if target.External != "" {
		fmt.Fprintf(&buf, "\n# External toolchain for %s\n", target.Name)
		buf.WriteString("BR2_TOOLCHAIN_EXTERNAL=y\n")
		buf.WriteString("BR2_TOOLCHAIN_EXTERNAL_BOOTLIN=y\n")
		fmt.Fprintf(&buf, "BR2_TOOLCHAIN_EXTERNAL_BOOTLIN_%s=y\n", target.External)
	}

	if len(target.Options) > 0 {
		fmt.Fprintf(&buf, "\n# Extra options for %s\n", target.Name)
		for _, opt := range target.Options {
			buf.WriteString(opt)
			buf.WriteByte('\n')
		}
	}

	amended := setHostDir(buf.Bytes(), target.ToolchainDir)

	if err := os.WriteFile(configPath, amended, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrDotConfigUpdateFailed.Error())
	}
	return nil
}

// setHostDir points every BR2_HOST_DIR line at dir, appending one when the
// configuration has none.
func setHostDir(cfg []byte, dir string) []byte {
	line := hostDirKey + `"` + dir + `"`

	var out bytes.Buffer
	out.Grow(len(cfg) + len(line) + 1)

	replaced := false
	scanner := bufio.NewScanner(bytes.NewReader(cfg))
	for scanner.Scan() {
		if bytes.HasPrefix(scanner.Bytes(), []byte(hostDirKey)) {
			out.WriteString(line)
			replaced = true
		} else {
			out.Write(scanner.Bytes())
		}
		out.WriteByte('\n')
	}

	if !replaced {
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return out.Bytes()
}
