package stage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/simark/many-buildroots/internal/core/domain"
)

// configureGDB runs the top-level configure of the binutils-gdb tree in the
// target's GDB build directory. Host and target are both the toolchain's
// triplet: the resulting gdb runs on the machine it debugs.
func (r *Runner) configureGDB(ctx context.Context, req domain.StageRequest, sink io.Writer) error {
	args := []string{
		filepath.Join(req.Settings.SrcDir, "configure"),
		"--host=" + req.Toolchain.Prefix,
		"--target=" + req.Toolchain.Prefix,
	}
	args = append(args, strings.Fields(req.Settings.ConfigureOpts)...)

	cmd := domain.Command{
		Args: args,
		Dir:  req.Target.GDBBuildDir,
		Env:  crossEnvironment(req.Target, req.Toolchain),
	}
	return r.executor.Execute(ctx, cmd, sink)
}

// compileGDB builds gdb and gdbserver, leaving the rest of the binutils-gdb
// tree alone.
func (r *Runner) compileGDB(ctx context.Context, req domain.StageRequest, sink io.Writer) error {
	cmd := domain.Command{
		Args: []string{"make", jobArg(req.Jobs), "all-gdb", "all-gdbserver"},
		Dir:  req.Target.GDBBuildDir,
		Env:  crossEnvironment(req.Target, req.Toolchain),
	}
	return r.executor.Execute(ctx, cmd, sink)
}

// crossEnvironment assembles the environment overrides that point configure
// and make at the cross toolchain. The target's quirk flags feed CFLAGS,
// CXXFLAGS and LDFLAGS, and LTO is switched off across the board: these
// cross builds do not survive it.
func crossEnvironment(target domain.Target, tc *domain.ToolchainEnv) map[string]string {
	cflags := slices.Clone(target.CFlags)
	cflags = append(cflags, "-fno-lto")
	ldflags := slices.Clone(target.LDFlags)
	ldflags = append(ldflags, "-fno-lto")

	return map[string]string{
		"PATH":          tc.BinDir + string(os.PathListSeparator) + os.Getenv("PATH"),
		"CROSS_COMPILE": tc.CrossCompile(),
		"CC":            tc.CC(),
		"CXX":           tc.CXX(),
		"AR":            tc.AR(),
		"RANLIB":        tc.Ranlib(),
		"CFLAGS":        strings.Join(cflags, " "),
		"CXXFLAGS":      strings.Join(cflags, " "),
		"LDFLAGS":       strings.Join(ldflags, " "),
	}
}
