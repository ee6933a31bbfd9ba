package domain

import "path/filepath"

// ToolchainEnv is the resolved view of one target's built cross-toolchain:
// the compiler-prefix triplet and the derived tool paths. It is computed on
// demand and never cached across runs, since toolchains may be rebuilt
// between invocations.
type ToolchainEnv struct {
	// Prefix is the compiler triplet, e.g. "aarch64-buildroot-linux-gnu".
	Prefix string

	// BinDir is the toolchain's bin directory containing the prefixed
	// tools.
	BinDir string

	// CCache reports whether compiler invocations are wrapped with
	// ccache. The wrapping is recorded here rather than hidden so callers
	// can log the decision.
	CCache bool
}

// tool returns the absolute path of one prefixed tool.
func (e *ToolchainEnv) tool(name string) string {
	return filepath.Join(e.BinDir, e.Prefix+"-"+name)
}

// CC returns the C compiler invocation, ccache-wrapped when available.
func (e *ToolchainEnv) CC() string {
	return e.wrap(e.tool("gcc"))
}

// CXX returns the C++ compiler invocation, ccache-wrapped when available.
func (e *ToolchainEnv) CXX() string {
	return e.wrap(e.tool("g++"))
}

// AR returns the archiver path.
func (e *ToolchainEnv) AR() string {
	return e.tool("ar")
}

// Ranlib returns the ranlib path.
func (e *ToolchainEnv) Ranlib() string {
	return e.tool("ranlib")
}

// CrossCompile returns the CROSS_COMPILE prefix, the path up to and
// including the trailing dash.
func (e *ToolchainEnv) CrossCompile() string {
	return filepath.Join(e.BinDir, e.Prefix) + "-"
}

func (e *ToolchainEnv) wrap(path string) string {
	if e.CCache {
		return "ccache " + path
	}
	return path
}
