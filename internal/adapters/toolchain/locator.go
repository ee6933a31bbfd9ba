// Package toolchain locates installed cross toolchains.
package toolchain

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/simark/many-buildroots/internal/core/domain"
	"go.trai.ch/zerr"
)

const gccSuffix = "-gcc"

// Locator implements ports.Locator by scanning a target's toolchain bin
// directory for the cross gcc.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate finds the toolchain installed for target. The triplet is derived
// from the name of the single *-gcc executable in the toolchain's bin
// directory; anything other than exactly one candidate means the toolchain
// is not usable.
func (l *Locator) Locate(target domain.Target) (*domain.ToolchainEnv, error) {
	binDir := filepath.Join(target.ToolchainDir, "bin")

	entries, err := os.ReadDir(binDir)
	if err != nil {
		werr := zerr.With(domain.ErrToolchainNotFound, "target", target.Name)
		return nil, zerr.With(werr, "reason", "toolchain bin directory is missing or unreadable: "+binDir)
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), gccSuffix) {
			candidates = append(candidates, entry.Name())
		}
	}

	switch len(candidates) {
	case 1:
		// The expected shape: one cross gcc names the triplet.
	case 0:
		werr := zerr.With(domain.ErrToolchainNotFound, "target", target.Name)
		return nil, zerr.With(werr, "reason", "no *-gcc found in "+binDir)
	default:
		werr := zerr.With(domain.ErrToolchainNotFound, "target", target.Name)
		werr = zerr.With(werr, "reason", "multiple *-gcc candidates found")
		return nil, zerr.With(werr, "candidates", strings.Join(candidates, ", "))
	}

	return &domain.ToolchainEnv{
		Prefix: strings.TrimSuffix(candidates[0], gccSuffix),
		BinDir: binDir,
		CCache: hasCCache(),
	}, nil
}

// hasCCache reports whether ccache is available on PATH.
func hasCCache() bool {
	_, err := exec.LookPath("ccache")
	return err == nil
}
