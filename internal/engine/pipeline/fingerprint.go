package pipeline

import (
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/simark/many-buildroots/internal/core/domain"
)

// fingerprint condenses every input of a target's prepare stage into a
// stable hex token. A stamp carrying the current fingerprint lets prepare be
// skipped; any input change, down to an edited fragment file, produces a
// different token and forces re-preparation.
func fingerprint(p domain.Pipeline, target domain.Target, settings domain.Settings, tc *domain.ToolchainEnv) string {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(string(p))
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(settings.SrcDir)
	_, _ = hasher.Write([]byte{0})

	if p == domain.PipelineGDB {
		hashGDBInputs(hasher, target, settings, tc)
	} else {
		hashToolchainInputs(hasher, target, settings)
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}

func hashToolchainInputs(hasher *xxhash.Digest, target domain.Target, settings domain.Settings) {
	_, _ = hasher.WriteString(target.Defconfig)
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(target.External)
	_, _ = hasher.Write([]byte{0})

	for _, opt := range target.Options {
		_, _ = hasher.WriteString(opt)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	_, _ = hasher.WriteString(target.ToolchainDir)
	_, _ = hasher.Write([]byte{0})

	hashFragment(hasher, settings.Fragment)
}

func hashGDBInputs(hasher *xxhash.Digest, target domain.Target, settings domain.Settings, tc *domain.ToolchainEnv) {
	_, _ = hasher.WriteString(settings.ConfigureOpts)
	_, _ = hasher.Write([]byte{0})

	for _, flag := range target.CFlags {
		_, _ = hasher.WriteString(flag)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	for _, flag := range target.LDFlags {
		_, _ = hasher.WriteString(flag)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})

	// The located toolchain is a prepare input too: configure bakes the
	// cross tools into its cache, so a different toolchain (or a ccache
	// appearing) warrants a fresh configure.
	if tc != nil {
		_, _ = hasher.WriteString(tc.Prefix)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(tc.BinDir)
		_, _ = hasher.Write([]byte{0})
		if tc.CCache {
			_, _ = hasher.Write([]byte{1})
		}
	}
}

// hashFragment folds the fragment's content in. An unreadable fragment
// hashes as its path alone; the prepare stage itself surfaces the read
// error.
func hashFragment(hasher *xxhash.Digest, path string) {
	_, _ = hasher.WriteString(path)
	_, _ = hasher.Write([]byte{0})
	if path == "" {
		return
	}

	content, err := os.ReadFile(path) //nolint:gosec // Path comes from the project configuration.
	if err != nil {
		return
	}
	_, _ = hasher.Write(content)
	_, _ = hasher.Write([]byte{0})
}
