package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/simark/many-buildroots/internal/core/domain"
)

func testProject() *domain.Project {
	return &domain.Project{
		Root: "/work",
		Targets: []domain.Target{
			{Name: "aarch64", Defconfig: "qemu_aarch64_virt_defconfig"},
			{Name: "armv7", Defconfig: "qemu_arm_vexpress_defconfig"},
			{Name: "xtensa", Defconfig: "qemu_xtensa_lx60_defconfig"},
		},
	}
}

func TestProject_Resolve(t *testing.T) {
	tests := []struct {
		name      string
		requested []string
		want      []string
		wantErr   error
	}{
		{
			name:      "empty request selects all in declaration order",
			requested: nil,
			want:      []string{"aarch64", "armv7", "xtensa"},
		},
		{
			name:      "subset keeps request order",
			requested: []string{"xtensa", "aarch64"},
			want:      []string{"xtensa", "aarch64"},
		},
		{
			name:      "single target",
			requested: []string{"armv7"},
			want:      []string{"armv7"},
		},
		{
			name:      "unknown target is fatal",
			requested: []string{"aarch64", "riscv128"},
			wantErr:   domain.ErrUnknownTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProject()
			got, err := p.Resolve(tt.requested)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}

			require.NoError(t, err)
			names := make([]string, len(got))
			for i, tgt := range got {
				names[i] = tgt.Name
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestProject_ResolveCopiesTargets(t *testing.T) {
	p := testProject()
	got, err := p.Resolve(nil)
	require.NoError(t, err)

	got[0].Name = "mutated"
	assert.Equal(t, "aarch64", p.Targets[0].Name)
}

func TestRunReport_Success(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []domain.Outcome
		want     bool
	}{
		{
			name:     "all success",
			outcomes: []domain.Outcome{domain.OutcomeSuccess, domain.OutcomeSuccess},
			want:     true,
		},
		{
			name:     "empty report succeeds",
			outcomes: nil,
			want:     true,
		},
		{
			name:     "one failure fails the run",
			outcomes: []domain.Outcome{domain.OutcomeSuccess, domain.OutcomeCompileFailed},
			want:     false,
		},
		{
			name:     "skipped is not success",
			outcomes: []domain.Outcome{domain.OutcomeSuccess, domain.OutcomeSkipped},
			want:     false,
		},
		{
			name:     "missing toolchain is not success",
			outcomes: []domain.Outcome{domain.OutcomeToolchainNotFound},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.NewRunReport(domain.PipelineToolchain)
			for i, o := range tt.outcomes {
				r.Append(domain.Result{Target: string(rune('a' + i)), Outcome: o})
			}
			assert.Equal(t, tt.want, r.Success())
			assert.Equal(t, len(tt.outcomes), r.Len())
		})
	}
}

func TestRunReport_Counts(t *testing.T) {
	r := domain.NewRunReport(domain.PipelineGDB)
	r.Append(domain.Result{Target: "a", Outcome: domain.OutcomeSuccess})
	r.Append(domain.Result{Target: "b", Outcome: domain.OutcomePrepareFailed})
	r.Append(domain.Result{Target: "c", Outcome: domain.OutcomeToolchainNotFound})
	r.Append(domain.Result{Target: "d", Outcome: domain.OutcomeSkipped, Reason: domain.SkipReasonStopped})
	r.Append(domain.Result{Target: "e", Outcome: domain.OutcomeSkipped, Reason: domain.SkipReasonStopped})

	succeeded, failed, skipped := r.Counts()
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 2, failed)
	assert.Equal(t, 2, skipped)
}

func TestOutcome_TagRoundTrip(t *testing.T) {
	outcomes := []domain.Outcome{
		domain.OutcomeSuccess,
		domain.OutcomePrepareFailed,
		domain.OutcomeCompileFailed,
		domain.OutcomeSkipped,
		domain.OutcomeToolchainNotFound,
	}

	for _, o := range outcomes {
		got, ok := domain.OutcomeFromTag(o.Tag())
		require.True(t, ok, "tag %q", o.Tag())
		assert.Equal(t, o, got)
	}

	_, ok := domain.OutcomeFromTag("EXPLODED")
	assert.False(t, ok)
}

func TestToolchainEnv_Tools(t *testing.T) {
	env := &domain.ToolchainEnv{
		Prefix: "aarch64-buildroot-linux-gnu",
		BinDir: "/work/toolchains/aarch64/bin",
	}

	assert.Equal(t, "/work/toolchains/aarch64/bin/aarch64-buildroot-linux-gnu-gcc", env.CC())
	assert.Equal(t, "/work/toolchains/aarch64/bin/aarch64-buildroot-linux-gnu-g++", env.CXX())
	assert.Equal(t, "/work/toolchains/aarch64/bin/aarch64-buildroot-linux-gnu-ar", env.AR())
	assert.Equal(t, "/work/toolchains/aarch64/bin/aarch64-buildroot-linux-gnu-ranlib", env.Ranlib())
	assert.Equal(t, "/work/toolchains/aarch64/bin/aarch64-buildroot-linux-gnu-", env.CrossCompile())
}

func TestToolchainEnv_CCacheWrapsCompilersOnly(t *testing.T) {
	env := &domain.ToolchainEnv{
		Prefix: "xtensa-buildroot-linux-uclibc",
		BinDir: "/tc/bin",
		CCache: true,
	}

	assert.Equal(t, "ccache /tc/bin/xtensa-buildroot-linux-uclibc-gcc", env.CC())
	assert.Equal(t, "ccache /tc/bin/xtensa-buildroot-linux-uclibc-g++", env.CXX())
	assert.Equal(t, "/tc/bin/xtensa-buildroot-linux-uclibc-ar", env.AR())
}
