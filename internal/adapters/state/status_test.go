package state_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/simark/many-buildroots/internal/adapters/state"
	"github.com/simark/many-buildroots/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusStore_AppendAndLoad(t *testing.T) {
	root := t.TempDir()
	store := state.NewStatusStore()

	first := domain.StatusRecord{
		Time:     time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Target:   "armhf",
		Outcome:  domain.OutcomeSuccess,
		Duration: 12*time.Minute + 34*time.Second,
	}
	second := domain.StatusRecord{
		Time:     time.Date(2024, 3, 1, 11, 30, 0, 0, time.UTC),
		Target:   "ppc64le",
		Outcome:  domain.OutcomeCompileFailed,
		Duration: 3 * time.Minute,
	}

	require.NoError(t, store.Append(root, domain.PipelineToolchain, first))
	require.NoError(t, store.Append(root, domain.PipelineToolchain, second))

	records, err := store.Load(root, domain.PipelineToolchain)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.True(t, records[0].Time.Equal(first.Time))
	assert.Equal(t, "armhf", records[0].Target)
	assert.Equal(t, domain.OutcomeSuccess, records[0].Outcome)
	assert.Equal(t, first.Duration, records[0].Duration)

	assert.Equal(t, "ppc64le", records[1].Target)
	assert.Equal(t, domain.OutcomeCompileFailed, records[1].Outcome)
}

func TestStatusStore_Load_NoFile(t *testing.T) {
	store := state.NewStatusStore()

	records, err := store.Load(t.TempDir(), domain.PipelineGDB)
	require.NoError(t, err)
	assert.Nil(t, records)
}

func TestStatusStore_Load_SkipsMalformedLines(t *testing.T) {
	root := t.TempDir()
	path := domain.NewLayout(root).StatusFile(domain.PipelineToolchain)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))

	content := "this is not a record\n" +
		"2024-03-01T10:00:00Z armhf SUCCESS 10m0s\n" +
		"2024-03-01T11:00:00Z armhf NOT-A-TAG 10m0s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))

	records, err := state.NewStatusStore().Load(root, domain.PipelineToolchain)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "armhf", records[0].Target)
	assert.Equal(t, domain.OutcomeSuccess, records[0].Outcome)
}

func TestStatusStore_PipelinesAreIndependent(t *testing.T) {
	root := t.TempDir()
	store := state.NewStatusStore()

	record := domain.StatusRecord{
		Time:     time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Target:   "armhf",
		Outcome:  domain.OutcomeSuccess,
		Duration: time.Minute,
	}
	require.NoError(t, store.Append(root, domain.PipelineToolchain, record))

	gdbRecords, err := store.Load(root, domain.PipelineGDB)
	require.NoError(t, err)
	assert.Empty(t, gdbRecords)

	toolchainRecords, err := store.Load(root, domain.PipelineToolchain)
	require.NoError(t, err)
	assert.Len(t, toolchainRecords, 1)
}
