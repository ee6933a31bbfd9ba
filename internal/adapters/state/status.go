// Package state persists build status history and prepare stamps.
package state

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/simark/many-buildroots/internal/core/domain"
	"go.trai.ch/zerr"
)

// StatusStore implements ports.StatusStore with an append-only text file
// per pipeline.
type StatusStore struct{}

// NewStatusStore creates a new StatusStore.
func NewStatusStore() *StatusStore {
	return &StatusStore{}
}

// Append writes one "<time> <target> <outcome> <duration>" line to the
// pipeline's status file under root.
func (s *StatusStore) Append(root string, pipeline domain.Pipeline, record domain.StatusRecord) error {
	path := domain.NewLayout(root).StatusFile(pipeline)

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStatusCreateFailed.Error())
	}

	//nolint:gosec // Path is derived from the project layout
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return zerr.Wrap(err, domain.ErrStatusCreateFailed.Error())
	}
	defer func() { _ = f.Close() }()

	line := fmt.Sprintf("%s %s %s %s\n",
		record.Time.UTC().Format(time.RFC3339),
		record.Target,
		record.Outcome.Tag(),
		record.Duration.Round(time.Second),
	)
	if _, err := f.WriteString(line); err != nil {
		return zerr.Wrap(err, domain.ErrStatusWriteFailed.Error())
	}

	return nil
}

// Load reads all status records for a pipeline, oldest first. A missing
// file is not an error.
func (s *StatusStore) Load(root string, pipeline domain.Pipeline) ([]domain.StatusRecord, error) {
	path := domain.NewLayout(root).StatusFile(pipeline)

	//nolint:gosec // Path is derived from the project layout
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStatusReadFailed.Error())
	}

	var records []domain.StatusRecord
	for _, line := range strings.Split(string(data), "\n") {
		record, ok := parseRecord(line)
		if !ok {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// parseRecord parses one status line. Lines that do not parse are skipped
// so a hand-edited history does not break loading.
func parseRecord(line string) (domain.StatusRecord, bool) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return domain.StatusRecord{}, false
	}

	ts, err := time.Parse(time.RFC3339, fields[0])
	if err != nil {
		return domain.StatusRecord{}, false
	}

	outcome, ok := domain.OutcomeFromTag(fields[2])
	if !ok {
		return domain.StatusRecord{}, false
	}

	duration, err := time.ParseDuration(fields[3])
	if err != nil {
		return domain.StatusRecord{}, false
	}

	return domain.StatusRecord{
		Time:     ts,
		Target:   fields[1],
		Outcome:  outcome,
		Duration: duration,
	}, true
}
