package adapter

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
	m "tp53.dev/pkg/mutcount/internal/model"
)

// SummaryStore persists run summaries next to the report.
type SummaryStore interface {
	SaveSummary(path m.Path, summary m.Summary) error
	LoadSummary(path m.Path) (m.Summary, error)
}

type yamlSummaryStore struct {
	fs afero.Fs
}

// NewSummaryStore returns a SummaryStore writing YAML to the OS filesystem.
func NewSummaryStore() SummaryStore {
	return NewSummaryStoreFs(afero.NewOsFs())
}

// NewSummaryStoreFs returns a SummaryStore writing YAML to fs.
func NewSummaryStoreFs(fs afero.Fs) SummaryStore {
	return &yamlSummaryStore{fs: fs}
}

func (s *yamlSummaryStore) SaveSummary(path m.Path, summary m.Summary) error {
	data, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}

	if err := afero.WriteFile(s.fs, string(path), data, 0o644); err != nil {
		return fmt.Errorf("write summary %s: %w", path, err)
	}

	return nil
}

func (s *yamlSummaryStore) LoadSummary(path m.Path) (m.Summary, error) {
	var summary m.Summary

	data, err := afero.ReadFile(s.fs, string(path))
	if err != nil {
		return summary, fmt.Errorf("read summary %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &summary); err != nil {
		return summary, fmt.Errorf("decode summary %s: %w", path, err)
	}

	return summary, nil
}
