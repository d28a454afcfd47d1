// Package domain implements the mutation count pipeline: path grammar,
// directory walker, metadata extraction, record parsing and aggregation.
package domain

import (
	"regexp"

	m "tp53.dev/pkg/mutcount/internal/model"
)

const sampleExpr = `vcfs_\d{1,2}(hr|d)_[A-C]`

// Anchored so a name must match in full; partial matches are rejected.
var levelPatterns = map[m.Level]*regexp.Regexp{
	m.LevelTimepoint:    regexp.MustCompile(`^\d{1,2}(hr|d)_final(2)?$`),
	m.LevelSample:       regexp.MustCompile(`^` + sampleExpr + `$`),
	m.LevelOligo:        regexp.MustCompile(`^` + sampleExpr + `_oligo(1A|1C|1G|1T|2|3only)$`),
	m.LevelMutationFile: regexp.MustCompile(`^mut_id\d+_\d+\.txt$`),
}

// Accept reports whether name is a valid entry at level. It never fails:
// names that do not fit the grammar are simply not accepted.
func Accept(level m.Level, name string) bool {
	pattern, ok := levelPatterns[level]
	if !ok {
		return false
	}

	return pattern.MatchString(name)
}

// FilterNames keeps the names accepted at level, preserving their order.
func FilterNames(level m.Level, names []string) []string {
	accepted := make([]string, 0, len(names))

	for _, name := range names {
		if Accept(level, name) {
			accepted = append(accepted, name)
		}
	}

	return accepted
}
