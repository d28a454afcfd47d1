// Package model defines the data structures shared by the mutation count pipeline.
package model

// Path represents a file system path.
type Path string

// Level identifies the nesting depth a name pattern applies to.
type Level int

const (
	// LevelTimepoint matches directories such as 48hr_final or 12d_final2.
	LevelTimepoint Level = iota
	// LevelSample matches directories such as vcfs_48hr_C.
	LevelSample
	// LevelOligo matches directories such as vcfs_48hr_C_oligo1A.
	LevelOligo
	// LevelMutationFile matches leaf files such as mut_id8_3.txt.
	LevelMutationFile
)

// String returns a short label used in logs.
func (l Level) String() string {
	switch l {
	case LevelTimepoint:
		return "timepoint"
	case LevelSample:
		return "sample"
	case LevelOligo:
		return "oligo"
	case LevelMutationFile:
		return "mutation-file"
	}

	return "unknown"
}
