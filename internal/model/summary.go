package model

// Summary describes one pipeline run.
type Summary struct {
	Root       Path         `yaml:"root"`
	Output     Path         `yaml:"output"`
	GroupBy    []GroupField `yaml:"group_by"`
	Files      int          `yaml:"files"`
	Records    int          `yaml:"records"`
	Dropped    int          `yaml:"dropped_barcode_rows"`
	Mismatched int          `yaml:"term_class_mismatches"`
	Rows       int          `yaml:"rows"`
	Total      int          `yaml:"total_count"`
}

// MutationFile pairs a discovered file with the metadata its path encodes.
type MutationFile struct {
	Path     Path
	Metadata Metadata
}
