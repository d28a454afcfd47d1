package model

// MutationClass is the pathogenicity class encoded by the classification directory.
type MutationClass string

const (
	// Deleterious marks mutations found under a DELETERIOUS directory.
	Deleterious MutationClass = "DELETERIOUS"
	// NonDeleterious marks mutations found under a NON-DELETERIOUS directory.
	NonDeleterious MutationClass = "NON-DELETERIOUS"
)

// MutationClasses returns the classification directory names in traversal order.
func MutationClasses() []MutationClass {
	return []MutationClass{Deleterious, NonDeleterious}
}

// ParseMutationClass reports whether name is a known classification directory.
func ParseMutationClass(name string) (MutationClass, bool) {
	for _, class := range MutationClasses() {
		if string(class) == name {
			return class, true
		}
	}

	return "", false
}

// Metadata holds everything derived from a mutation file's location.
type Metadata struct {
	Sample string
	Oligo  string
	Class  MutationClass
	Count  int
}

// MutationRecord is one normalized row read from a mutation file.
type MutationRecord struct {
	Chromosome string
	Position   int
	Ref        string
	Alt        string
	Sample     string
	Oligo      string
	Class      MutationClass
	Count      int

	// Term is the per-row classification read from the file itself. The
	// directory-derived Class is what gets reported; Term is kept as read.
	Term string
}
