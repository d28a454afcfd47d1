package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	m "tp53.dev/pkg/mutcount/internal/model"
)

// ErrMalformedPath reports a mutation file whose location does not have the
// oligo/classification/file shape the walker produces.
var ErrMalformedPath = errors.New("malformed mutation file path")

const (
	vcfsPrefix  = "vcfs"
	oligoPrefix = "oligo"
)

// ExtractMetadata derives sample, oligo, class and count from a mutation file
// path of the form .../vcfs_<tp>_<L>_oligo<v>/<CLASS>/mut_id<id>_<count>.txt.
func ExtractMetadata(path m.Path) (m.Metadata, error) {
	var meta m.Metadata

	segments := splitSegments(string(path))
	if len(segments) < 3 {
		return meta, fmt.Errorf("%w: %s: want oligo/class/file, got %d segment(s)", ErrMalformedPath, path, len(segments))
	}

	oligoDir := segments[len(segments)-3]
	classDir := segments[len(segments)-2]
	fileName := segments[len(segments)-1]

	class, ok := m.ParseMutationClass(classDir)
	if !ok {
		return meta, fmt.Errorf("%w: %s: unknown class directory %q", ErrMalformedPath, path, classDir)
	}

	sample, oligo, err := sampleAndOligo(oligoDir)
	if err != nil {
		return meta, fmt.Errorf("%w: %s: %v", ErrMalformedPath, path, err)
	}

	count, err := countFromFileName(fileName)
	if err != nil {
		return meta, fmt.Errorf("%w: %s: %v", ErrMalformedPath, path, err)
	}

	return m.Metadata{Sample: sample, Oligo: oligo, Class: class, Count: count}, nil
}

func splitSegments(path string) []string {
	var segments []string

	for _, segment := range strings.Split(filepath.ToSlash(filepath.Clean(path)), "/") {
		if segment != "" && segment != "." {
			segments = append(segments, segment)
		}
	}

	return segments
}

// sampleAndOligo splits vcfs_<tp>_<L>_oligo<v> into "<tp>_<L>" and "<v>".
func sampleAndOligo(dirName string) (string, string, error) {
	parts := strings.Split(dirName, "_")
	if len(parts) != 4 || parts[0] != vcfsPrefix {
		return "", "", fmt.Errorf("oligo directory %q: want vcfs_<timepoint>_<letter>_oligo<variant>", dirName)
	}

	if !strings.HasPrefix(parts[3], oligoPrefix) {
		return "", "", fmt.Errorf("oligo directory %q: missing %q prefix", dirName, oligoPrefix)
	}

	return parts[1] + "_" + parts[2], strings.TrimPrefix(parts[3], oligoPrefix), nil
}

// countFromFileName reads the trailing observation count of mut_id<id>_<count>.txt.
func countFromFileName(fileName string) (int, error) {
	stem := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	parts := strings.Split(stem, "_")
	if len(parts) != 3 {
		return 0, fmt.Errorf("file name %q: want mut_id<id>_<count>", fileName)
	}

	count, err := strconv.Atoi(parts[2])
	if err != nil || count < 0 {
		return 0, fmt.Errorf("file name %q: count %q is not a non-negative integer", fileName, parts[2])
	}

	return count, nil
}
