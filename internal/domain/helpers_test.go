package domain

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const (
	variantA = "17_7578424_A/C"
	variantB = "17_7578439_T/G"
)

// mutationFileContent builds a tab-separated mutation file with one BARCODE
// control row followed by the given variants.
func mutationFileContent(term string, variants ...string) string {
	content := "Variant\tErica_term\tGene\n" + "ACGTACGT\tBARCODE\t-\n"
	for _, variant := range variants {
		content += variant + "\t" + term + "\tTP53\n"
	}

	return content
}

func mustMkdirAll(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(path, 0o755))
}

func mustWriteFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}
