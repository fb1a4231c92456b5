// core/regions/helpers_test.go
package regions

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gtfseg-core/gtf"
)

func iv(t *testing.T, line string) gtf.Interval {
	t.Helper()
	parsed, err := gtf.ParseLine(line)
	require.NoError(t, err)
	return parsed
}

func ivList(t *testing.T, lines ...string) []gtf.Interval {
	t.Helper()
	out := make([]gtf.Interval, len(lines))
	for i, line := range lines {
		out[i] = iv(t, line)
	}
	return out
}

func render(ivs []gtf.Interval) []string {
	out := make([]string, len(ivs))
	for i, x := range ivs {
		out[i] = x.String()
	}
	return out
}

func gtfFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "segmentation.gtf")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}
