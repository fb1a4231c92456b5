// core/segment/helpers_test.go
package segment

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gtfseg-core/gtf"
)

// iv parses one GTF line, failing the test on malformed input.
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

// render turns intervals back into GTF lines for readable comparisons.
func render(ivs []gtf.Interval) []string {
	out := make([]string, len(ivs))
	for i, x := range ivs {
		out[i] = x.String()
	}
	return out
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func gtfFile(t *testing.T, lines ...string) string {
	t.Helper()
	return writeFile(t, "ann.gtf", strings.Join(lines, "\n")+"\n")
}
