// core/regions/summary_test.go
package regions

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaries(t *testing.T) {
	t.Parallel()

	segPath := gtfFile(t,
		"1\t.\tintergenic\t1\t10\t.\t+\t.\tgene_id \".\";",
		"1\t.\tUTR3\t11\t20\t.\t+\t.\tbiotype \"mRNA\"; gene_name \"ABC\"; gene_id \"G1\";",
		"1\t.\tintron\t21\t30\t.\t+\t.\tbiotype \"lncRNA\"; gene_name \"ABC\"; gene_id \"G1\";",
		"1\t.\tCDS\t31\t40\t.\t+\t.\tbiotype \"mRNA\"; gene_name \"DEF\"; gene_id \"G2\";",
		"1\t.\tintron\t41\t50\t.\t+\t.\tbiotype \"sRNA,lncRNA\"; gene_name \"DEF\"; gene_id \"G2\";",
	)
	outDir := t.TempDir()
	require.NoError(t, Summaries(segPath, outDir))

	assert.Equal(t, []string{
		"CDS\t10",
		"UTR3\t10",
		"intron\t20",
		"intergenic\t10",
	}, readLines(t, filepath.Join(outDir, TemplateTypeFile)))

	// split biotypes share the interval length by integer division
	assert.Equal(t, []string{
		"CDS mRNA\t10",
		"UTR3 mRNA\t10",
		"intron lncRNA\t15",
		"intron sRNA\t5",
		"intergenic\t10",
	}, readLines(t, filepath.Join(outDir, TemplateSubtypeFile)))

	assert.Equal(t, []string{
		".\t\t10",
		"G1\tABC\t20",
		"G2\tDEF\t20",
	}, readLines(t, filepath.Join(outDir, TemplateGeneFile)))
}

func TestSummariesSkipsContainerRows(t *testing.T) {
	t.Parallel()

	segPath := gtfFile(t,
		"1\t.\tgene\t1\t100\t.\t+\t.\tgene_id \"G1\";",
		"1\t.\ttranscript\t1\t100\t.\t+\t.\tgene_id \"G1\"; transcript_id \"T1\";",
		"1\t.\tncRNA\t1\t100\t.\t+\t.\tbiotype \"miRNA\"; gene_id \"G1\";",
	)
	outDir := t.TempDir()
	require.NoError(t, Summaries(segPath, outDir))

	assert.Equal(t, []string{"ncRNA\t100"}, readLines(t, filepath.Join(outDir, TemplateTypeFile)))
	assert.Equal(t, []string{"ncRNA miRNA\t100"}, readLines(t, filepath.Join(outDir, TemplateSubtypeFile)))
	assert.Equal(t, []string{"G1\t\t100"}, readLines(t, filepath.Join(outDir, TemplateGeneFile)))
}

func TestSummariesMissingInput(t *testing.T) {
	t.Parallel()

	assert.Error(t, Summaries("no-such-file.gtf", t.TempDir()))
}
