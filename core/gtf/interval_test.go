// core/gtf/interval_test.go
package gtf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	t.Parallel()

	iv, err := ParseLine("1\thavana\texon\t100\t200\t.\t+\t.\tgene_id \"G1\"; transcript_id \"T1\";")
	require.NoError(t, err)
	assert.Equal(t, "1", iv.Chrom)
	assert.Equal(t, "havana", iv.Source)
	assert.Equal(t, "exon", iv.Feature)
	assert.Equal(t, 100, iv.Start)
	assert.Equal(t, 200, iv.End)
	assert.Equal(t, "+", iv.Strand)
	assert.Equal(t, "G1", iv.Attrs.Value("gene_id"))
	assert.Equal(t, 101, iv.Len())
}

func TestParseLineErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		line string
	}{
		{"too few fields", "1\t.\texon\t1\t10"},
		{"bad start", "1\t.\texon\tx\t10\t.\t+\t.\t."},
		{"bad end", "1\t.\texon\t1\ty\t.\t+\t.\t."},
		{"end before start", "1\t.\texon\t10\t1\t.\t+\t.\t."},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseLine(tc.line)
			assert.Error(t, err)
		})
	}
}

func TestIntervalString(t *testing.T) {
	t.Parallel()

	line := "1\t.\tCDS\t410\t430\t.\t+\t.\tgene_id \"G2\"; transcript_id \"T3\";"
	iv, err := ParseLine(line)
	require.NoError(t, err)
	assert.Equal(t, line, iv.String())
}

func TestIntervalOverlapsContains(t *testing.T) {
	t.Parallel()

	a := Interval{Start: 10, End: 20}
	assert.True(t, a.Overlaps(Interval{Start: 20, End: 30}))
	assert.False(t, a.Overlaps(Interval{Start: 21, End: 30}))
	assert.True(t, a.Contains(Interval{Start: 12, End: 18}))
	assert.False(t, a.Contains(Interval{Start: 12, End: 22}))
}

func TestBiotype(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		line string
		want string
	}{
		{
			"transcript_biotype wins",
			"1\t.\ttranscript\t1\t2\t.\t+\t.\ttranscript_biotype \"lincRNA\"; gene_biotype \"x\";",
			"lincRNA",
		},
		{
			"gencode transcript_type",
			"1\t.\ttranscript\t1\t2\t.\t+\t.\ttranscript_type \"miRNA\";",
			"miRNA",
		},
		{
			"gene_biotype fallback",
			"1\t.\tgene\t1\t2\t.\t+\t.\tgene_biotype \"protein_coding\";",
			"protein_coding",
		},
		{
			"source column fallback",
			"1\tprotein_coding\texon\t1\t2\t.\t+\t.\tgene_id \"G\";",
			"protein_coding",
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			iv, err := ParseLine(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.want, iv.Biotype())
		})
	}
}

func TestSortIntervals(t *testing.T) {
	t.Parallel()

	ivs := []Interval{
		{Chrom: "MT", Feature: "exon", Start: 1, End: 10, Strand: "+"},
		{Chrom: "1", Feature: "transcript", Start: 400, End: 500, Strand: "+"},
		{Chrom: "1", Feature: "gene", Start: 400, End: 500, Strand: "+"},
		{Chrom: "10", Feature: "exon", Start: 5, End: 9, Strand: "+"},
		{Chrom: "2", Feature: "exon", Start: 5, End: 9, Strand: "+"},
		{Chrom: "1", Feature: "UTR5", Start: 400, End: 409, Strand: "+"},
	}
	SortIntervals(ivs)

	got := make([]string, len(ivs))
	for i, iv := range ivs {
		got[i] = iv.Chrom + ":" + iv.Feature
	}
	assert.Equal(t, []string{
		"1:UTR5", "1:gene", "1:transcript", "2:exon", "10:exon", "MT:exon",
	}, got)
}
