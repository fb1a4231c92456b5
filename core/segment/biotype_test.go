// core/segment/biotype_test.go
package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gtfseg-core/gtf"
)

func TestAnnotateBiotypes(t *testing.T) {
	t.Parallel()

	gc := &GeneContent{
		Gene:  iv(t, "1\t.\tgene\t1\t200\t.\t+\t.\tgene_biotype \"G\";"),
		Order: []string{"transcript1", "transcript2"},
		Transcripts: map[string][]gtf.Interval{
			"transcript1": ivList(t,
				"1\t.\tCDS\t1\t5\t.\t+\t.\tgene_biotype \"G\"; transcript_biotype \"A\";",
				"1\t.\tintron\t6\t10\t.\t+\t.\t.",
			),
			"transcript2": ivList(t,
				"1\t.\tncRNA\t1\t5\t.\t+\t.\tgene_biotype \"G\"; transcript_biotype \"B\";",
				"1\t.\tintron\t6\t10\t.\t+\t.\t.",
			),
		},
	}
	AnnotateBiotypes(gc)

	assert.Equal(t, "A, B, G", gc.Gene.Attrs.Value("biotype"))
	for _, row := range gc.Transcripts["transcript1"] {
		assert.Equal(t, "A", row.Attrs.Value("biotype"), row.String())
	}
	for _, row := range gc.Transcripts["transcript2"] {
		assert.Equal(t, "B", row.Attrs.Value("biotype"), row.String())
	}
}

func TestAnnotateBiotypesNothingKnown(t *testing.T) {
	t.Parallel()

	gc := &GeneContent{
		Gene:  iv(t, "1\t.\tgene\t1\t100\t.\t+\t.\tgene_id \"G1\";"),
		Order: []string{"T1"},
		Transcripts: map[string][]gtf.Interval{
			"T1": ivList(t, "1\t.\tncRNA\t1\t100\t.\t+\t.\tgene_id \"G1\"; transcript_id \"T1\";"),
		},
	}
	AnnotateBiotypes(gc)

	assert.Equal(t, ".", gc.Gene.Attrs.Value("biotype"))
	assert.Equal(t, ".", gc.Transcripts["T1"][0].Attrs.Value("biotype"))
}
