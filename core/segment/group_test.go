// core/segment/group_test.go
package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessTranscriptGroupNoExons(t *testing.T) {
	t.Parallel()

	rows := ivList(t, "1\t.\ttranscript\t1\t100\t.\t+\t.\t.")
	_, err := ProcessTranscriptGroup(rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "without exons")
}

// Without a transcript row one is synthesized from the exon span; without
// CDS rows all exons turn into ncRNA.
func TestProcessTranscriptGroupSynthesizesTranscript(t *testing.T) {
	t.Parallel()

	rows := ivList(t,
		"1\t.\texon\t1\t30\t.\t+\t.\texon_number \"1\";",
		"1\t.\texon\t60\t100\t.\t+\t.\texon_number \"2\";",
	)
	got, err := ProcessTranscriptGroup(rows)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"1\t.\ttranscript\t1\t100\t.\t+\t.\t.",
		"1\t.\tintron\t31\t59\t.\t+\t.\t.",
		"1\t.\tncRNA\t1\t30\t.\t+\t.\texon_number \"1\";",
		"1\t.\tncRNA\t60\t100\t.\t+\t.\texon_number \"2\";",
	}, render(got))
}

func TestProcessTranscriptGroupCoding(t *testing.T) {
	t.Parallel()

	rows := ivList(t,
		"1\t.\ttranscript\t400\t500\t.\t+\t.\tgene_id \"G2\"; transcript_id \"T3\";",
		"1\t.\texon\t400\t430\t.\t+\t.\tgene_id \"G2\"; transcript_id \"T3\"; exon_number \"1\";",
		"1\t.\tCDS\t410\t430\t.\t+\t.\tgene_id \"G2\"; transcript_id \"T3\";",
		"1\t.\texon\t470\t500\t.\t+\t.\tgene_id \"G2\"; transcript_id \"T3\"; exon_number \"2\";",
		"1\t.\tCDS\t470\t490\t.\t+\t.\tgene_id \"G2\"; transcript_id \"T3\";",
	)
	got, err := ProcessTranscriptGroup(rows)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"1\t.\ttranscript\t400\t500\t.\t+\t.\tgene_id \"G2\"; transcript_id \"T3\";",
		"1\t.\tintron\t431\t469\t.\t+\t.\tgene_id \"G2\"; transcript_id \"T3\";",
		"1\t.\tCDS\t410\t430\t.\t+\t.\tgene_id \"G2\"; transcript_id \"T3\";",
		"1\t.\tCDS\t470\t490\t.\t+\t.\tgene_id \"G2\"; transcript_id \"T3\";",
		"1\t.\tUTR5\t400\t409\t.\t+\t.\tgene_id \"G2\"; transcript_id \"T3\"; exon_number \"1\";",
		"1\t.\tUTR3\t491\t500\t.\t+\t.\tgene_id \"G2\"; transcript_id \"T3\"; exon_number \"2\";",
	}, render(got))
}

// Exons that do not tile the declared transcript span fail validation.
func TestProcessTranscriptGroupFailsValidation(t *testing.T) {
	t.Parallel()

	rows := ivList(t,
		"1\t.\ttranscript\t1\t200\t.\t+\t.\ttranscript_id \"42\";",
		"1\t.\texon\t1\t30\t.\t+\t.\texon_number \"1\";",
		"1\t.\texon\t60\t100\t.\t+\t.\texon_number \"2\";",
	)
	_, err := ProcessTranscriptGroup(rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `transcript "42"`)
}
