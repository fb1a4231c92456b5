// core/segment/consistency.go
package segment

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"gtfseg-core/gtf"
)

// ErrNoTranscript is returned when a transcript group lacks its container
// interval and one cannot be derived.
var ErrNoTranscript = errors.New("no transcript interval in group")

// checkConsistency validates one processed transcript group: a transcript
// interval must be present, the remaining intervals must tile its span
// exactly, and non-intron features must appear in an order valid for the
// strand (UTR5, CDS, UTR3 along ascending coordinates on "+", mirrored on
// "-"; ncRNA never mixes with coding features).
func checkConsistency(group []gtf.Interval) error {
	var transcript *gtf.Interval
	parts := make([]gtf.Interval, 0, len(group))
	for i := range group {
		if group[i].Feature == "transcript" {
			if transcript == nil {
				transcript = &group[i]
			}
			continue
		}
		parts = append(parts, group[i])
	}
	if transcript == nil {
		return ErrNoTranscript
	}
	sort.SliceStable(parts, func(i, j int) bool { return parts[i].Start < parts[j].Start })

	pos := transcript.Start
	for _, p := range parts {
		if p.Start != pos {
			return errors.Errorf("intervals do not tile transcript %q: gap or overlap at %d\n%s",
				transcript.Attrs.Value("transcript_id"), pos, dump(group))
		}
		pos = p.End + 1
	}
	if pos-1 != transcript.End {
		return errors.Errorf("intervals do not cover transcript %q: ends at %d, want %d\n%s",
			transcript.Attrs.Value("transcript_id"), pos-1, transcript.End, dump(group))
	}

	ncRNA, coding := false, false
	prevRank := 0
	for _, p := range parts {
		switch p.Feature {
		case "intron":
			continue
		case "ncRNA":
			ncRNA = true
			continue
		}
		coding = true
		r := strandRank(p.Feature, transcript.Strand)
		if r < 0 {
			return errors.Errorf("unexpected feature %q in transcript group\n%s", p.Feature, dump(group))
		}
		if r < prevRank {
			return errors.Errorf("feature %q out of order on strand %q\n%s", p.Feature, transcript.Strand, dump(group))
		}
		prevRank = r
	}
	if ncRNA && coding {
		return errors.Errorf("ncRNA mixed with coding features\n%s", dump(group))
	}
	return nil
}

func strandRank(feature, strand string) int {
	order := []string{"UTR5", "CDS", "UTR3"}
	if strand == "-" {
		order = []string{"UTR3", "CDS", "UTR5"}
	}
	for i, f := range order {
		if f == feature {
			return i
		}
	}
	return -1
}

func dump(group []gtf.Interval) string {
	lines := make([]string, len(group))
	for i, iv := range group {
		lines[i] = iv.String()
	}
	return strings.Join(lines, "\n")
}
