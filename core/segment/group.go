// core/segment/group.go
package segment

import (
	"github.com/pkg/errors"

	"gtfseg-core/gtf"
)

// ProcessTranscriptGroup turns the raw rows of one transcript (transcript
// header, exons, CDS, stop codons) into a validated segmentation: the
// transcript interval, its introns, and CDS/UTR5/UTR3 features, or ncRNA
// exons when the transcript is non-coding. A missing transcript interval
// is synthesized from the exon span. Other row types (start codons,
// pre-annotated UTRs) are dropped; their content is recomputed.
func ProcessTranscriptGroup(rows []gtf.Interval) ([]gtf.Interval, error) {
	var (
		transcript *gtf.Interval
		exons      []gtf.Interval
		cdses      []gtf.Interval
		stops      []gtf.Interval
	)
	for i := range rows {
		switch rows[i].Feature {
		case "transcript":
			if transcript == nil {
				transcript = &rows[i]
			}
		case "exon":
			exons = append(exons, rows[i])
		case "CDS":
			cdses = append(cdses, rows[i])
		case "stop_codon":
			stops = append(stops, rows[i])
		}
	}
	if len(exons) == 0 {
		return nil, errors.New("transcript group without exons")
	}

	if transcript == nil {
		lo, hi := span(exons)
		transcript = &gtf.Interval{
			Chrom:   exons[0].Chrom,
			Source:  ".",
			Feature: "transcript",
			Start:   lo,
			End:     hi,
			Score:   ".",
			Strand:  exons[0].Strand,
			Frame:   ".",
			Attrs:   exons[0].Attrs.Filter(attrKeys...),
		}
	}

	group := []gtf.Interval{*transcript}
	group = append(group, Introns(exons)...)

	if len(cdses) == 0 {
		for _, ex := range exons {
			nc := ex
			nc.Feature = "ncRNA"
			group = append(group, nc)
		}
	} else {
		newCDS, utrs := codingExons(cdses, exons, stops)
		group = append(group, newCDS...)
		group = append(group, utrs...)
	}

	if err := checkConsistency(group); err != nil {
		return nil, errors.Wrapf(err, "transcript %q", transcript.Attrs.Value("transcript_id"))
	}
	return group, nil
}
