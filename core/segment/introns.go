// core/segment/introns.go
package segment

import (
	"sort"

	"gtfseg-core/gtf"
)

// attrKeys are the identifying attributes carried over onto derived
// intervals (introns, synthesized transcripts and genes).
var attrKeys = []string{"gene_id", "gene_name", "transcript_id"}

// Introns returns the gaps between consecutive exons as intron intervals.
// Each intron inherits the identifying attributes of the flanking exon that
// carries a gene_id (upstream preferred), or of the upstream exon when
// neither does.
func Introns(exons []gtf.Interval) []gtf.Interval {
	if len(exons) < 2 {
		return nil
	}
	sorted := make([]gtf.Interval, len(exons))
	copy(sorted, exons)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var introns []gtf.Interval
	for i := 0; i+1 < len(sorted); i++ {
		up, down := sorted[i], sorted[i+1]
		start, end := up.End+1, down.Start-1
		if start > end {
			continue
		}
		src := up
		if _, ok := up.Attrs.Get("gene_id"); !ok {
			if _, ok := down.Attrs.Get("gene_id"); ok {
				src = down
			}
		}
		introns = append(introns, gtf.Interval{
			Chrom:   up.Chrom,
			Source:  up.Source,
			Feature: "intron",
			Start:   start,
			End:     end,
			Score:   up.Score,
			Strand:  up.Strand,
			Frame:   up.Frame,
			Attrs:   src.Attrs.Filter(attrKeys...),
		})
	}
	return introns
}
