// core/segment/complement.go
package segment

import (
	"fmt"
	"sort"

	"gtfseg-core/genome"
	"gtfseg-core/gtf"
)

// Complement returns the intergenic intervals of one strand: everything a
// chromosome has outside the merged spans of that strand's genes.
// Chromosomes follow the sizes table's order; chromosomes without genes
// yield one full-length interval. Every interval carries a unique ID of
// the form interP00000 ("+") or interM00000 ("-").
func Complement(genes []gtf.Interval, sizes genome.Sizes, strand string) []gtf.Interval {
	tag := "P"
	if strand == "-" {
		tag = "M"
	}

	spans := make(map[string][]ivrange)
	for _, g := range genes {
		if g.Strand != strand {
			continue
		}
		spans[g.Chrom] = append(spans[g.Chrom], ivrange{g.Start, g.End})
	}

	var out []gtf.Interval
	n := 0
	add := func(chrom string, start, end int) {
		out = append(out, gtf.Interval{
			Chrom:   chrom,
			Source:  ".",
			Feature: "intergenic",
			Start:   start,
			End:     end,
			Score:   ".",
			Strand:  strand,
			Frame:   ".",
			Attrs: gtf.Attributes{
				{Key: "ID", Value: fmt.Sprintf("inter%s%05d", tag, n)},
				{Key: "gene_id", Value: "."},
				{Key: "transcript_id", Value: "."},
			},
		})
		n++
	}

	for _, c := range sizes {
		merged := mergeRanges(spans[c.Chrom])
		pos := 1
		for _, m := range merged {
			if m.Start > pos {
				add(c.Chrom, pos, m.Start-1)
			}
			if m.End+1 > pos {
				pos = m.End + 1
			}
		}
		if pos <= c.Length {
			add(c.Chrom, pos, c.Length)
		}
	}
	return out
}

// mergeRanges coalesces overlapping or adjacent ranges.
func mergeRanges(rs []ivrange) []ivrange {
	if len(rs) == 0 {
		return nil
	}
	sorted := make([]ivrange, len(rs))
	copy(sorted, rs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	out := []ivrange{sorted[0]}
	for _, r := range sorted[1:] {
		last := &out[len(out)-1]
		if r.Start <= last.End+1 {
			if r.End > last.End {
				last.End = r.End
			}
			continue
		}
		out = append(out, r)
	}
	return out
}
