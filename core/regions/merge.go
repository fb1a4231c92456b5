// core/regions/merge.go
package regions

import (
	"sort"

	"gtfseg-core/gtf"
)

// Merge coalesces overlapping or directly adjacent regions that agree on
// chromosome, strand, type, gene_id and biotype. The result is sorted by
// chromosome, start, end, strand.
func Merge(ivs []gtf.Interval) []gtf.Interval {
	if len(ivs) == 0 {
		return nil
	}
	work := make([]gtf.Interval, len(ivs))
	copy(work, ivs)
	sort.SliceStable(work, func(i, j int) bool {
		a, b := work[i], work[j]
		if a.Chrom != b.Chrom {
			return gtf.ChromLess(a.Chrom, b.Chrom)
		}
		if a.Strand != b.Strand {
			return a.Strand < b.Strand
		}
		return a.Start < b.Start
	})

	out := []gtf.Interval{work[0]}
	for _, iv := range work[1:] {
		last := &out[len(out)-1]
		if sameRegion(*last, iv) && iv.Start <= last.End+1 {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		out = append(out, iv)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Chrom != b.Chrom {
			return gtf.ChromLess(a.Chrom, b.Chrom)
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.End != b.End {
			return a.End < b.End
		}
		return a.Strand < b.Strand
	})
	return out
}

func sameRegion(a, b gtf.Interval) bool {
	return a.Chrom == b.Chrom &&
		a.Strand == b.Strand &&
		a.Feature == b.Feature &&
		a.Attrs.Value("gene_id") == b.Attrs.Value("gene_id") &&
		a.Attrs.Value("biotype") == b.Attrs.Value("biotype")
}
