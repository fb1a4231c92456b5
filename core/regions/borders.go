// core/regions/borders.go
package regions

import (
	"sort"

	"gtfseg-core/gtf"
)

// Segment is one atomic stretch between two feature borders on a strand.
// Coordinates are 0-based half-open (BED convention).
type Segment struct {
	Chrom  string
	Start  int
	End    int
	Strand string
}

// ConstructBorders cuts the genome at every interval boundary. For each
// (chromosome, strand) the sorted union of all starts and ends yields the
// atomic segments: every input interval is an exact concatenation of
// consecutive segments, so no segment straddles a feature border.
func ConstructBorders(ivs []gtf.Interval) []Segment {
	type key struct{ chrom, strand string }
	points := make(map[key]map[int]struct{})
	for _, iv := range ivs {
		k := key{iv.Chrom, iv.Strand}
		if points[k] == nil {
			points[k] = make(map[int]struct{})
		}
		points[k][iv.Start-1] = struct{}{}
		points[k][iv.End] = struct{}{}
	}

	keys := make([]key, 0, len(points))
	for k := range points {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].chrom != keys[j].chrom {
			return gtf.ChromLess(keys[i].chrom, keys[j].chrom)
		}
		return keys[i].strand < keys[j].strand
	})

	var out []Segment
	for _, k := range keys {
		ps := make([]int, 0, len(points[k]))
		for p := range points[k] {
			ps = append(ps, p)
		}
		sort.Ints(ps)
		for i := 0; i+1 < len(ps); i++ {
			out = append(out, Segment{Chrom: k.chrom, Start: ps[i], End: ps[i+1], Strand: k.strand})
		}
	}
	return out
}
