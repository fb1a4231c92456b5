// core/segment/exons.go
package segment

import "gtfseg-core/gtf"

// codingExons resolves a coding transcript's exons into final CDS and UTR
// intervals. Stop codons are merged into an overlapping or directly
// adjacent CDS; a stop codon touching no CDS (split across exons) becomes
// its own CDS piece, appended after the existing ones. Exon remainders
// outside the overall CDS span become UTR5/UTR3 according to strand.
func codingExons(cdses, exons, stops []gtf.Interval) (newCDS, utrs []gtf.Interval) {
	newCDS = make([]gtf.Interval, len(cdses))
	copy(newCDS, cdses)

	var standalone []gtf.Interval
	for _, sc := range stops {
		merged := false
		for i := range newCDS {
			if touches(sc, newCDS[i]) {
				if sc.Start < newCDS[i].Start {
					newCDS[i].Start = sc.Start
				}
				if sc.End > newCDS[i].End {
					newCDS[i].End = sc.End
				}
				merged = true
				break
			}
		}
		if !merged {
			piece := sc
			piece.Feature = "CDS"
			standalone = append(standalone, piece)
		}
	}
	newCDS = append(newCDS, standalone...)

	lo, hi := span(newCDS)
	minus := len(exons) > 0 && exons[0].Strand == "-"

	for _, ex := range exons {
		for _, gap := range subtract(ex, newCDS) {
			var label string
			switch {
			case gap.End < lo:
				label = "UTR5"
				if minus {
					label = "UTR3"
				}
			case gap.Start > hi:
				label = "UTR3"
				if minus {
					label = "UTR5"
				}
			default:
				// a hole between CDS pieces inside one exon; not a UTR
				continue
			}
			utr := ex
			utr.Feature = label
			utr.Start, utr.End = gap.Start, gap.End
			utrs = append(utrs, utr)
		}
	}
	return newCDS, utrs
}

// touches reports overlap or direct adjacency of a and b.
func touches(a, b gtf.Interval) bool {
	return a.Start <= b.End+1 && b.Start <= a.End+1
}

func span(ivs []gtf.Interval) (lo, hi int) {
	for i, iv := range ivs {
		if i == 0 || iv.Start < lo {
			lo = iv.Start
		}
		if i == 0 || iv.End > hi {
			hi = iv.End
		}
	}
	return lo, hi
}

type ivrange struct{ Start, End int }

// subtract returns the parts of exon not covered by any of cover.
func subtract(exon gtf.Interval, cover []gtf.Interval) []ivrange {
	var hits []ivrange
	for _, c := range cover {
		if c.Overlaps(exon) {
			s, e := c.Start, c.End
			if s < exon.Start {
				s = exon.Start
			}
			if e > exon.End {
				e = exon.End
			}
			hits = append(hits, ivrange{s, e})
		}
	}
	if len(hits) == 0 {
		return []ivrange{{exon.Start, exon.End}}
	}
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].Start < hits[j-1].Start; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
	var gaps []ivrange
	pos := exon.Start
	for _, h := range hits {
		if h.Start > pos {
			gaps = append(gaps, ivrange{pos, h.Start - 1})
		}
		if h.End+1 > pos {
			pos = h.End + 1
		}
	}
	if pos <= exon.End {
		gaps = append(gaps, ivrange{pos, exon.End})
	}
	return gaps
}
