// core/gtf/interval.go
package gtf

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Interval is a single GTF row. Start and End are 1-based and inclusive,
// as in the file format.
type Interval struct {
	Chrom   string
	Source  string
	Feature string
	Start   int
	End     int
	Score   string
	Strand  string
	Frame   string
	Attrs   Attributes
}

// Len returns the interval length in bases.
func (iv Interval) Len() int { return iv.End - iv.Start + 1 }

// Contains reports whether other lies entirely within iv.
func (iv Interval) Contains(other Interval) bool {
	return other.Start >= iv.Start && other.End <= iv.End
}

// Overlaps reports whether the two intervals share at least one base.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start <= other.End && other.Start <= iv.End
}

// String renders the interval as a tab-separated GTF line (no newline).
func (iv Interval) String() string {
	return strings.Join([]string{
		iv.Chrom, iv.Source, iv.Feature,
		strconv.Itoa(iv.Start), strconv.Itoa(iv.End),
		iv.Score, iv.Strand, iv.Frame, iv.Attrs.String(),
	}, "\t")
}

// ParseLine parses one tab-separated GTF row.
func ParseLine(line string) (Interval, error) {
	f := strings.Split(line, "\t")
	if len(f) != 9 {
		return Interval{}, errors.Errorf("gtf: want 9 fields, got %d", len(f))
	}
	start, err := strconv.Atoi(f[3])
	if err != nil {
		return Interval{}, errors.Wrap(err, "gtf: bad start")
	}
	end, err := strconv.Atoi(f[4])
	if err != nil {
		return Interval{}, errors.Wrap(err, "gtf: bad end")
	}
	if end < start {
		return Interval{}, errors.Errorf("gtf: end %d before start %d", end, start)
	}
	return Interval{
		Chrom:   f[0],
		Source:  f[1],
		Feature: f[2],
		Start:   start,
		End:     end,
		Score:   f[5],
		Strand:  f[6],
		Frame:   f[7],
		Attrs:   ParseAttributes(f[8]),
	}, nil
}

// Biotype extracts the interval's biotype. Ensembl and GENCODE spell the
// attribute differently; very old Ensembl releases carry it in the source
// column instead.
func (iv Interval) Biotype() string {
	for _, key := range []string{"transcript_biotype", "transcript_type", "gene_biotype", "gene_type"} {
		if v, ok := iv.Attrs.Get(key); ok {
			return v
		}
	}
	return iv.Source
}

// SortIntervals orders intervals by natural chromosome order, start, end,
// then feature rank (gene before transcript before everything else). The
// rank keeps container intervals ahead of their parts at equal coordinates.
func SortIntervals(ivs []Interval) {
	sort.SliceStable(ivs, func(i, j int) bool {
		a, b := ivs[i], ivs[j]
		if a.Chrom != b.Chrom {
			return ChromLess(a.Chrom, b.Chrom)
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.End != b.End {
			return a.End < b.End
		}
		ra, rb := featureRank(a.Feature), featureRank(b.Feature)
		if ra != rb {
			return ra < rb
		}
		return a.Strand < b.Strand
	})
}

func featureRank(feature string) int {
	switch feature {
	case "gene":
		return 0
	case "transcript":
		return 1
	default:
		return 2
	}
}
