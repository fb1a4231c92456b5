// core/regions/uniq.go
package regions

import (
	"sort"
	"strings"

	"gtfseg-core/gtf"
)

// Gene identifies the gene a feature belongs to; Size breaks ties when
// several genes claim the same stretch (the longest wins).
type Gene struct {
	ID   string
	Name string
	Size int
}

// Overlap is one segmentation feature overlapping an atomic segment.
type Overlap struct {
	Feature string
	Subtype string
	Gene    Gene
}

// UniqRegion resolves the features overlapping one atomic segment into a
// single region interval. The highest-ranked feature type wins; the
// region's biotype is the sorted, deduplicated, comma-joined set of the
// winning features' simplified biotypes; the longest gene wins. A
// 3prime_overlapping_ncRNA feature counts as UTR3 of an mRNA. Intergenic
// segments carry "." identifiers and an empty biotype.
func UniqRegion(seg Segment, over []Overlap) gtf.Interval {
	out := gtf.Interval{
		Chrom:   seg.Chrom,
		Source:  ".",
		Feature: "intergenic",
		Start:   seg.Start + 1,
		End:     seg.End,
		Score:   ".",
		Strand:  seg.Strand,
		Frame:   ".",
	}

	type pair struct {
		feature    string
		simplified string
		gene       Gene
	}
	pairs := make([]pair, 0, len(over))
	intergenicOnly := true
	for _, o := range over {
		p := pair{feature: o.Feature, simplified: SimplifyBiotype(o.Feature, o.Subtype), gene: o.Gene}
		if o.Subtype == "3prime_overlapping_ncRNA" {
			p.feature, p.simplified = "UTR3", "mRNA"
		}
		if p.feature != "intergenic" {
			intergenicOnly = false
		}
		pairs = append(pairs, p)
	}

	if intergenicOnly {
		out.Attrs = gtf.Attributes{
			{Key: "gene_id", Value: "."},
			{Key: "gene_name", Value: "."},
			{Key: "biotype", Value: ""},
		}
		return out
	}

	win := len(TypeHierarchy)
	for _, p := range pairs {
		if r := typeRank(p.feature); r < win {
			win = r
		}
	}
	winType := TypeHierarchy[win]

	seen := make(map[string]struct{})
	var biotypes []string
	gene := Gene{ID: "."}
	haveGene := false
	for _, p := range pairs {
		if p.feature != winType {
			continue
		}
		if _, dup := seen[p.simplified]; !dup && p.simplified != "" {
			seen[p.simplified] = struct{}{}
			biotypes = append(biotypes, p.simplified)
		}
		if !haveGene || p.gene.Size > gene.Size {
			gene = p.gene
			haveGene = true
		}
	}
	sort.Strings(biotypes)

	out.Feature = winType
	out.Attrs = gtf.Attributes{
		{Key: "gene_id", Value: gene.ID},
		{Key: "gene_name", Value: gene.Name},
		{Key: "biotype", Value: strings.Join(biotypes, ",")},
	}
	return out
}
