// core/segment/biotype.go
package segment

import (
	"sort"
	"strings"

	"gtfseg-core/gtf"
)

// AnnotateBiotypes stamps a biotype attribute on every interval of the
// gene. Each transcript's rows get that transcript's biotype; the gene
// interval gets the sorted union of its own and its transcripts' biotypes.
// "." entries are dropped from the union unless nothing else remains.
func AnnotateBiotypes(gc *GeneContent) {
	union := map[string]struct{}{gc.Gene.Biotype(): {}}
	for _, tid := range gc.Order {
		rows := gc.Transcripts[tid]
		bt := transcriptBiotype(rows)
		union[bt] = struct{}{}
		for i := range rows {
			rows[i].Attrs = rows[i].Attrs.Clone()
			rows[i].Attrs.Set("biotype", bt)
		}
	}
	gc.Gene.Attrs = gc.Gene.Attrs.Clone()
	gc.Gene.Attrs.Set("biotype", joinBiotypes(union))
}

// transcriptBiotype picks the first determinable biotype among the rows.
func transcriptBiotype(rows []gtf.Interval) string {
	for _, iv := range rows {
		if bt := iv.Biotype(); bt != "." && bt != "" {
			return bt
		}
	}
	return "."
}

func joinBiotypes(set map[string]struct{}) string {
	var list []string
	for bt := range set {
		if bt != "." && bt != "" {
			list = append(list, bt)
		}
	}
	if len(list) == 0 {
		return "."
	}
	sort.Strings(list)
	return strings.Join(list, ", ")
}
