// core/regions/summary.go
package regions

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"gtfseg-core/gtf"
)

// Output names Summaries writes into its directory.
const (
	TemplateTypeFile    = "template_type.tsv"
	TemplateSubtypeFile = "template_subtype.tsv"
	TemplateGeneFile    = "template_gene.tsv"
)

// Summaries derives three length templates from a segmentation: bases per
// feature type, per (type, biotype), and per gene. The subtype template
// splits an interval's length evenly (integer division) across its
// comma-separated biotypes. Intergenic stretches report under a bare
// "intergenic" label and the "." gene with an empty name.
func Summaries(segPath, outDir string) error {
	ivs, err := gtf.ReadFile(segPath)
	if err != nil {
		return err
	}

	typeLen := make(map[string]int)
	subtypeLen := make(map[string]int)
	geneLen := make(map[string]int)
	geneName := make(map[string]string)

	for _, iv := range ivs {
		if typeRank(iv.Feature) >= len(TypeHierarchy) {
			continue
		}
		l := iv.Len()
		typeLen[iv.Feature] += l

		bt := iv.Attrs.Value("biotype")
		if bt == "" {
			subtypeLen[iv.Feature] += l
		} else {
			parts := strings.Split(bt, ",")
			share := l / len(parts)
			for _, p := range parts {
				subtypeLen[iv.Feature+" "+p] += share
			}
		}

		gid := iv.Attrs.Value("gene_id")
		if gid == "" {
			gid = "."
		}
		geneLen[gid] += l
		if name := iv.Attrs.Value("gene_name"); name != "" && name != "." && geneName[gid] == "" {
			geneName[gid] = name
		}
	}

	if err := writeSummary(filepath.Join(outDir, TemplateTypeFile), typeLen); err != nil {
		return err
	}
	if err := writeSummary(filepath.Join(outDir, TemplateSubtypeFile), subtypeLen); err != nil {
		return err
	}

	gids := make([]string, 0, len(geneLen))
	for gid := range geneLen {
		gids = append(gids, gid)
	}
	sort.Strings(gids)
	fh, err := os.Create(filepath.Join(outDir, TemplateGeneFile))
	if err != nil {
		return err
	}
	for _, gid := range gids {
		if _, err := fmt.Fprintf(fh, "%s\t%s\t%d\n", gid, geneName[gid], geneLen[gid]); err != nil {
			_ = fh.Close()
			return errors.Wrap(err, TemplateGeneFile)
		}
	}
	return errors.Wrap(fh.Close(), TemplateGeneFile)
}

// subtypeLess orders "type" / "type biotype" labels by the type hierarchy,
// then alphabetically by biotype.
func subtypeLess(a, b string) bool {
	ta, _, _ := strings.Cut(a, " ")
	tb, _, _ := strings.Cut(b, " ")
	if ra, rb := typeRank(ta), typeRank(tb); ra != rb {
		return ra < rb
	}
	return a < b
}

func writeSummary(path string, lens map[string]int) error {
	labels := make([]string, 0, len(lens))
	for label := range lens {
		labels = append(labels, label)
	}
	sort.SliceStable(labels, func(i, j int) bool { return subtypeLess(labels[i], labels[j]) })

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	for _, label := range labels {
		if _, err := fmt.Fprintf(fh, "%s\t%d\n", label, lens[label]); err != nil {
			_ = fh.Close()
			return errors.Wrap(err, path)
		}
	}
	return errors.Wrap(fh.Close(), path)
}
