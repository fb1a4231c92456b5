// core/regions/hierarchy.go
package regions

// TypeHierarchy ranks segmentation feature types. When several features
// overlap the same stretch of genome, the lowest index wins.
var TypeHierarchy = []string{
	"CDS",
	"UTR3",
	"UTR5",
	"intron",
	"ncRNA",
	"intergenic",
}

// typeRank returns the hierarchy index of t, or len(TypeHierarchy) for
// unknown types so they always lose.
func typeRank(t string) int {
	for i, h := range TypeHierarchy {
		if h == t {
			return i
		}
	}
	return len(TypeHierarchy)
}

// SubtypeGroup collapses a family of annotation biotypes into one label.
type SubtypeGroup struct {
	Group    string
	Subtypes []string
}

// SubtypeGroups maps Ensembl/GENCODE biotypes onto simplified groups.
// Order is the reporting order; no biotype may appear in two groups.
var SubtypeGroups = []SubtypeGroup{
	{"mRNA", []string{
		"IG_C_gene", "IG_D_gene", "IG_J_gene", "IG_LV_gene", "IG_V_gene",
		"TR_C_gene", "TR_D_gene", "TR_J_gene", "TR_V_gene",
		"nonsense_mediated_decay", "non_stop_decay", "protein_coding",
	}},
	{"lncRNA", []string{
		"3prime_overlapping_ncRNA", "antisense", "bidirectional_promoter_lncRNA",
		"lincRNA", "macro_lncRNA", "non_coding", "processed_transcript",
		"sense_intronic", "sense_overlapping", "TEC",
	}},
	{"miRNA", []string{"miRNA"}},
	{"rRNA", []string{"Mt_rRNA", "rRNA"}},
	{"sRNA", []string{"misc_RNA", "ribozyme", "sRNA", "scRNA", "vaultRNA"}},
	{"snRNA", []string{"snRNA"}},
	{"snoRNA", []string{"scaRNA", "snoRNA"}},
	{"tRNA", []string{"Mt_tRNA"}},
	{"pseudogene", []string{
		"IG_C_pseudogene", "IG_J_pseudogene", "IG_V_pseudogene", "IG_pseudogene",
		"TR_J_pseudogene", "TR_V_pseudogene", "polymorphic_pseudogene",
		"processed_pseudogene", "pseudogene", "transcribed_processed_pseudogene",
		"transcribed_unitary_pseudogene", "transcribed_unprocessed_pseudogene",
		"translated_processed_pseudogene", "unitary_pseudogene",
		"unprocessed_pseudogene",
	}},
}

// SimplifyBiotype maps a biotype to its group, adjusted for where in a
// transcript it was seen: an intron of an mRNA-group transcript is
// pre-mRNA, and an ncRNA exon of one is lncRNA. Biotypes outside every
// group pass through unchanged.
func SimplifyBiotype(feature, biotype string) string {
	for _, g := range SubtypeGroups {
		for _, st := range g.Subtypes {
			if st != biotype {
				continue
			}
			if g.Group == "mRNA" {
				switch feature {
				case "intron":
					return "pre-mRNA"
				case "ncRNA":
					return "lncRNA"
				}
			}
			return g.Group
		}
	}
	return biotype
}
