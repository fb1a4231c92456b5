// core/segment/content.go
package segment

import (
	"context"

	"github.com/pkg/errors"

	"gtfseg-core/gtf"
)

// Sentinel errors for malformed annotations.
var (
	ErrOrphanInterval      = errors.New("first element in gene content is neither gene nor transcript")
	ErrTranscriptProcessed = errors.New("interval belongs to an already processed transcript")
	ErrGeneProcessed       = errors.New("interval belongs to an already processed gene")
)

// GeneContent is one gene's annotation: its gene interval (synthesized
// when the file has none) and per-transcript rows in file order. Each
// transcript's slice starts with its transcript interval.
type GeneContent struct {
	Gene        gtf.Interval
	Order       []string
	Transcripts map[string][]gtf.Interval
}

// ScanGenes streams path and emits one GeneContent per gene, restricted to
// the given chromosomes. The annotation must be grouped the way Ensembl
// and GENCODE files are: a gene's rows together, each transcript's rows
// together. Rows of already-emitted genes or transcripts are an error.
func ScanGenes(ctx context.Context, path string, chroms []string, emit func(GeneContent) error) error {
	inChrom := make(map[string]struct{}, len(chroms))
	for _, c := range chroms {
		inChrom[c] = struct{}{}
	}

	var (
		cur        *GeneContent
		curGeneID  string
		curTID     string
		curChrom   string
		processedT = make(map[string]struct{})
		processedG = make(map[string]struct{})
	)

	flush := func() error {
		if cur == nil {
			return nil
		}
		gc := *cur
		cur, curGeneID, curTID = nil, "", ""
		if gc.Gene.Feature == "" {
			gc.Gene = synthesizeGene(gc)
		}
		return emit(gc)
	}

	start := func(gid string, gene gtf.Interval) {
		processedG[gid] = struct{}{}
		cur = &GeneContent{Gene: gene, Transcripts: make(map[string][]gtf.Interval)}
		curGeneID = gid
		curTID = ""
	}

	err := gtf.ScanFileCtx(ctx, path, func(iv gtf.Interval) error {
		if _, ok := inChrom[iv.Chrom]; !ok {
			return nil
		}
		if cur != nil && iv.Chrom != curChrom {
			if err := flush(); err != nil {
				return err
			}
		}
		curChrom = iv.Chrom

		tid, hasTID := iv.Attrs.Get("transcript_id")
		gid := iv.Attrs.Value("gene_id")

		switch {
		case iv.Feature == "gene":
			if _, dup := processedG[gid]; dup {
				return errors.Wrapf(ErrGeneProcessed, "gene %q", gid)
			}
			if err := flush(); err != nil {
				return err
			}
			start(gid, iv)

		case iv.Feature == "transcript" && hasTID:
			if _, dup := processedT[tid]; dup {
				return errors.Wrapf(ErrTranscriptProcessed, "transcript %q", tid)
			}
			if cur == nil || gid != curGeneID {
				if _, dup := processedG[gid]; dup {
					return errors.Wrapf(ErrGeneProcessed, "gene %q", gid)
				}
				if err := flush(); err != nil {
					return err
				}
				start(gid, gtf.Interval{})
			}
			processedT[tid] = struct{}{}
			curTID = tid
			cur.Order = append(cur.Order, tid)
			cur.Transcripts[tid] = append(cur.Transcripts[tid], iv)

		default:
			if cur == nil || curTID == "" {
				return errors.Wrapf(ErrOrphanInterval, "%s %s:%d-%d", iv.Feature, iv.Chrom, iv.Start, iv.End)
			}
			if !hasTID || tid == curTID {
				cur.Transcripts[curTID] = append(cur.Transcripts[curTID], iv)
				return nil
			}
			if _, dup := processedT[tid]; dup {
				return errors.Wrapf(ErrTranscriptProcessed, "transcript %q", tid)
			}
			return errors.Errorf("interval for unknown transcript %q before its transcript row", tid)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return flush()
}

// synthesizeGene derives a gene interval from its transcripts' span.
func synthesizeGene(gc GeneContent) gtf.Interval {
	var gene gtf.Interval
	first := true
	for _, tid := range gc.Order {
		for _, iv := range gc.Transcripts[tid] {
			if iv.Feature != "transcript" {
				continue
			}
			if first {
				gene = gtf.Interval{
					Chrom:   iv.Chrom,
					Source:  ".",
					Feature: "gene",
					Start:   iv.Start,
					End:     iv.End,
					Score:   ".",
					Strand:  iv.Strand,
					Frame:   ".",
					Attrs:   iv.Attrs.Filter("gene_id"),
				}
				first = false
				continue
			}
			if iv.Start < gene.Start {
				gene.Start = iv.Start
			}
			if iv.End > gene.End {
				gene.End = iv.End
			}
		}
	}
	return gene
}
