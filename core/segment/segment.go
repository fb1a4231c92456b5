// core/segment/segment.go

// Package segment partitions a genome annotation into non-overlapping
// typed features. For every transcript the exon/CDS rows are resolved
// into UTR5, CDS, intron, UTR3 (or ncRNA) intervals; gene and transcript
// intervals are synthesized when missing; everything outside genes
// becomes strand-wise intergenic intervals.
package segment

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"gtfseg-core/genome"
	"gtfseg-core/gtf"
)

// Write reads the annotation at inPath, segments every gene on the
// chromosomes listed in the sizes table at genomePath, and writes the full
// segmentation to outPath (gzip on .gz suffix). Gene groups are processed
// concurrently by up to threads workers (<=0 means one). It returns the
// number of genes segmented.
func Write(ctx context.Context, inPath, outPath, genomePath string, threads int) (int, error) {
	sizes, err := genome.LoadSizes(genomePath)
	if err != nil {
		return 0, err
	}

	var contents []GeneContent
	err = ScanGenes(ctx, inPath, sizes.Chroms(), func(gc GeneContent) error {
		contents = append(contents, gc)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if threads < 1 {
		threads = 1
	}
	results := make([][]gtf.Interval, len(contents))
	geneRows := make([]gtf.Interval, len(contents))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i := range contents {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows, gene, err := processGene(contents[i])
			if err != nil {
				return errors.Wrapf(err, "gene %q", contents[i].Gene.Attrs.Value("gene_id"))
			}
			results[i], geneRows[i] = rows, gene
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var all []gtf.Interval
	for i := range results {
		all = append(all, geneRows[i])
		all = append(all, results[i]...)
	}
	all = append(all, Complement(geneRows, sizes, "+")...)
	all = append(all, Complement(geneRows, sizes, "-")...)
	gtf.SortIntervals(all)

	if err := gtf.WriteFile(outPath, all); err != nil {
		return 0, err
	}
	return len(contents), nil
}

// processGene segments every transcript of one gene and annotates
// biotypes. It returns the transcript-level rows and the gene interval.
func processGene(gc GeneContent) ([]gtf.Interval, gtf.Interval, error) {
	for _, tid := range gc.Order {
		rows, err := ProcessTranscriptGroup(gc.Transcripts[tid])
		if err != nil {
			return nil, gtf.Interval{}, err
		}
		gc.Transcripts[tid] = rows
	}
	AnnotateBiotypes(&gc)

	var out []gtf.Interval
	for _, tid := range gc.Order {
		out = append(out, gc.Transcripts[tid]...)
	}
	return out, gc.Gene, nil
}
