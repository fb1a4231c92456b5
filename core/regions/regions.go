// core/regions/regions.go

// Package regions collapses a genome segmentation into genome-wide
// non-overlapping regions. The segmentation is cut at every feature
// border, each atomic piece is resolved to a single winning type, gene
// and simplified biotype, and equal adjacent pieces are merged back.
package regions

import (
	"context"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"gtfseg-core/gtf"
)

// RegionsFile is the output name Make writes into its directory.
const RegionsFile = "regions.gtf"

// Make reads the segmentation at segPath and writes the resolved,
// merged regions to outDir/regions.gtf. Chromosome/strand buckets are
// processed concurrently by up to threads workers (<=0 means one). It
// returns the number of regions written.
func Make(ctx context.Context, segPath, outDir string, threads int) (int, error) {
	ivs, err := gtf.ReadFile(segPath)
	if err != nil {
		return 0, err
	}

	sizes := geneSizes(ivs)

	type key struct{ chrom, strand string }
	buckets := make(map[key][]gtf.Interval)
	for _, iv := range ivs {
		if typeRank(iv.Feature) >= len(TypeHierarchy) {
			continue
		}
		k := key{iv.Chrom, iv.Strand}
		buckets[k] = append(buckets[k], iv)
	}

	keys := make([]key, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].chrom != keys[j].chrom {
			return gtf.ChromLess(keys[i].chrom, keys[j].chrom)
		}
		return keys[i].strand < keys[j].strand
	})

	if threads < 1 {
		threads = 1
	}
	results := make([][]gtf.Interval, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i, k := range keys {
		i, k := i, k
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = resolveBucket(buckets[k], sizes)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var all []gtf.Interval
	for _, rs := range results {
		all = append(all, rs...)
	}
	merged := Merge(all)

	if err := gtf.WriteFile(filepath.Join(outDir, RegionsFile), merged); err != nil {
		return 0, err
	}
	return len(merged), nil
}

// resolveBucket cuts one chromosome/strand's features at their borders
// and resolves every atomic segment.
func resolveBucket(feats []gtf.Interval, sizes map[string]int) []gtf.Interval {
	sorted := make([]gtf.Interval, len(feats))
	copy(sorted, feats)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	segs := ConstructBorders(sorted)

	var out []gtf.Interval
	for _, seg := range segs {
		var over []Overlap
		for _, f := range sorted {
			if f.Start-1 > seg.Start {
				break
			}
			if f.End < seg.End {
				continue
			}
			id := f.Attrs.Value("gene_id")
			if id == "" {
				id = "."
			}
			name := f.Attrs.Value("gene_name")
			if name == "" {
				name = "."
			}
			over = append(over, Overlap{
				Feature: f.Feature,
				Subtype: f.Attrs.Value("biotype"),
				Gene:    Gene{ID: id, Name: name, Size: sizes[id]},
			})
		}
		if len(over) == 0 {
			// a gap between disjoint features; nothing to report
			continue
		}
		out = append(out, UniqRegion(seg, over))
	}
	return out
}

// geneSizes maps gene_id to gene length, taken from the segmentation's
// gene intervals (the longest on duplicates).
func geneSizes(ivs []gtf.Interval) map[string]int {
	sizes := make(map[string]int)
	for _, iv := range ivs {
		if iv.Feature != "gene" {
			continue
		}
		id := iv.Attrs.Value("gene_id")
		if id == "" {
			continue
		}
		if l := iv.Len(); l > sizes[id] {
			sizes[id] = l
		}
	}
	return sizes
}
