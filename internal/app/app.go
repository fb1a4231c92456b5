// internal/app/app.go

// Package app wires the gtfseg command tree. Run keeps the process exit
// code policy of the cmd layer testable: 0 ok, 2 usage error, 1 runtime
// error; broken-pipe writes count as success.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"gtfseg/internal/version"
	"gtfseg/internal/writers"

	"gtfseg-core/regions"
	"gtfseg-core/segment"
)

type usageError struct{ err error }

func (u usageError) Error() string { return u.err.Error() }
func (u usageError) Unwrap() error { return u.err }

// New builds the root command writing to the given streams.
func New(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "gtfseg",
		Short: "partition a genome annotation into non-overlapping regions",
		Long: `gtfseg derives two annotations from a GTF file: a transcript-level
segmentation (UTR5, CDS, intron, UTR3, ncRNA, intergenic) and a
genome-wide set of non-overlapping regions resolved by type hierarchy.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	root.AddCommand(newSegmentCmd(stderr))
	root.AddCommand(newRegionsCmd(stderr))
	root.AddCommand(newSummaryCmd(stderr))
	root.AddCommand(newVersionCmd(stdout))
	return root
}

func newSegmentCmd(stderr io.Writer) *cobra.Command {
	var (
		input   string
		output  string
		genome  string
		threads int
		quiet   bool
	)
	cmd := &cobra.Command{
		Use:   "segment",
		Short: "segment an annotation into transcript-level features",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if input == "" || output == "" || genome == "" {
				return usageError{errors.New("--input, --output and --genome are required")}
			}
			n, err := segment.Write(cmd.Context(), input, output, genome, effectiveThreads(threads))
			if err != nil {
				return err
			}
			if !quiet {
				fmt.Fprintf(stderr, "segmented %d genes into %s\n", n, output)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "annotation GTF (plain or .gz, '-' for stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "segmentation GTF to write (.gz compresses)")
	cmd.Flags().StringVarP(&genome, "genome", "g", "", "chromosome sizes TSV (name<TAB>length)")
	cmd.Flags().IntVar(&threads, "threads", 0, "worker threads (0 = all CPUs)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress notes")
	return cmd
}

func newRegionsCmd(stderr io.Writer) *cobra.Command {
	var (
		input   string
		outDir  string
		threads int
		quiet   bool
	)
	cmd := &cobra.Command{
		Use:   "regions",
		Short: "collapse a segmentation into non-overlapping regions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if input == "" || outDir == "" {
				return usageError{errors.New("--input and --out-dir are required")}
			}
			n, err := regions.Make(cmd.Context(), input, outDir, effectiveThreads(threads))
			if err != nil {
				return err
			}
			if !quiet {
				fmt.Fprintf(stderr, "wrote %d regions to %s/%s\n", n, outDir, regions.RegionsFile)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "segmentation GTF (plain or .gz)")
	cmd.Flags().StringVarP(&outDir, "out-dir", "d", "", "directory to write regions into")
	cmd.Flags().IntVar(&threads, "threads", 0, "worker threads (0 = all CPUs)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress notes")
	return cmd
}

func newSummaryCmd(stderr io.Writer) *cobra.Command {
	var (
		input  string
		outDir string
		quiet  bool
	)
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "write per-type, per-subtype and per-gene length templates",
		RunE: func(_ *cobra.Command, _ []string) error {
			if input == "" || outDir == "" {
				return usageError{errors.New("--input and --out-dir are required")}
			}
			if err := regions.Summaries(input, outDir); err != nil {
				return err
			}
			if !quiet {
				fmt.Fprintf(stderr, "wrote summary templates to %s\n", outDir)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "segmentation GTF (plain or .gz)")
	cmd.Flags().StringVarP(&outDir, "out-dir", "d", "", "directory to write templates into")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress notes")
	return cmd
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print version and exit",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(stdout, "gtfseg version %s\n", version.Version)
		},
	}
}

func effectiveThreads(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// RunContext executes argv against the command tree and maps the outcome
// onto an exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	root := New(outw, stderr)
	root.SetArgs(argv)

	if err := root.ExecuteContext(ctx); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, "error:", err)
		var uerr usageError
		if errors.As(err, &uerr) {
			return 2
		}
		return 1
	}

	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
