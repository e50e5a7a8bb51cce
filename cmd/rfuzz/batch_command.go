package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/viant/sqlite-fuzz/batch"
	"github.com/viant/sqlite-fuzz/fuzz"
)

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var inputPath string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Score a CSV of left,right pairs with every method",
		Long: "Reads a CSV with left and right columns and writes the pairs back with\n" +
			"gram, ratio and partial_ratio columns. Empty cells are missing values and\n" +
			"produce empty scores.",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := readCSV[pairRecord](inputPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			left := make([]*string, len(records))
			right := make([]*string, len(records))
			for i, r := range records {
				left[i] = optional(r.Left)
				right[i] = optional(r.Right)
			}

			opts := []batch.Option{
				batch.WithBatchSize(ctx.config.Batch.Size),
				batch.WithParallelism(ctx.config.Batch.Parallelism),
			}
			scores := make(map[fuzz.Method][]*float64, len(fuzz.Methods()))
			for _, m := range fuzz.Methods() {
				col, err := batch.Apply(cmd.Context(), m, left, right, opts...)
				if err != nil {
					return fmt.Errorf("score %s: %w", m, err)
				}
				scores[m] = col
			}

			out := make([]*scoreRecord, len(records))
			for i, r := range records {
				out[i] = &scoreRecord{
					Left:         r.Left,
					Right:        r.Right,
					Gram:         formatOptional(scores[fuzz.MethodGram][i]),
					Ratio:        formatOptional(scores[fuzz.MethodRatio][i]),
					PartialRatio: formatOptional(scores[fuzz.MethodPartialRatio][i]),
				}
			}

			if err := writeOutput(outputPath, cmd.OutOrStdout(), out); err != nil {
				return err
			}
			log.Info().Int("rows", len(out)).Str("input", displayName(inputPath)).Msg("batch complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "-", "CSV file with left,right columns (- for stdin)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "-", "Output CSV file (- for stdout)")

	return cmd
}

// writeOutput writes rows to path, or to stdout when path is empty or "-".
func writeOutput(path string, stdout io.Writer, rows []*scoreRecord) error {
	if path == "" || path == "-" {
		return writeScores(stdout, rows)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	return writeAndClose(f, rows)
}

// writeAndClose writes rows and closes w, returning the Close error too.
func writeAndClose(w io.WriteCloser, rows []*scoreRecord) error {
	if err := writeScores(w, rows); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

func writeScores(w io.Writer, rows []*scoreRecord) error {
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatScore(*v)
}
