package main

import (
	"fmt"
	"time"

	"github.com/hbollon/go-edlib"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/viant/sqlite-fuzz/batch"
	"github.com/viant/sqlite-fuzz/fuzz"
)

// benchMetric is one scorer timed by the bench command.
type benchMetric struct {
	name  string
	score func([]batch.Pair) ([]float64, error)
}

func newBenchCommand(ctx *commandContext) *cobra.Command {
	var inputPath string
	var repeat int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the bigram scorers against edit-distance similarities",
		Long: "Scores every complete left,right pair of the input CSV with gram, ratio and\n" +
			"partial_ratio, and with Levenshtein and Jaro-Winkler similarity for\n" +
			"comparison, repeating each run --repeat times.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if repeat < 1 {
				return fmt.Errorf("--repeat must be at least 1")
			}
			records, err := readCSV[pairRecord](inputPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			pairs := make([]batch.Pair, 0, len(records))
			for _, r := range records {
				if r.Left == "" || r.Right == "" {
					continue
				}
				pairs = append(pairs, batch.Pair{Left: r.Left, Right: r.Right})
			}
			if len(pairs) == 0 {
				return fmt.Errorf("no complete pairs in %s", displayName(inputPath))
			}

			opts := []batch.Option{
				batch.WithBatchSize(ctx.config.Batch.Size),
				batch.WithParallelism(ctx.config.Batch.Parallelism),
			}
			metrics := make([]benchMetric, 0, len(fuzz.Methods())+2)
			for _, m := range fuzz.Methods() {
				metrics = append(metrics, benchMetric{name: string(m), score: func(p []batch.Pair) ([]float64, error) {
					return batch.ApplyPairs(cmd.Context(), m, p, opts...)
				}})
			}
			metrics = append(metrics,
				benchMetric{name: "levenshtein", score: levenshteinSimilarities},
				benchMetric{name: "jaro_winkler", score: jaroWinklerSimilarities},
			)

			rows := make([][]string, 0, len(metrics))
			for _, metric := range metrics {
				var total time.Duration
				var scores []float64
				for range repeat {
					start := time.Now()
					scores, err = metric.score(pairs)
					if err != nil {
						return fmt.Errorf("%s: %w", metric.name, err)
					}
					total += time.Since(start)
				}
				mean := total / time.Duration(repeat)
				log.Debug().Str("metric", metric.name).Dur("mean", mean).Int("pairs", len(pairs)).Msg("bench run")
				rows = append(rows, []string{
					metric.name,
					mean.String(),
					(mean / time.Duration(len(pairs))).String(),
					formatScore(average(scores)),
				})
			}
			return writeRows(cmd.OutOrStdout(), []string{"metric", "mean run", "per pair", "mean score"}, rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight})
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "-", "CSV file with left,right columns (- for stdin)")
	cmd.Flags().IntVar(&repeat, "repeat", 5, "Number of timed runs per metric")

	return cmd
}

func levenshteinSimilarities(pairs []batch.Pair) ([]float64, error) {
	out := make([]float64, len(pairs))
	for i, p := range pairs {
		s, err := edlib.StringsSimilarity(p.Left, p.Right, edlib.Levenshtein)
		if err != nil {
			return nil, err
		}
		out[i] = float64(s)
	}
	return out, nil
}

func jaroWinklerSimilarities(pairs []batch.Pair) ([]float64, error) {
	out := make([]float64, len(pairs))
	for i, p := range pairs {
		out[i] = float64(edlib.JaroWinklerSimilarity(p.Left, p.Right))
	}
	return out, nil
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
