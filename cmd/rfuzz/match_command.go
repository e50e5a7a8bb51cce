package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viant/sqlite-fuzz/engine"
	"github.com/viant/sqlite-fuzz/fuzz"
	"github.com/viant/sqlite-fuzz/index/bruteforce"
	"github.com/viant/sqlite-fuzz/store"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var candidatesPath string
	var dsn string
	var methodFlag string
	var limit int
	var minScore float64

	cmd := &cobra.Command{
		Use:   "match <query>",
		Short: "Rank candidate texts against a query",
		Long: "Ranks candidates from an id,text CSV file (--candidates) or from a SQLite\n" +
			"document store (--db, defaulting to store.dsn) by similarity to the query.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := ctx.method(methodFlag)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("limit") {
				limit = ctx.config.Scoring.Limit
			}
			if !cmd.Flags().Changed("min-score") {
				minScore = ctx.config.Scoring.MinScore
			}

			var rows [][]string
			if strings.TrimSpace(candidatesPath) != "" {
				rows, err = matchFile(cmd, candidatesPath, args[0], m, limit, minScore)
			} else {
				if dsn == "" {
					dsn = ctx.config.Store.DSN
				}
				rows, err = matchStore(cmd, dsn, ctx.config.Store.Table, args[0], m, limit, minScore)
			}
			if err != nil {
				return err
			}
			return writeRows(cmd.OutOrStdout(), []string{"id", "text", "score"}, rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight})
		},
	}

	cmd.Flags().StringVar(&candidatesPath, "candidates", "", "CSV file with id,text columns")
	cmd.Flags().StringVar(&dsn, "db", "", "SQLite document store (default store.dsn)")
	cmd.Flags().StringVarP(&methodFlag, "method", "m", "", "Scoring method: gram, ratio or partial_ratio")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum matches (0 for all; default scoring.limit)")
	cmd.Flags().Float64Var(&minScore, "min-score", 0, "Drop matches below this score (default scoring.min_score)")

	return cmd
}

func matchFile(cmd *cobra.Command, path, query string, m fuzz.Method, limit int, minScore float64) ([][]string, error) {
	records, err := readCSV[documentRecord](path, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(records))
	texts := make([]string, len(records))
	byID := make(map[string]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
		texts[i] = r.Text
		byID[r.ID] = r.Text
	}
	ix := bruteforce.New(m, minScore)
	if err := ix.Build(ids, texts); err != nil {
		return nil, fmt.Errorf("candidates %s: %w", displayName(path), err)
	}
	matchIDs, scores, err := ix.Query(query, limit)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, len(matchIDs))
	for i, id := range matchIDs {
		rows[i] = []string{id, byID[id], formatScore(scores[i])}
	}
	return rows, nil
}

func matchStore(cmd *cobra.Command, dsn, table, query string, m fuzz.Method, limit int, minScore float64) ([][]string, error) {
	db, err := engine.Open(dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer db.Close()
	s, err := store.NewSQLiteStore(cmd.Context(), db, table)
	if err != nil {
		return nil, err
	}
	matches, err := s.Search(cmd.Context(), query, store.SearchOptions{Method: m, MinScore: minScore, Limit: limit})
	if err != nil {
		return nil, err
	}
	rows := make([][]string, len(matches))
	for i, match := range matches {
		rows[i] = []string{match.ID, match.Text, formatScore(match.Score)}
	}
	return rows, nil
}
