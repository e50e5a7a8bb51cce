package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/viant/sqlite-fuzz/engine"
	"github.com/viant/sqlite-fuzz/store"
)

func newLoadCommand(ctx *commandContext) *cobra.Command {
	var inputPath string
	var dsn string

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load an id,text,meta CSV into the document store",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := readCSV[documentRecord](inputPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if dsn == "" {
				dsn = ctx.config.Store.DSN
			}
			db, err := engine.Open(dsn)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer db.Close()
			s, err := store.NewSQLiteStore(cmd.Context(), db, ctx.config.Store.Table)
			if err != nil {
				return err
			}

			docs := make([]store.Document, len(records))
			for i, r := range records {
				docs[i] = store.Document{ID: r.ID, Text: r.Text, Meta: r.Meta}
			}
			ids, err := s.AddDocuments(cmd.Context(), docs)
			if err != nil {
				return err
			}
			log.Info().Str("db", dsn).Int("documents", len(ids)).Msg("documents loaded")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "loaded %d documents\n", len(ids))
			return err
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "-", "CSV file with id,text,meta columns (- for stdin)")
	cmd.Flags().StringVar(&dsn, "db", "", "SQLite document store (default store.dsn)")

	return cmd
}
