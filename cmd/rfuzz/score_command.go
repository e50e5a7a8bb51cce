package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viant/sqlite-fuzz/fuzz"
)

func newScoreCommand(ctx *commandContext) *cobra.Command {
	var methodFlag string
	var all bool

	cmd := &cobra.Command{
		Use:   "score <left> <right>",
		Short: "Score one pair of strings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !all {
				m, err := ctx.method(methodFlag)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, formatScore(m.Scorer()(args[0], args[1])))
				return err
			}
			rows := make([][]string, 0, len(fuzz.Methods()))
			for _, m := range fuzz.Methods() {
				rows = append(rows, []string{string(m), formatScore(m.Scorer()(args[0], args[1]))})
			}
			return writeRows(out, []string{"method", "score"}, rows, []columnAlignment{alignLeft, alignRight})
		},
	}

	cmd.Flags().StringVarP(&methodFlag, "method", "m", "", "Scoring method: gram, ratio or partial_ratio")
	cmd.Flags().BoolVar(&all, "all", false, "Print the score of every method")

	return cmd
}
