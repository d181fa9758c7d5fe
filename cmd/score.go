package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psychtest/psyquiz/internal/pool"
	"github.com/psychtest/psyquiz/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score V1 [V2 ...]",
	Short: "Score a list of answer values without taking the quiz",
	Long: `Score one answer value (0-3) per question, in question order, and print
the score line and advice. The number of values sets the question count.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		answers := make(scoring.Answers, len(args))
		for i, a := range args {
			v, err := parseValue(a)
			if err != nil {
				return &scoring.ValidationError{Position: i + 1, Message: err.Error()}
			}
			answers[i+1] = v
		}

		res, err := scoring.Score(pool.Generate(len(args)), answers)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, res.ScoreLine())
		fmt.Fprintln(out, res.Advice)
		return nil
	},
}
