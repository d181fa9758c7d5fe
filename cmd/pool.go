package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/psychtest/psyquiz/internal/pool"
	"github.com/psychtest/psyquiz/internal/sampler"
)

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Inspect the question pool",
}

var poolListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every question in the pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		p, err := pool.Build(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printQuestions(out, p.Questions())
		fmt.Fprintf(out, "\n%d questions\n", p.Len())
		return nil
	},
}

var poolSampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Draw one question set (use --seed to reproduce it)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		p, err := pool.Build(cfg)
		if err != nil {
			return err
		}

		set := sampler.New(p, sourceFor(cfg)).Draw(cfg.DisplayCount)
		printQuestions(cmd.OutOrStdout(), set)
		return nil
	},
}

func init() {
	poolCmd.AddCommand(poolListCmd)
	poolCmd.AddCommand(poolSampleCmd)
}

func printQuestions(out io.Writer, qs []pool.Question) {
	fmt.Fprintf(out, "%5s  %s\n", "ID", "Text")
	fmt.Fprintln(out, strings.Repeat("\u2500", 80))
	for _, q := range qs {
		text := q.Text
		if r := []rune(text); len(r) > 72 {
			text = string(r[:69]) + "..."
		}
		fmt.Fprintf(out, "%5d  %s\n", q.ID, text)
	}
}
