package cmd

import (
	"github.com/spf13/cobra"

	"github.com/psychtest/psyquiz/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "psyquiz",
	Short: "Terminal self-assessment quiz",
	Long: `psyquiz draws a few statements from a question pool, asks how true each
one is for you on a 0-3 scale and maps the total to a Low, Medium or High band.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Int("pool-size", config.DefaultPoolSize, "Number of questions in the pool (overrides PSYQUIZ_POOL_SIZE)")
	pf.Int("count", config.DefaultDisplayCount, "Questions shown per draw (overrides PSYQUIZ_DISPLAY_COUNT)")
	pf.String("bank", "", "YAML question bank replacing placeholder text (overrides PSYQUIZ_BANK)")
	pf.String("log-file", "", "Write structured logs to this file (overrides PSYQUIZ_LOG_FILE)")
	pf.Uint64("seed", 0, "Seed for reproducible draws, 0 for random (overrides PSYQUIZ_SEED)")

	rootCmd.Flags().Bool("no-intro", false, "Open directly on the first question set")

	rootCmd.AddCommand(plainCmd)
	rootCmd.AddCommand(poolCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig reads the environment, then applies any flags the user
// set explicitly.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("pool-size") {
		cfg.PoolSize, _ = flags.GetInt("pool-size")
	}
	if flags.Changed("count") {
		cfg.DisplayCount, _ = flags.GetInt("count")
	}
	if flags.Changed("bank") {
		cfg.BankPath, _ = flags.GetString("bank")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}

	return cfg, cfg.Validate()
}
