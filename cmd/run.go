package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/psychtest/psyquiz/internal/app"
	"github.com/psychtest/psyquiz/internal/config"
	"github.com/psychtest/psyquiz/internal/logging"
	"github.com/psychtest/psyquiz/internal/pool"
	"github.com/psychtest/psyquiz/internal/quiz"
	"github.com/psychtest/psyquiz/internal/sampler"
)

// runApp builds the session and launches the TUI.
func runApp(cmd *cobra.Command) error {
	sess, logger, closer, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	skipIntro, _ := cmd.Flags().GetBool("no-intro")
	return app.Run(app.Options{Session: sess, Logger: logger, SkipIntro: skipIntro})
}

// openSession resolves configuration, builds the pool and performs the
// first draw. The returned closer releases the log file.
func openSession(cmd *cobra.Command) (*quiz.Session, *slog.Logger, io.Closer, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	logger, closer, err := logging.Open(cfg.LogFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("logging: %w", err)
	}

	p, err := pool.Build(cfg)
	if err != nil {
		closer.Close()
		return nil, nil, nil, err
	}

	sess, err := quiz.New(cfg, p, quiz.Options{Source: sourceFor(cfg), Logger: logger})
	if err != nil {
		closer.Close()
		return nil, nil, nil, err
	}
	return sess, logger, closer, nil
}

// sourceFor returns a seeded source when cfg pins a seed, nil otherwise.
func sourceFor(cfg config.Config) sampler.Source {
	if cfg.Seed == 0 {
		return nil
	}
	return sampler.Seeded(cfg.Seed)
}
