package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"fantasy-hud-service/internal/config"
	"fantasy-hud-service/internal/logging"
	"fantasy-hud-service/internal/providers"
	"fantasy-hud-service/internal/providers/fixture"
	"fantasy-hud-service/internal/providers/sleeper"
)

type options struct {
	provider string
	sport    string
	output   string
	verbose  bool

	cfg config.Config
	out io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{cfg: config.Load(), out: out}

	root := &cobra.Command{
		Use:           "sleeperctl",
		Short:         "Fetch fantasy players, trending lists and leagues",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.output {
			case outputJSON, outputYAML:
				return nil
			default:
				return fmt.Errorf("unknown output format %q (want json or yaml)", opts.output)
			}
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.provider, "provider", opts.cfg.Provider, "data provider (fixture or sleeper)")
	flags.StringVar(&opts.sport, "sport", opts.cfg.Sleeper.Sport, "sport to query")
	flags.StringVarP(&opts.output, "output", "o", outputJSON, "output format (json or yaml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log sync progress to stderr")

	root.AddCommand(
		newPlayersCmd(opts),
		newTrendingCmd(opts),
		newLeagueCmd(opts),
	)
	return root
}

func (o *options) logger(cmd *cobra.Command) *slog.Logger {
	if !o.verbose {
		return nil
	}
	return logging.NewLogger(logging.Config{
		Level:   "debug",
		Service: "sleeperctl",
		Output:  cmd.ErrOrStderr(),
	})
}

// dataProvider builds the configured provider with the spacing and retry wrappers the server uses.
func (o *options) dataProvider(logger *slog.Logger) (providers.DataProvider, error) {
	var base providers.DataProvider
	name := strings.ToLower(strings.TrimSpace(o.provider))
	switch name {
	case "fixture", "":
		name = "fixture"
		base = fixture.New()
	case "sleeper":
		base = sleeper.NewClient(sleeper.Config{BaseURL: o.cfg.Sleeper.BaseURL, Sport: o.sport})
	default:
		return nil, fmt.Errorf("unknown provider %q", o.provider)
	}
	spaced := providers.NewRateLimitedProvider(base, o.cfg.Upstream.MinSpacing, logger)
	return providers.NewRetryingProvider(spaced, logger, nil, name, o.cfg.Upstream.MaxAttempts, o.cfg.Upstream.Backoff), nil
}
