package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	appleagues "fantasy-hud-service/internal/app/leagues"
	apptrending "fantasy-hud-service/internal/app/trending"
	"fantasy-hud-service/internal/domain/players"
	"fantasy-hud-service/internal/domain/trending"
	"fantasy-hud-service/internal/synchronizer"
)

const commandTimeout = 2 * time.Minute

func newPlayersCmd(opts *options) *cobra.Command {
	var filter players.Filter
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Print the player directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			logger := opts.logger(cmd)
			provider, err := opts.dataProvider(logger)
			if err != nil {
				return err
			}
			dir := synchronizer.NewDirectory(provider, opts.sport, logger)
			if err := dir.Sync(ctx); err != nil {
				return fmt.Errorf("%s: %w", dir.State().Error, err)
			}
			return render(opts.out, opts.output, dir.State().Value.List(filter))
		},
	}
	cmd.Flags().StringVar(&filter.Position, "position", "", "only players at this position")
	cmd.Flags().StringVar(&filter.Team, "team", "", "only players on this team")
	return cmd
}

func newTrendingCmd(opts *options) *cobra.Command {
	query := trending.Query{
		LookbackHours: opts.cfg.Sync.LookbackHours,
		Limit:         opts.cfg.Sync.TrendingLimit,
	}
	var withPlayers bool
	cmd := &cobra.Command{
		Use:   "trending",
		Short: "Print the most added and dropped players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			logger := opts.logger(cmd)
			provider, err := opts.dataProvider(logger)
			if err != nil {
				return err
			}
			query.Sport = opts.sport
			board := synchronizer.NewTrending(provider, query, logger)
			dir := synchronizer.NewDirectory(provider, opts.sport, logger)

			if err := board.Sync(ctx); err != nil {
				return fmt.Errorf("%s: %w", board.State().Error, err)
			}
			if withPlayers {
				if err := dir.Sync(ctx); err != nil {
					return fmt.Errorf("%s: %w", dir.State().Error, err)
				}
			}
			return render(opts.out, opts.output, apptrending.NewService(board, dir).Board())
		},
	}
	cmd.Flags().IntVar(&query.LookbackHours, "lookback", query.LookbackHours, "window in hours")
	cmd.Flags().IntVar(&query.Limit, "limit", query.Limit, "maximum entries per direction")
	cmd.Flags().BoolVar(&withPlayers, "with-players", true, "join entries with the player directory")
	return cmd
}

func newLeagueCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "league <league-id>",
		Short: "Print a league and its rosters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			logger := opts.logger(cmd)
			provider, err := opts.dataProvider(logger)
			if err != nil {
				return err
			}
			roster := synchronizer.NewRoster(provider, logger, nil)
			svc := appleagues.NewService(roster, synchronizer.NewDirectory(provider, opts.sport, logger))
			if _, err := svc.SelectLeague(args[0]); err != nil {
				return err
			}
			if err := roster.Sync(ctx); err != nil {
				return fmt.Errorf("%s: %w", roster.State().Error, err)
			}
			return render(opts.out, opts.output, svc.Rosters())
		},
	}
}
