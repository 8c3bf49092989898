package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/piotronm/tourney-backend-sub000/config"
	"github.com/piotronm/tourney-backend-sub000/engine"
	"github.com/piotronm/tourney-backend-sub000/models"
)

func newTeamsCmd(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	var (
		input    string
		seed     int64
		strategy string
		teamSize int
	)

	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Build balanced teams from a rated players file",
		RunE: func(cmd *cobra.Command, args []string) error {
			genStrategy := models.TeamGenStrategy(strategy)
			if !genStrategy.Valid() {
				return fmt.Errorf("unsupported team generation strategy %q", strategy)
			}

			players, err := readPlayersCSV(input)
			if err != nil {
				return fmt.Errorf("read players: %w", err)
			}

			result, err := engine.GenerateTeamsFromPlayers(players, engine.NewRand(seed), engine.TeamGenOptions{
				Strategy: genStrategy,
				TeamSize: teamSize,
			})
			if err != nil {
				return err
			}

			logger.Info("teams generated",
				slog.Int("players", len(result.Players)),
				slog.Int("teams", len(result.Teams)),
				slog.Float64("rating_variance", engine.TeamRatingVariance(result.Compositions)))

			for i, team := range result.Teams {
				comp := result.Compositions[i]
				fmt.Fprintf(os.Stdout, "%d,%s,%.2f\n", team.ID, team.Name, comp.AverageRating)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "players.csv", "players CSV: name,rating")
	cmd.Flags().Int64Var(&seed, "seed", cfg.Seed, "deterministic seed")
	cmd.Flags().StringVar(&strategy, "strategy", string(models.TeamGenBalanced), "balanced, snake-draft or random-pairs")
	cmd.Flags().IntVar(&teamSize, "team-size", 2, "players per team")

	return cmd
}
