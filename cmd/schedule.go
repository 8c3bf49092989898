package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/piotronm/tourney-backend-sub000/config"
	"github.com/piotronm/tourney-backend-sub000/engine"
	"github.com/piotronm/tourney-backend-sub000/models"
	"github.com/piotronm/tourney-backend-sub000/services"
)

func newScheduleCmd(cfg *config.Config, logger *slog.Logger) *cobra.Command {
	var (
		input           string
		outDir          string
		seed            int64
		shuffle         bool
		maxPools        int
		strategy        string
		courts          int
		matchMinutes    int
		breakMinutes    int
		avoidBackToBack bool
		noCourts        bool
		tsv             bool
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Build pools, matches and a court schedule from a teams file",
		RunE: func(cmd *cobra.Command, args []string) error {
			poolStrategy := models.PoolStrategy(strategy)
			if !poolStrategy.Valid() {
				return fmt.Errorf("unsupported pool strategy %q", strategy)
			}

			teams, err := readTeamsCSV(input)
			if err != nil {
				return fmt.Errorf("read teams: %w", err)
			}

			in := services.TournamentInput{
				Teams:           teams,
				Seed:            &seed,
				Shuffle:         shuffle,
				MaxPools:        maxPools,
				PoolStrategy:    poolStrategy,
				AvoidBackToBack: avoidBackToBack,
			}
			if !noCourts {
				in.Schedule = &engine.ScheduleOptions{
					NumberOfCourts:       courts,
					MatchDurationMinutes: matchMinutes,
					BreakMinutes:         breakMinutes,
				}
			}

			result, err := services.NewTournamentService(logger).BuildTournament(in)
			if err != nil {
				return err
			}

			exporter := services.NewExportService()
			if tsv {
				exporter = services.NewTSVExportService()
			}
			if err := exporter.ExportAll(outDir, result); err != nil {
				return fmt.Errorf("export results: %w", err)
			}

			logger.Info("schedule written",
				slog.String("dir", outDir),
				slog.Int("teams", len(result.Teams)),
				slog.Int("pools", len(result.Pools)),
				slog.Int("matches", len(result.Matches)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "teams.csv", "teams CSV: name[,pool]")
	cmd.Flags().StringVarP(&outDir, "out", "o", "out", "output directory")
	cmd.Flags().Int64Var(&seed, "seed", cfg.Seed, "deterministic seed")
	cmd.Flags().BoolVar(&shuffle, "shuffle", false, "shuffle teams before pool assignment")
	cmd.Flags().IntVar(&maxPools, "max-pools", cfg.MaxPools, "maximum number of pools")
	cmd.Flags().StringVar(&strategy, "strategy", string(models.PoolStrategyBalanced), "pool strategy: balanced or respect-input")
	cmd.Flags().IntVar(&courts, "courts", cfg.NumberOfCourts, "number of courts")
	cmd.Flags().IntVar(&matchMinutes, "match-minutes", cfg.MatchDurationMinutes, "minutes per match")
	cmd.Flags().IntVar(&breakMinutes, "break-minutes", cfg.BreakMinutes, "minutes between matches")
	cmd.Flags().BoolVar(&avoidBackToBack, "avoid-back-to-back", false, "space out each team's matches")
	cmd.Flags().BoolVar(&noCourts, "no-courts", false, "skip court assignment")
	cmd.Flags().BoolVar(&tsv, "tsv", false, "write TSV instead of CSV")

	return cmd
}
