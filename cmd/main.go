package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/piotronm/tourney-backend-sub000/config"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	root := &cobra.Command{
		Use:           "tourney",
		Short:         "Round-robin tournament engine",
		Long:          "Assigns teams to pools, generates round-robin schedules, ranks standings, and places matches on courts.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newScheduleCmd(cfg, logger),
		newTeamsCmd(cfg, logger),
		newStandingsCmd(logger),
	)

	if err := root.Execute(); err != nil {
		logger.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
