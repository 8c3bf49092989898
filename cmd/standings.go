package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/piotronm/tourney-backend-sub000/engine"
)

func newStandingsCmd(logger *slog.Logger) *cobra.Command {
	var (
		input  string
		poolID int
	)

	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Rank a pool from a completed matches file",
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := readMatchesCSV(input)
			if err != nil {
				return fmt.Errorf("read matches: %w", err)
			}

			rows := engine.ComputePoolStandings(poolID, matches)
			if len(rows) == 0 {
				logger.Warn("no completed matches for pool", slog.Int("pool_id", poolID))
				return nil
			}

			fmt.Fprintln(os.Stdout, "rank,team_id,wins,losses,points_for,points_against,point_diff")
			for i, row := range rows {
				fmt.Fprintf(os.Stdout, "%d,%d,%d,%d,%d,%d,%d\n",
					i+1, row.TeamID, row.Wins, row.Losses, row.PointsFor, row.PointsAgainst, row.PointDiff)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "matches.csv", "matches CSV: pool_id,round,team_a_id,team_b_id,score_a,score_b,status")
	cmd.Flags().IntVar(&poolID, "pool", 1, "pool id to rank")

	return cmd
}
