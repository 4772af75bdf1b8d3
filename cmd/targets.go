package cmd

import (
	"github.com/spf13/cobra"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Show the weekly targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := openTracker()
		if err != nil {
			return err
		}

		t := tr.GetTargets()
		printBoxedHeader("WEEKLY TARGETS")
		printMetric("Sessions per week", t.SessionsPerWeek)
		printMetric("Wall ball reps per week", t.WallBallRepsPerWeek)
		printMetric("Gym minutes per week", t.GymMinutesPerWeek)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}
