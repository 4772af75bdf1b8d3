package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	targetSessions   int
	targetWallBall   int
	targetGymMinutes int
)

var setTargetsCmd = &cobra.Command{
	Use:   "set-targets",
	Short: "Replace the weekly targets; unset flags keep current values",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := openTracker()
		if err != nil {
			return err
		}

		t := tr.GetTargets()
		if cmd.Flags().Changed("sessions") {
			t.SessionsPerWeek = targetSessions
		}
		if cmd.Flags().Changed("wall-ball") {
			t.WallBallRepsPerWeek = targetWallBall
		}
		if cmd.Flags().Changed("gym-minutes") {
			t.GymMinutesPerWeek = targetGymMinutes
		}

		tr.SetTargets(t)
		if err := tr.Save(); err != nil {
			return fmt.Errorf("failed to save: %w", err)
		}

		fmt.Printf("✅ Targets set: %d sessions, %d wall ball reps, %d gym minutes per week\n",
			t.SessionsPerWeek, t.WallBallRepsPerWeek, t.GymMinutesPerWeek)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setTargetsCmd)

	setTargetsCmd.Flags().IntVar(&targetSessions, "sessions", 0, "Sessions per week")
	setTargetsCmd.Flags().IntVar(&targetWallBall, "wall-ball", 0, "Wall ball reps per week")
	setTargetsCmd.Flags().IntVar(&targetGymMinutes, "gym-minutes", 0, "Gym minutes per week")
}
