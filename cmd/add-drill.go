package cmd

import (
	"fmt"

	"github.com/cianmb/hurltrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	drillSessionID int
	drillType      string
	drillReps      int
	drillSuccess   int
	drillNotes     string
)

var addDrillCmd = &cobra.Command{
	Use:   "add-drill",
	Short: "Log a drill under an existing session",
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, err := models.ParseDrillType(drillType)
		if err != nil {
			return fmt.Errorf("invalid drill type (valid: %v): %w", models.DrillTypes(), err)
		}
		if drillReps < 0 || drillSuccess < 0 {
			return fmt.Errorf("reps and success must be >= 0")
		}

		tr, err := openTracker()
		if err != nil {
			return err
		}

		// The drill must hang off a session that exists right now.
		session, ok := tr.GetSession(drillSessionID)
		if !ok {
			return fmt.Errorf("no session with ID %d", drillSessionID)
		}

		d := models.NewDrillEntry(tr.NextDrillID(), session.ID, typ, drillReps, drillSuccess, drillNotes)
		tr.AddDrill(d)
		if err := tr.Save(); err != nil {
			return fmt.Errorf("failed to save: %w", err)
		}

		fmt.Println("✅ Added drill:")
		fmt.Println(d.Neat())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addDrillCmd)

	addDrillCmd.Flags().IntVarP(&drillSessionID, "session", "s", 0, "ID of the owning session")
	addDrillCmd.Flags().StringVarP(&drillType, "type", "t", "", "Drill type (WALL_BALL, SPRINT, STRIKE, FREE_TAKING)")
	addDrillCmd.Flags().IntVarP(&drillReps, "reps", "r", 0, "Reps (e.g. strikes, sprints, gym reps)")
	addDrillCmd.Flags().IntVarP(&drillSuccess, "success", "c", 0, "Successful reps (0 if not tracking)")
	addDrillCmd.Flags().StringVarP(&drillNotes, "notes", "n", "", "Optional notes")
	addDrillCmd.MarkFlagRequired("session")
	addDrillCmd.MarkFlagRequired("type")
	addDrillCmd.MarkFlagRequired("reps")
}
