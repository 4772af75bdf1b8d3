package cmd

import (
	"fmt"

	"github.com/cianmb/hurltrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	sessionDate      string
	sessionType      string
	sessionMinutes   int
	sessionIntensity int
	sessionNotes     string
)

var addSessionCmd = &cobra.Command{
	Use:   "add-session",
	Short: "Log a training session",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := models.Today()
		if sessionDate != "" {
			var err error
			date, err = models.ParseDate(sessionDate)
			if err != nil {
				return fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", sessionDate, err)
			}
		}

		typ, err := models.ParseSessionType(sessionType)
		if err != nil {
			return fmt.Errorf("invalid type (valid: %v): %w", models.SessionTypes(), err)
		}

		if sessionMinutes < 0 {
			return fmt.Errorf("minutes must be >= 0")
		}
		if sessionIntensity < 1 || sessionIntensity > 5 {
			return fmt.Errorf("intensity must be 1-5")
		}

		tr, err := openTracker()
		if err != nil {
			return err
		}

		s := models.NewTrainingSession(tr.NextSessionID(), date, typ, sessionMinutes, sessionIntensity, sessionNotes)
		tr.AddSession(s)
		if err := tr.Save(); err != nil {
			return fmt.Errorf("failed to save: %w", err)
		}

		fmt.Println("✅ Added session:")
		fmt.Println(s.Neat())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addSessionCmd)

	addSessionCmd.Flags().StringVarP(&sessionDate, "date", "d", "", "Session date YYYY-MM-DD (default today)")
	addSessionCmd.Flags().StringVarP(&sessionType, "type", "t", "", "Session type (GYM, PITCH, MATCH)")
	addSessionCmd.Flags().IntVarP(&sessionMinutes, "minutes", "m", 0, "Duration in minutes")
	addSessionCmd.Flags().IntVarP(&sessionIntensity, "intensity", "i", 0, "Perceived intensity 1-5")
	addSessionCmd.Flags().StringVarP(&sessionNotes, "notes", "n", "", "Optional notes")
	addSessionCmd.MarkFlagRequired("type")
	addSessionCmd.MarkFlagRequired("minutes")
	addSessionCmd.MarkFlagRequired("intensity")
}
