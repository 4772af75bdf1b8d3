package cmd

import (
	"fmt"

	"github.com/cianmb/hurltrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	editSessionID int
	editDate      string
	editType      string
	editMinutes   int
	editIntensity int
	editNotes     string
)

var editSessionCmd = &cobra.Command{
	Use:   "edit-session",
	Short: "Replace fields of a session; unset flags keep current values",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := openTracker()
		if err != nil {
			return err
		}

		current, ok := tr.GetSession(editSessionID)
		if !ok {
			return fmt.Errorf("no session with ID %d", editSessionID)
		}

		// Build the full replacement record from current values plus
		// whatever flags were set. The stored session is swapped out
		// wholesale, never patched in place.
		date := current.Date
		if cmd.Flags().Changed("date") {
			date, err = models.ParseDate(editDate)
			if err != nil {
				return fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", editDate, err)
			}
		}

		typ := current.Type
		if cmd.Flags().Changed("type") {
			typ, err = models.ParseSessionType(editType)
			if err != nil {
				return fmt.Errorf("invalid type (valid: %v): %w", models.SessionTypes(), err)
			}
		}

		minutes := current.Minutes
		if cmd.Flags().Changed("minutes") {
			if editMinutes < 0 {
				return fmt.Errorf("minutes must be >= 0")
			}
			minutes = editMinutes
		}

		intensity := current.Intensity
		if cmd.Flags().Changed("intensity") {
			if editIntensity < 1 || editIntensity > 5 {
				return fmt.Errorf("intensity must be 1-5")
			}
			intensity = editIntensity
		}

		notes := current.Notes
		if cmd.Flags().Changed("notes") {
			notes = editNotes
		}

		replacement := models.NewTrainingSession(current.ID, date, typ, minutes, intensity, notes)
		if !tr.UpdateSession(replacement) {
			return fmt.Errorf("no session with ID %d", editSessionID)
		}
		if err := tr.Save(); err != nil {
			return fmt.Errorf("failed to save: %w", err)
		}

		fmt.Println("✅ Updated session:")
		fmt.Println(replacement.Neat())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editSessionCmd)

	editSessionCmd.Flags().IntVarP(&editSessionID, "session", "s", 0, "Session ID")
	editSessionCmd.Flags().StringVarP(&editDate, "date", "d", "", "New date YYYY-MM-DD")
	editSessionCmd.Flags().StringVarP(&editType, "type", "t", "", "New session type")
	editSessionCmd.Flags().IntVarP(&editMinutes, "minutes", "m", 0, "New duration in minutes")
	editSessionCmd.Flags().IntVarP(&editIntensity, "intensity", "i", 0, "New intensity 1-5")
	editSessionCmd.Flags().StringVarP(&editNotes, "notes", "n", "", "New notes")
	editSessionCmd.MarkFlagRequired("session")
}
