package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteSessionID int

var deleteSessionCmd = &cobra.Command{
	Use:   "delete-session",
	Short: "Delete a session and every drill logged under it",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := openTracker()
		if err != nil {
			return err
		}

		if !tr.DeleteSession(deleteSessionID) {
			return fmt.Errorf("no session with ID %d", deleteSessionID)
		}
		if err := tr.Save(); err != nil {
			return fmt.Errorf("failed to save: %w", err)
		}

		fmt.Printf("✅ Deleted session %d and its drills\n", deleteSessionID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteSessionCmd)

	deleteSessionCmd.Flags().IntVarP(&deleteSessionID, "session", "s", 0, "Session ID")
	deleteSessionCmd.MarkFlagRequired("session")
}
