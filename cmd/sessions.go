package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var sessionsLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List the most recent sessions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := openTracker()
		if err != nil {
			return err
		}

		sessions := tr.GetLastSessions(sessionsLimit)
		if len(sessions) == 0 {
			fmt.Println("No sessions logged yet.")
			return nil
		}

		header := color.New(color.FgGreen, color.Bold).Sprintf("Last %d sessions:", len(sessions))
		fmt.Println(header)
		for _, s := range sessions {
			fmt.Println("  " + s.NeatOneLine())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd)

	sessionsCmd.Flags().IntVarP(&sessionsLimit, "limit", "n", 10, "How many sessions to show")
}
