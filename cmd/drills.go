package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var drillsSessionID int

var drillsCmd = &cobra.Command{
	Use:   "drills",
	Short: "Show a session and its drills",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := openTracker()
		if err != nil {
			return err
		}

		session, ok := tr.GetSession(drillsSessionID)
		if !ok {
			return fmt.Errorf("no session with ID %d", drillsSessionID)
		}

		fmt.Println(color.New(color.FgGreen, color.Bold).Sprint("Session:"))
		fmt.Println(session.Neat())

		drills := tr.GetDrillsForSession(session.ID)
		if len(drills) == 0 {
			fmt.Println("\nNo drills logged for this session.")
			return nil
		}

		fmt.Println(color.New(color.FgGreen, color.Bold).Sprint("\nDrills:"))
		for _, d := range drills {
			fmt.Println(d.Neat())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(drillsCmd)

	drillsCmd.Flags().IntVarP(&drillsSessionID, "session", "s", 0, "Session ID")
	drillsCmd.MarkFlagRequired("session")
}
