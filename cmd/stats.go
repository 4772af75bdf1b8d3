package cmd

import (
	"fmt"
	"strings"

	"github.com/cianmb/hurltrack/internal/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	statsFrom string
	statsTo   string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Weekly stats and progress against targets (default: last 7 days)",
	RunE: func(cmd *cobra.Command, args []string) error {
		to := models.Today()
		if statsTo != "" {
			var err error
			to, err = models.ParseDate(statsTo)
			if err != nil {
				return fmt.Errorf("invalid --to date %q: %w", statsTo, err)
			}
		}

		from := to.AddDate(0, 0, -6)
		if statsFrom != "" {
			var err error
			from, err = models.ParseDate(statsFrom)
			if err != nil {
				return fmt.Errorf("invalid --from date %q: %w", statsFrom, err)
			}
		}

		tr, err := openTracker()
		if err != nil {
			return err
		}

		stats := tr.GetWeeklyStats(from, to)
		targets := tr.GetTargets()

		printBoxedHeader("WEEKLY STATS")
		fmt.Printf("  %s to %s\n\n", from.Format(models.DateLayout), to.Format(models.DateLayout))

		printMetric("Sessions", stats.SessionCount)
		printMetric("Total minutes", stats.TotalMinutes)
		printMetric("Training load", fmt.Sprintf("%d (minutes × intensity)", stats.TrainingLoad))
		fmt.Println()

		fmt.Println(color.New(color.FgGreen, color.Bold).Sprint("Minutes by session type:"))
		for _, typ := range models.SessionTypes() {
			fmt.Printf("  • %s: %d\n", color.New(color.FgMagenta, color.Bold).Sprint(typ.String()), stats.MinutesByType[typ.Index()])
		}
		fmt.Println()

		fmt.Println(color.New(color.FgGreen, color.Bold).Sprint("Drill totals:"))
		any := false
		for _, typ := range models.DrillTypes() {
			reps := stats.RepsByDrill[typ.Index()]
			if reps == 0 {
				continue
			}
			any = true
			suc := ""
			if s := stats.SuccessByDrill[typ.Index()]; s > 0 {
				suc = fmt.Sprintf(" (%d successful)", s)
			}
			fmt.Printf("  • %s: %d reps%s\n", color.New(color.FgMagenta, color.Bold).Sprint(typ.String()), reps, suc)
		}
		if !any {
			fmt.Println("  (no drills in range)")
		}
		fmt.Println()

		fmt.Println(color.New(color.FgGreen, color.Bold).Sprint("Weekly targets:"))
		printProgress("Sessions", stats.SessionCount, targets.SessionsPerWeek)
		printProgress("Wall ball reps", stats.RepsByDrill[models.DrillWallBall.Index()], targets.WallBallRepsPerWeek)
		printProgress("Gym minutes", stats.MinutesByType[models.SessionGym.Index()], targets.GymMinutesPerWeek)
		fmt.Println()

		return nil
	},
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + centerText(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

// printProgress prints done/target with green when the target is met.
func printProgress(label string, done, target int) {
	c := color.New(color.FgRed)
	if target <= 0 || done >= target {
		c = color.New(color.FgGreen)
	} else if done > 0 {
		c = color.New(color.FgYellow)
	}
	fmt.Printf("  • %s: %s\n", label, c.Sprintf("%d / %d", done, target))
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsFrom, "from", "", "Range start YYYY-MM-DD (default: 6 days before --to)")
	statsCmd.Flags().StringVar(&statsTo, "to", "", "Range end YYYY-MM-DD (default: today)")
}
