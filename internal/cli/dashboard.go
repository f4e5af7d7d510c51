package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// dashboardCmd prints a one-shot text summary of the open tasks
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show summary dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		sum, err := service.Summary(time.Now())
		if err != nil {
			return fmt.Errorf("failed to compute summary: %w", err)
		}

		fmt.Println("=== WORKFLOW DASHBOARD ===")
		fmt.Printf("Open tasks: %d\n", len(sum.Open))
		fmt.Printf("P1 tasks: %d\n", len(sum.P1))
		fmt.Printf("Due today: %d\n", len(sum.DueToday))
		fmt.Printf("Overdue: %d\n", len(sum.Overdue))
		fmt.Printf("Waiting: %d\n", len(sum.Waiting))
		fmt.Println()

		if len(sum.Overdue) > 0 {
			fmt.Println("Overdue tasks:")
			for _, t := range truncateTasks(sum.Overdue, 10) {
				fmt.Printf("- #%s [%s] %s (due %s)\n", t.ID, t.Priority, t.Title, t.DueDate)
			}
			fmt.Println()
		}

		if len(sum.FollowupsDue) > 0 {
			fmt.Println("Follow-ups due:")
			for _, t := range truncateTasks(sum.FollowupsDue, 10) {
				person := t.Person
				if person == "" {
					person = "(no person)"
				}
				fmt.Printf("- #%s %s -> follow up with %s\n", t.ID, t.Title, person)
			}
		}

		return nil
	},
}
