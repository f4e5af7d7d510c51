package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"workflow/internal/task"
)

var (
	listStatusFlag   string
	listPriorityFlag string
)

// listCmd lists tasks, optionally filtered by status and priority
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		if listStatusFlag != "" && !task.ValidStatus(listStatusFlag) {
			return fmt.Errorf("invalid status %q (choose from todo, in_progress, waiting, done)", listStatusFlag)
		}
		if listPriorityFlag != "" && !task.ValidPriority(listPriorityFlag) {
			return fmt.Errorf("invalid priority %q (choose from P1, P2, P3)", listPriorityFlag)
		}

		tasks, err := service.List(listStatusFlag, listPriorityFlag)
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		printTaskTable(os.Stdout, tasks)
		return nil
	},
}

// printTaskTable renders tasks as an aligned text table
func printTaskTable(out io.Writer, tasks []task.Task) {
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', tabwriter.TabIndent)
	fmt.Fprintln(tw, "ID\tPRI\tSTATUS\tDUE\tTITLE")
	for _, t := range tasks {
		due := t.DueDate
		if due == "" {
			due = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.Priority, t.Status, due, t.Title)
	}
	tw.Flush()
}

func init() {
	listCmd.Flags().StringVar(&listStatusFlag, "status", "", "Filter by status (todo, in_progress, waiting, done)")
	listCmd.Flags().StringVar(&listPriorityFlag, "priority", "", "Filter by priority (P1, P2, P3)")
}
