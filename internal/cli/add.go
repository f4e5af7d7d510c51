package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"workflow/internal/task"
)

var (
	addTitleFlag     string
	addPriorityFlag  string
	addStatusFlag    string
	addDueFlag       string
	addPersonFlag    string
	addWaitingOnFlag string
	addFollowUpFlag  string
	addNotesFlag     string
)

// addCmd adds a task. Without --title it falls back to an interactive form
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a task",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := task.AddInput{
			Title:     addTitleFlag,
			Priority:  task.Priority(addPriorityFlag),
			Status:    task.Status(addStatusFlag),
			DueDate:   addDueFlag,
			Person:    addPersonFlag,
			WaitingOn: addWaitingOnFlag,
			FollowUp:  addFollowUpFlag,
			Notes:     addNotesFlag,
		}

		if !task.ValidPriority(addPriorityFlag) {
			return fmt.Errorf("invalid priority %q (choose from P1, P2, P3)", addPriorityFlag)
		}
		if !task.ValidStatus(addStatusFlag) {
			return fmt.Errorf("invalid status %q (choose from todo, in_progress, waiting, done)", addStatusFlag)
		}

		if strings.TrimSpace(addTitleFlag) == "" {
			// Interactive mode
			var err error
			in, err = runAddForm(in)
			if err != nil {
				return err
			}
		}

		t, err := service.Add(in)
		if err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}

		fmt.Printf("Added task #%s: %s\n", t.ID, t.Title)
		return nil
	},
}

// runAddForm collects task fields interactively
func runAddForm(in task.AddInput) (task.AddInput, error) {
	priority := string(in.Priority)
	status := string(in.Status)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&in.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Priority").
				Options(huh.NewOptions("P1", "P2", "P3")...).
				Value(&priority),
			huh.NewSelect[string]().
				Title("Status").
				Options(huh.NewOptions("todo", "in_progress", "waiting", "done")...).
				Value(&status),
			huh.NewInput().
				Title("Due date (optional, YYYY-MM-DD)").
				Value(&in.DueDate),
			huh.NewInput().
				Title("Person (optional)").
				Value(&in.Person),
			huh.NewInput().
				Title("Waiting on (optional)").
				Value(&in.WaitingOn),
			huh.NewInput().
				Title("Follow up (optional, YYYY-MM-DD)").
				Value(&in.FollowUp),
			huh.NewText().
				Title("Notes (optional)").
				Value(&in.Notes),
		),
	)

	if err := form.Run(); err != nil {
		return in, fmt.Errorf("form cancelled: %w", err)
	}

	in.Priority = task.Priority(priority)
	in.Status = task.Status(status)
	return in, nil
}

func init() {
	addCmd.Flags().StringVar(&addTitleFlag, "title", "", "Task title (omit for interactive mode)")
	addCmd.Flags().StringVar(&addPriorityFlag, "priority", "P2", "Priority (P1, P2, P3)")
	addCmd.Flags().StringVar(&addStatusFlag, "status", "todo", "Status (todo, in_progress, waiting, done)")
	addCmd.Flags().StringVar(&addDueFlag, "due", "", "Due date YYYY-MM-DD")
	addCmd.Flags().StringVar(&addPersonFlag, "person", "", "Relevant person")
	addCmd.Flags().StringVar(&addWaitingOnFlag, "waiting-on", "", "What/whom you are waiting on")
	addCmd.Flags().StringVar(&addFollowUpFlag, "follow-up", "", "Follow-up date YYYY-MM-DD")
	addCmd.Flags().StringVar(&addNotesFlag, "notes", "", "Optional notes")
}
