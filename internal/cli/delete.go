package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd removes a task from the collection
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		ok, err := service.Delete(id)
		if err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}
		if !ok {
			fmt.Printf("No task found with id %s\n", id)
			return nil
		}

		fmt.Printf("Deleted task #%s\n", id)
		return nil
	},
}
