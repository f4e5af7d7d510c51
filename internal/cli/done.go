package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// doneCmd marks a task as done
var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		ok, err := service.MarkDone(id)
		if err != nil {
			return fmt.Errorf("failed to mark task done: %w", err)
		}
		if !ok {
			fmt.Printf("No task found with id %s\n", id)
			return nil
		}

		fmt.Printf("Marked task #%s done\n", id)
		return nil
	},
}
