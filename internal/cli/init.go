package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"workflow/internal/config"
)

// initCmd creates the data file if it does not exist yet
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the CSV data file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := service.Init(); err != nil {
			return fmt.Errorf("failed to initialize data file: %w", err)
		}

		dataPath, err := config.DataFilePath()
		if err != nil {
			return err
		}

		fmt.Printf("Initialized: %s\n", dataPath)
		return nil
	},
}
