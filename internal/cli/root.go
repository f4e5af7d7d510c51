package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"workflow/internal/config"
	"workflow/internal/task"
	"workflow/internal/tui"
)

var service *task.Service

// RootCmd is the root command for the CLI
var RootCmd = &cobra.Command{
	Use:   "wf",
	Short: "Personal workflow tracker",
	Long:  `A personal task tracker with a CLI and an interactive terminal dashboard, both backed by a flat CSV file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the dashboard TUI
		model, err := tui.NewModel(service)
		if err != nil {
			return err
		}
		p := tea.NewProgram(model, tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	cobra.OnInitialize(initService)

	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(addCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(doneCmd)
	RootCmd.AddCommand(deleteCmd)
	RootCmd.AddCommand(dashboardCmd)
}

// initService wires the task service to the CSV file in the data directory
func initService() {
	dataPath, err := config.DataFilePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving data file: %v\n", err)
		os.Exit(1)
	}

	service = task.NewService(task.NewFileStore(dataPath))
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}
