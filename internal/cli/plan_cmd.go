package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Open the interactive day board",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(app)
		},
	}
}

func runBoard(app *App) error {
	p := tea.NewProgram(newBoardModel(app), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running board: %w", err)
	}
	return nil
}
