package quiz

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"speechbench/cmd/speechbench/cmd/shared"
	"speechbench/internal/app/recommend"
	"speechbench/internal/tui"
)

// Cmd represents the quiz command
var Cmd = &cobra.Command{
	Use:   "quiz",
	Short: "Answer three questions interactively and get provider matches",
	Long: `Runs the recommendation quiz in the terminal.
Use the arrow keys or j/k to move, enter or 1-5 to answer, r to restart and q to quit.`,
	RunE: runQuiz,
}

func runQuiz(cmd *cobra.Command, args []string) error {
	application, err := shared.LoadApplication()
	if err != nil {
		return err
	}

	model := tui.NewQuizModel(recommend.NewQuiz(application.Catalog, application.Config.Recommend.TopN))
	program := tea.NewProgram(model,
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("quiz failed: %w", err)
	}
	return nil
}
