package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/uikit/internal/tui"
	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
)

type previewOptions struct {
	Theme    string
	Examples []string
}

var previewCmdRunner = runPreview

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview [example...]",
		Short: "Browse the button catalog in an interactive terminal gallery",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.OutOrStdout()) {
				return errors.New("preview requires an interactive terminal")
			}

			app, err := loadAppContext(cmd, root)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("theme") {
				opts.Theme = app.Config.Preview.Theme
			}
			opts.Examples = args

			return previewCmdRunner(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Theme, "theme", "", "Theme (default, dark, light)")

	return cmd
}

func runPreview(cmd *cobra.Command, app *AppContext, opts previewOptions) error {
	theme, err := components.ThemeByName(opts.Theme)
	if err != nil {
		return err
	}

	examples, err := selectExamples(opts.Examples)
	if err != nil {
		return err
	}

	model := tui.NewModel(examples, theme, app.Log.WithComponent("preview"))
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run preview: %w", err)
	}
	return nil
}

func isTerminal(stream any) bool {
	if file, ok := stream.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}
