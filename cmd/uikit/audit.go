package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/uikit/internal/ui/a11y"
	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
	uikiterrors "github.com/alexisbeaulieu97/uikit/pkg/errors"
)

var auditCmdRunner = runAudit

func newAuditCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit [example...]",
		Short: "Check catalog examples for accessibility violations",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadAppContext(cmd, root)
			if err != nil {
				return err
			}

			examples, err := selectExamples(args)
			if err != nil {
				return err
			}

			return auditCmdRunner(cmd, app, examples)
		},
	}

	return cmd
}

func selectExamples(names []string) ([]components.ButtonExample, error) {
	if len(names) == 0 {
		return components.ButtonExamples(), nil
	}

	examples := make([]components.ButtonExample, 0, len(names))
	for _, name := range names {
		ex, ok := components.LookupButtonExample(name)
		if !ok {
			return nil, fmt.Errorf("unknown example %q", name)
		}
		examples = append(examples, ex)
	}
	return examples, nil
}

func runAudit(cmd *cobra.Command, app *AppContext, examples []components.ButtonExample) error {
	out := cmd.OutOrStdout()
	ctx := components.DefaultContext().WithReporter(app.Log.WithComponent("audit"))

	total := 0
	for _, ex := range examples {
		node := components.NewButton(ex.Config).Render(ctx)
		violations := a11y.Audit(node)
		if len(violations) == 0 {
			fmt.Fprintf(out, "ok    %s\n", ex.Name)
			continue
		}

		total += len(violations)
		fmt.Fprintf(out, "FAIL  %s\n", ex.Name)
		for _, v := range violations {
			fmt.Fprintf(out, "      %s\n", v)
		}
	}

	if total > 0 {
		return uikiterrors.NewAuditError("", total)
	}
	fmt.Fprintf(out, "%d example(s) passed\n", len(examples))
	return nil
}
