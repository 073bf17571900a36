package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
	"github.com/alexisbeaulieu97/uikit/internal/ui/dom"
)

const (
	formatHTML     = "html"
	formatTerminal = "terminal"
)

type renderOptions struct {
	Example  string
	Label    string
	Href     string
	To       string
	As       string
	Type     string
	Variant  string
	Size     string
	Disabled bool
	ReadOnly bool
	Fluid    bool
	Props    []string
	Format   string
	Theme    string
	Width    int
}

var renderCmdRunner = runRender

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a button as HTML or terminal output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateRenderOptions(opts); err != nil {
				return err
			}

			app, err := loadAppContext(cmd, root)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("theme") {
				opts.Theme = app.Config.Preview.Theme
			}

			cfg, err := buildButtonConfig(cmd, opts)
			if err != nil {
				return err
			}

			return renderCmdRunner(cmd, app, cfg, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Example, "example", "e", "", "Start from a catalog example")
	flags.StringVar(&opts.Label, "label", "", "Button text")
	flags.StringVar(&opts.Href, "href", "", "Link target")
	flags.StringVar(&opts.To, "to", "", "Router target")
	flags.StringVar(&opts.As, "as", "", "Host tag override")
	flags.StringVar(&opts.Type, "type", "", "Native button type (button, submit, reset)")
	flags.StringVar(&opts.Variant, "variant", "", "Colour variant")
	flags.StringVar(&opts.Size, "size", "", "Size (small, medium, large)")
	flags.BoolVar(&opts.Disabled, "disabled", false, "Render disabled")
	flags.BoolVar(&opts.ReadOnly, "read-only", false, "Render read-only")
	flags.BoolVar(&opts.Fluid, "fluid", false, "Fill the available width")
	flags.StringArrayVar(&opts.Props, "prop", nil, "Pass-through prop as key=value (repeatable)")
	flags.StringVarP(&opts.Format, "format", "f", formatHTML, "Output format (html, terminal)")
	flags.StringVar(&opts.Theme, "theme", "", "Theme for terminal output (default, dark, light)")
	flags.IntVar(&opts.Width, "width", 0, "Parent width for fluid terminal output")

	return cmd
}

// buildButtonConfig starts from the named example, if any, and applies every
// flag the user set on top of it.
func buildButtonConfig(cmd *cobra.Command, opts renderOptions) (components.ButtonConfig, error) {
	var cfg components.ButtonConfig
	if opts.Example != "" {
		ex, ok := components.LookupButtonExample(opts.Example)
		if !ok {
			return cfg, fmt.Errorf("unknown example %q", opts.Example)
		}
		cfg = ex.Config
	}

	changed := cmd.Flags().Changed
	if changed("label") {
		cfg.Children = []any{opts.Label}
	}
	if changed("href") {
		cfg.Href = opts.Href
	}
	if changed("to") {
		cfg.To = opts.To
	}
	if changed("as") {
		cfg.As = opts.As
	}
	if changed("type") {
		cfg.Type = opts.Type
	}
	if changed("variant") {
		cfg.Variant = components.ButtonVariant(opts.Variant)
	}
	if changed("size") {
		cfg.Size = components.ButtonSize(opts.Size)
	}
	if changed("disabled") {
		cfg.Disabled = opts.Disabled
	}
	if changed("read-only") {
		cfg.ReadOnly = opts.ReadOnly
	}
	if changed("fluid") {
		cfg.FluidWidth = opts.Fluid
	}

	props, err := parseProps(opts.Props)
	if err != nil {
		return cfg, err
	}
	if len(props) > 0 {
		merged := make(map[string]any, len(cfg.Props)+len(props))
		for k, v := range cfg.Props {
			merged[k] = v
		}
		for k, v := range props {
			merged[k] = v
		}
		cfg.Props = merged
	}

	if len(cfg.Children) == 0 && cfg.Icon == nil {
		cfg.Children = []any{"Button"}
	}
	return cfg, nil
}

func runRender(cmd *cobra.Command, app *AppContext, cfg components.ButtonConfig, opts renderOptions) error {
	theme, err := components.ThemeByName(opts.Theme)
	if err != nil {
		return err
	}

	ctx := components.DefaultContext().
		WithTheme(theme).
		WithReporter(app.Log.WithComponent("render"))

	button := components.NewButton(cfg)
	out := cmd.OutOrStdout()

	if opts.Format == formatTerminal {
		if opts.Width > 0 {
			ctx = ctx.WithParentWidth(opts.Width)
		}
		fmt.Fprintln(out, button.ViewWithContext(ctx))
		return nil
	}

	node := button.Render(ctx)
	if err := dom.RenderHTML(out, node); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	fmt.Fprintln(out)
	return nil
}
