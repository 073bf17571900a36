// Package components provides accessible UI primitives that render both to
// an element tree (see package dom) and to styled terminal output.
//
// # Button
//
// A Button is described by an immutable ButtonConfig. Each call to Render
// resolves the config into exactly one host element kind:
//
//   - a native button when nothing else applies,
//   - a link when Href or To is set and As does not override it,
//   - a custom element for any other As tag, exposed with role="button"
//     and tabindex="0".
//
// Disabled and ReadOnly both suppress activation and mark the element
// disabled, which removes it from the document's tab order.
//
// Pass-through layout props are filtered against AllowedButtonProps. Every
// other prop is dropped and reported once per render to the Reporter carried
// by the RenderContext:
//
//	reporter := &components.RecordingReporter{}
//	ctx := components.DefaultContext().WithReporter(reporter)
//	node := components.NewButton(components.ButtonConfig{
//		Children: []any{"Save"},
//		Props:    map[string]any{"margin": "small", "padding": "large"},
//	}).Render(ctx)
//	// reporter.Messages() == []string{"[Button] prop 'padding' is not allowed."}
//
// # Terminal rendering
//
// Components also implement View and ViewWithContext, which draw them with
// lipgloss using the Theme in the context:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	fmt.Println(button.ViewWithContext(ctx.WithFocus(true)))
//
// Themes are immutable value types; variants and sizes map to StyleStrategy
// values in the theme's VariantRegistry.
package components
