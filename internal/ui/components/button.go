package components

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/uikit/internal/ui/dom"
)

const buttonComponent = "Button"

// Native button types.
const (
	ButtonTypeButton = "button"
	ButtonTypeSubmit = "submit"
	ButtonTypeReset  = "reset"
)

// ButtonVariant selects the colour treatment of a button.
type ButtonVariant string

const (
	ButtonVariantDefault ButtonVariant = "default"
	ButtonVariantPrimary ButtonVariant = "primary"
	ButtonVariantSuccess ButtonVariant = "success"
	ButtonVariantDanger  ButtonVariant = "danger"
	ButtonVariantLight   ButtonVariant = "light"
	ButtonVariantGhost   ButtonVariant = "ghost"
	ButtonVariantLink    ButtonVariant = "link"
)

// ButtonSize selects the padding scale of a button.
type ButtonSize string

const (
	ButtonSizeSmall  ButtonSize = "small"
	ButtonSizeMedium ButtonSize = "medium"
	ButtonSizeLarge  ButtonSize = "large"
)

// ButtonConfig is the immutable description of one button render.
type ButtonConfig struct {
	Children   []any
	As         string `validate:"omitempty,html_tag"`
	Href       string
	To         string
	Type       string        `validate:"omitempty,oneof=button submit reset"`
	Variant    ButtonVariant `validate:"omitempty,oneof=default primary success danger light ghost link"`
	Size       ButtonSize    `validate:"omitempty,oneof=small medium large"`
	Disabled   bool
	ReadOnly   bool
	Icon       *Icon
	FluidWidth bool

	OnClick   func(*dom.Event)
	OnFocus   func(*dom.Event)
	ButtonRef func(*dom.Node)

	// Props holds pass-through layout props. Only AllowedButtonProps reach
	// the host element.
	Props map[string]any
}

// Button is an accessible, activatable control.
type Button struct {
	BaseComponent
	config ButtonConfig
	node   *dom.Node
}

// NewButton creates a button from cfg.
func NewButton(cfg ButtonConfig) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		config:        cfg,
	}
}

// Config returns the configuration the button was created with.
func (b *Button) Config() ButtonConfig {
	return b.config
}

// Node returns the host element produced by the last Render, or nil.
func (b *Button) Node() *dom.Node {
	return b.node
}

// WithAppliers adds terminal style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Focus moves document focus to the rendered host element.
func (b *Button) Focus(doc *dom.Document) error {
	if b.node == nil {
		return dom.ErrDetached
	}
	return doc.Focus(b.node)
}

// Label returns the plain text of the button's children.
func (b *Button) Label() string {
	var sb strings.Builder
	for _, child := range dom.ToNodes(b.config.Children...) {
		sb.WriteString(child.TextContent())
	}
	return sb.String()
}

// resolve applies pass-through props and validation to the configuration,
// reporting one diagnostic per problem.
func (b *Button) resolve(reporter Reporter) (ButtonConfig, map[string]any) {
	cfg := b.config

	kept, rejected := ValidateProps(cfg.Props, AllowedButtonProps)
	for _, name := range rejected {
		reporter.Warn(PropNotAllowed(buttonComponent, name))
	}
	for _, name := range AllowedButtonProps {
		value, ok := kept[name]
		if !ok {
			continue
		}
		if !validPassThrough(name, value) {
			reporter.Warn(PropInvalidValue(buttonComponent, name, value))
			delete(kept, name)
		}
	}
	cfg.Props = kept
	if as, ok := kept["as"].(string); ok && cfg.As == "" {
		cfg.As = as
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				reporter.Warn(PropInvalidValue(buttonComponent, strings.ToLower(fe.Field()), fe.Value()))
				switch fe.Field() {
				case "As":
					cfg.As = ""
				case "Type":
					cfg.Type = ButtonTypeButton
				case "Variant":
					cfg.Variant = ButtonVariantDefault
				case "Size":
					cfg.Size = ButtonSizeMedium
				}
			}
		}
	}
	if cfg.Variant == "" {
		cfg.Variant = ButtonVariantDefault
	}
	if cfg.Size == "" {
		cfg.Size = ButtonSizeMedium
	}
	return cfg, kept
}

// Render builds the host element for one render pass. Foreign props are
// dropped and reported to ctx.Reporter; the returned node is never nil.
func (b *Button) Render(ctx RenderContext) *dom.Node {
	reporter := ctx.reporter()
	cfg, passThrough := b.resolve(reporter)
	host := ResolveElementKind(cfg)

	classes := []string{
		"button",
		"variant--" + string(cfg.Variant),
		"size--" + string(cfg.Size),
	}
	if cfg.FluidWidth {
		classes = append(classes, "width--fluid")
	}
	if cfg.Disabled {
		classes = append(classes, "button--disabled")
	}
	if cfg.ReadOnly {
		classes = append(classes, "button--read-only")
	}

	props := ViewProps{
		As:      host.Tag,
		Cursor:  ResolveCursor(cfg),
		Classes: classes,
		Attrs:   ComputeAccessibilityAttributes(host, cfg),
		Display: "inline-block",
	}
	if cfg.FluidWidth {
		props.Display = "block"
		props.Width = "100%"
	}
	if margin, ok := passThrough["margin"].(string); ok {
		props.Margin = margin
	}

	node, err := View(ctx.theme(), props, b.renderContent(cfg))
	if err != nil {
		reporter.Warn(PropInvalidValue(buttonComponent, "margin", props.Margin))
	}
	b.bind(node, host, cfg)
	b.node = node
	return node
}

func (b *Button) renderContent(cfg ButtonConfig) *dom.Node {
	content := dom.NewElement("span").AddClass("button__content")
	if cfg.Icon != nil {
		content.AppendChild(dom.NewElement("span", cfg.Icon.Render()).AddClass("button__icon"))
	}
	if children := dom.ToNodes(cfg.Children...); len(children) > 0 {
		wrapper := dom.NewElement("span").AddClass("button__children")
		for _, child := range children {
			// Caller-owned nodes are copied so every render builds its own tree.
			wrapper.AppendChild(child.Clone())
		}
		content.AppendChild(wrapper)
	}
	return content
}

// bind installs the activation gates and callbacks on the host element.
func (b *Button) bind(node *dom.Node, host HostElement, cfg ButtonConfig) {
	node.AddEventListener(dom.EventClick, func(ev *dom.Event) {
		if !ShouldActivate(cfg, PointerTrigger()) {
			ev.PreventDefault()
			ev.StopPropagation()
			return
		}
		if cfg.OnClick != nil {
			cfg.OnClick(ev)
		}
	})

	node.AddEventListener(dom.EventKeyDown, func(ev *dom.Event) {
		if !HandlesKey(host, cfg, ev.Key) {
			return
		}
		ev.PreventDefault()
		ev.StopPropagation()
		if ShouldActivate(cfg, KeyTrigger(ev.Key)) && cfg.OnClick != nil {
			cfg.OnClick(ev)
		}
	})

	if cfg.OnFocus != nil {
		node.AddEventListener(dom.EventFocus, cfg.OnFocus)
	}
	if cfg.ButtonRef != nil {
		node.OnMount(cfg.ButtonRef)
	}
}

// View renders the button for a terminal with the default context.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button for a terminal.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	cfg, _ := b.resolve(nopReporter{})
	style := b.computeStyle(ctx, cfg)

	label := b.Label()
	if cfg.Icon != nil {
		if label == "" {
			label = cfg.Icon.Glyph
		} else {
			label = cfg.Icon.Glyph + " " + label
		}
	}
	return style.Render(label)
}

func (b *Button) computeStyle(ctx RenderContext, cfg ButtonConfig) lipgloss.Style {
	theme := ctx.theme()
	style := b.ComputeStyle(theme)

	if strategy := theme.Variants.Get(cfg.Variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}
	if strategy := theme.Variants.Get(cfg.Size); strategy != nil {
		style = strategy.Apply(style, theme)
	}

	if cfg.Disabled {
		style = style.Faint(true)
	}
	if ctx.Focused {
		style = style.Bold(true).Underline(true)
	}
	if cfg.FluidWidth && ctx.ParentWidth > 0 {
		style = style.Width(ctx.Constraints.ConstrainWidth(ctx.ParentWidth)).Align(lipgloss.Center)
	}
	return style
}
