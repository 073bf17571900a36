package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/ui/dom"
)

// Renderable is anything that can draw itself for a terminal.
type Renderable interface {
	View() string
}

// Component renders into a host tree and into a terminal.
type Component interface {
	Renderable
	ViewWithContext(ctx RenderContext) string
	Render(ctx RenderContext) *dom.Node
}

// BaseComponent provides common functionality for all components.
// Embed this in your component structs to get standard behavior.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy defines how styling should be applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc applies theme data to a lipgloss.Style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the computed style for this component using the provided theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// AddAppliers appends additional style appliers to the existing strategy,
// keeping whatever the current strategy does.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		newFuncs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(newFuncs, existing.funcs)
		newFuncs = append(newFuncs, appliers...)
		b.strategy = CompositeStrategy{funcs: newFuncs}
		return
	}

	currentStrategy := b.strategy
	wrapper := func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if currentStrategy != nil {
			base = currentStrategy.Apply(base, theme)
		}
		for _, applier := range appliers {
			base = applier(base, theme)
		}
		return base
	}
	b.strategy = NewCompositeStrategy(wrapper)
}

// Constraints defines sizing constraints for terminal layout.
type Constraints struct {
	MinWidth int
	MaxWidth int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MinWidth: 0, MaxWidth: -1}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MinWidth: 0, MaxWidth: maxWidth}
}

// ConstrainWidth clamps width to the constraints.
func (c Constraints) ConstrainWidth(width int) int {
	if c.MinWidth > 0 && width < c.MinWidth {
		width = c.MinWidth
	}
	if c.MaxWidth >= 0 && width > c.MaxWidth {
		width = c.MaxWidth
	}
	return width
}

// RenderContext carries the theme, layout information and the diagnostic
// channel through a render pass.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
	ParentWidth int
	Focused     bool
	Reporter    Reporter
}

// DefaultContext returns a render context with the default theme, no
// constraints and diagnostics discarded.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
	}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// WithParentWidth returns a new context laid out inside width cells.
func (r RenderContext) WithParentWidth(width int) RenderContext {
	r.ParentWidth = width
	return r
}

// WithFocus returns a new context marking the component as focused.
func (r RenderContext) WithFocus(focused bool) RenderContext {
	r.Focused = focused
	return r
}

// WithReporter returns a new context sending diagnostics to reporter.
func (r RenderContext) WithReporter(reporter Reporter) RenderContext {
	r.Reporter = reporter
	return r
}

func (r RenderContext) reporter() Reporter {
	if r.Reporter == nil {
		return nopReporter{}
	}
	return r.Reporter
}

func (r RenderContext) theme() Theme {
	if r.Theme.Variants == nil {
		return r.Theme.Normalize()
	}
	return r.Theme
}
