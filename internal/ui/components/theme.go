package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SpacingSize enumerates the spacing tokens accepted by layout props.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeXXXSmall
	SpacingSizeXXSmall
	SpacingSizeXSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeXLarge
	SpacingSizeXXLarge
)

const spacingSizeCount = int(SpacingSizeXXLarge) + 1

var spacingTokens = [spacingSizeCount]string{
	SpacingSizeNone:     "none",
	SpacingSizeXXXSmall: "xxx-small",
	SpacingSizeXXSmall:  "xx-small",
	SpacingSizeXSmall:   "x-small",
	SpacingSizeSmall:    "small",
	SpacingSizeMedium:   "medium",
	SpacingSizeLarge:    "large",
	SpacingSizeXLarge:   "x-large",
	SpacingSizeXXLarge:  "xx-large",
}

// String returns the token name.
func (s SpacingSize) String() string {
	if s < 0 || int(s) >= spacingSizeCount {
		return fmt.Sprintf("SpacingSize(%d)", int(s))
	}
	return spacingTokens[s]
}

// ParseSpacingSize resolves a token such as "small" or "0".
func ParseSpacingSize(token string) (SpacingSize, bool) {
	token = strings.TrimSpace(strings.ToLower(token))
	if token == "0" {
		return SpacingSizeNone, true
	}
	for i, name := range spacingTokens {
		if name == token {
			return SpacingSize(i), true
		}
	}
	return SpacingSizeNone, false
}

type spacingTable [spacingSizeCount]int

// SpacingConfig stores the spacing scale in terminal cells and in CSS units.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
	CSS     [spacingSizeCount]string
}

// ColourSet groups the colours used for one semantic slot.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Success   ColourSet
	Danger    ColourSet
	Light     ColourSet
	Neutral   ColourSet
	Focus     ColourSet
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteLight     PaletteSlot = func(p Palette) ColourSet { return p.Light }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
	PaletteFocus     PaletteSlot = func(p Palette) ColourSet { return p.Focus }
)

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{
		strategies: make(map[any]StyleStrategy),
	}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme represents an immutable styling theme for components.
type Theme struct {
	Name     string
	Palette  Palette
	Spacing  SpacingConfig
	Variants *VariantRegistry
}

// Normalize returns a new theme with all fields properly initialized.
func (t Theme) Normalize() Theme {
	if t.Spacing == (SpacingConfig{}) {
		t.Spacing = defaultSpacing()
	}
	if t.Variants == nil {
		t.Variants = NewVariantRegistry()
		registerButtonVariants(t.Variants)
	}
	return t
}

func defaultSpacing() SpacingConfig {
	return SpacingConfig{
		Margin:  spacingTable{0, 0, 0, 1, 1, 2, 3, 4, 5},
		Padding: spacingTable{0, 0, 1, 1, 2, 3, 4, 5, 6},
		CSS: [spacingSizeCount]string{
			"0", "0.125rem", "0.375rem", "0.5rem", "0.75rem",
			"1.5rem", "2.25rem", "3rem", "3.75rem",
		},
	}
}

// DefaultTheme returns the default theme for components.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:   ac("#0374b5", "#3b9ae1"),
			OnBase: ac("#ffffff", "#0b1120"),
			Muted:  ac("#035d91", "#1d6fa5"),
		},
		Secondary: ColourSet{
			Base:   ac("#f5f5f5", "#2d3b45"),
			OnBase: ac("#2d3b45", "#f5f5f5"),
			Muted:  ac("#c7cdd1", "#394b58"),
		},
		Success: ColourSet{
			Base:   ac("#0b874b", "#27a86b"),
			OnBase: ac("#ffffff", "#0b1120"),
			Muted:  ac("#096b3c", "#1b7a4d"),
		},
		Danger: ColourSet{
			Base:   ac("#e0061f", "#ef4452"),
			OnBase: ac("#ffffff", "#0b1120"),
			Muted:  ac("#b30519", "#c0303e"),
		},
		Light: ColourSet{
			Base:   ac("#ffffff", "#f5f5f5"),
			OnBase: ac("#2d3b45", "#2d3b45"),
			Muted:  ac("#f5f5f5", "#c7cdd1"),
		},
		Neutral: ColourSet{
			Base:   ac("#73818c", "#8b969e"),
			OnBase: ac("#ffffff", "#0b1120"),
			Muted:  ac("#c7cdd1", "#394b58"),
		},
		Focus: ColourSet{
			Base:   ac("#0374b5", "#3b9ae1"),
			OnBase: ac("#ffffff", "#ffffff"),
			Muted:  ac("#0374b5", "#3b9ae1"),
		},
	}

	theme := Theme{Name: "default", Palette: palette}
	return theme.Normalize()
}

// DarkTheme returns a dark theme variant.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "dark"
	theme.Palette.Secondary = ColourSet{
		Base:   lipgloss.AdaptiveColor{Light: "#2d3b45", Dark: "#1f2933"},
		OnBase: lipgloss.AdaptiveColor{Light: "#f5f5f5", Dark: "#e5e7eb"},
		Muted:  lipgloss.AdaptiveColor{Light: "#394b58", Dark: "#111827"},
	}

	// Re-register variants with updated palette
	theme.Variants = NewVariantRegistry()
	registerButtonVariants(theme.Variants)
	return theme.Normalize()
}

// LightTheme returns a light theme variant.
func LightTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "light"
	return theme
}

// ThemeByName resolves "default", "dark" or "light".
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return DefaultTheme(), nil
	case "dark":
		return DarkTheme(), nil
	case "light":
		return LightTheme(), nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q", name)
}

// registerButtonVariants populates button variant strategies.
func registerButtonVariants(registry *VariantRegistry) {
	registry.Register(ButtonVariantDefault, NewCompositeStrategy(Background(PaletteSecondary)))
	registry.Register(ButtonVariantPrimary, NewCompositeStrategy(Background(PalettePrimary)))
	registry.Register(ButtonVariantSuccess, NewCompositeStrategy(Background(PaletteSuccess)))
	registry.Register(ButtonVariantDanger, NewCompositeStrategy(Background(PaletteDanger)))
	registry.Register(ButtonVariantLight, NewCompositeStrategy(Background(PaletteLight)))
	registry.Register(ButtonVariantGhost, NewCompositeStrategy(Foreground(PalettePrimary)))
	registry.Register(ButtonVariantLink, NewCompositeStrategy(
		Foreground(PalettePrimary),
		func(base lipgloss.Style, _ Theme) lipgloss.Style { return base.Underline(true) },
	))

	registry.Register(ButtonSizeSmall, NewCompositeStrategy(PaddingX(SpacingSizeXXSmall)))
	registry.Register(ButtonSizeMedium, NewCompositeStrategy(PaddingX(SpacingSizeSmall)))
	registry.Register(ButtonSizeLarge, NewCompositeStrategy(PaddingX(SpacingSizeMedium)))
}

// PaddingValue returns the terminal padding for size.
func PaddingValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Padding, size)
}

// MarginValue returns the terminal margin for size.
func MarginValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Margin, size)
}

// CSSValue returns the CSS length for size.
func CSSValue(theme Theme, size SpacingSize) string {
	if size < 0 || int(size) >= spacingSizeCount {
		return ""
	}
	return theme.Spacing.CSS[size]
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	if size < 0 || int(size) >= len(table) {
		return 0
	}
	return table[size]
}

// Background applies a semantic background colour and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Foreground(cs.Base)
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func MarginX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Margin, size)
		return base.MarginLeft(value).MarginRight(value)
	}
}
