package components

import "github.com/alexisbeaulieu97/uikit/internal/ui/dom"

// Icon is a decorative glyph drawn as inline SVG on the web and as a single
// character in terminals.
type Icon struct {
	Name    string
	ViewBox string
	Path    string
	Glyph   string
}

var (
	IconTrashSolid = &Icon{
		Name:    "IconTrash",
		ViewBox: "0 0 1920 1920",
		Path:    "M1242.353 0v225.882h564.706v225.883H112.94V225.882h564.706V0h564.706zM338.824 564.706h1242.352V1920H338.824V564.706z",
		Glyph:   "🗑",
	}
	IconAddSolid = &Icon{
		Name:    "IconAdd",
		ViewBox: "0 0 1920 1920",
		Path:    "M1072.94 0v847.06H1920v225.88h-847.06V1920H847.06v-847.06H0V847.06h847.06V0z",
		Glyph:   "+",
	}
	IconArrowOpenEndSolid = &Icon{
		Name:    "IconArrowOpenEnd",
		ViewBox: "0 0 1920 1920",
		Path:    "M568.13.012 392 176.142l783.864 783.989L392 1743.87 568.13 1920l960.12-960.12z",
		Glyph:   "›",
	}
)

// Render draws the icon as an SVG element hidden from assistive technology.
func (i *Icon) Render() *dom.Node {
	if i == nil {
		return nil
	}
	path := dom.NewElement("path").SetAttr("d", i.Path)
	return dom.NewElement("svg", path).
		SetAttr("name", i.Name).
		SetAttr("viewbox", i.ViewBox).
		SetAttr("aria-hidden", "true").
		SetAttr("focusable", "false").
		AddClass("icon")
}

// ScreenReaderContent renders text that only assistive technology announces,
// for controls whose visible content is an icon.
func ScreenReaderContent(text string) *dom.Node {
	return dom.NewElement("span", dom.NewText(text)).AddClass("screenreader-only")
}
