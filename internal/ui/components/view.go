package components

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/uikit/internal/ui/dom"
)

// ViewProps describes the layout wrapper every component renders through.
type ViewProps struct {
	As      string
	Margin  string
	Cursor  Cursor
	Display string
	Width   string
	Classes []string
	Attrs   dom.Attributes
}

// View renders the layout wrapper host element. It fails only when Margin
// cannot be parsed.
func View(theme Theme, props ViewProps, children ...*dom.Node) (*dom.Node, error) {
	tag := props.As
	if tag == "" {
		tag = "span"
	}

	node := dom.NewElement(tag, children...)
	node.AddClass(props.Classes...)
	node.SetAttrs(props.Attrs)

	if props.Margin != "" {
		margin, err := ParseMargin(theme, props.Margin)
		if err != nil {
			return node, err
		}
		node.SetStyle("margin", margin)
	}
	if props.Cursor != "" {
		node.SetStyle("cursor", string(props.Cursor))
	}
	node.SetStyle("display", props.Display)
	node.SetStyle("width", props.Width)

	return node, nil
}

// ParseMargin converts one to four space separated spacing tokens (or
// "auto") into a CSS margin value.
func ParseMargin(theme Theme, value string) (string, error) {
	tokens := strings.Fields(value)
	if len(tokens) == 0 || len(tokens) > 4 {
		return "", fmt.Errorf("margin %q: expected 1 to 4 spacing tokens", value)
	}
	spacing := theme.Spacing
	if spacing == (SpacingConfig{}) {
		spacing = defaultSpacing()
	}

	out := make([]string, len(tokens))
	for i, token := range tokens {
		if token == "auto" {
			out[i] = "auto"
			continue
		}
		size, ok := ParseSpacingSize(token)
		if !ok {
			return "", fmt.Errorf("margin %q: unknown spacing token %q", value, token)
		}
		out[i] = spacing.CSS[size]
	}
	return strings.Join(out, " "), nil
}
