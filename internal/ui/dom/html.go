package dom

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML writes n and its descendants as HTML.
func RenderHTML(w io.Writer, n *Node) error {
	if n == nil {
		return nil
	}
	return html.Render(w, snapshot(n, nil))
}

// HTML returns the HTML form of n. Render errors yield an empty string.
func HTML(n *Node) string {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

// snapshot converts n into an x/net/html tree. When index is non-nil every
// element is recorded so query results can be mapped back.
func snapshot(n *Node, index map[*html.Node]*Node) *html.Node {
	if n.IsText() {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}
	out := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	for _, attr := range n.Attributes() {
		out.Attr = append(out.Attr, html.Attribute{Key: attr.Key, Val: attr.Val})
	}
	if index != nil {
		index[out] = n
	}
	for _, child := range n.Children {
		out.AppendChild(snapshot(child, index))
	}
	return out
}
