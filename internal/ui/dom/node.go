// Package dom models the host environment components render into: element
// trees with attributes, event listeners, focus and tab order, and the
// default activation behaviour a browser applies to native controls.
package dom

import (
	"fmt"
	"strings"
)

// Node is an element or text node. Text nodes have an empty Tag.
type Node struct {
	Tag      string
	Text     string
	Children []*Node
	Parent   *Node

	attrs      Attributes
	classes    []string
	style      Attributes
	listeners  map[EventType][]Listener
	mountHooks []func(*Node)
}

// NewElement creates an element node with the given tag.
func NewElement(tag string, children ...*Node) *Node {
	n := &Node{Tag: strings.ToLower(tag)}
	n.AppendChild(children...)
	return n
}

// NewText creates a text node.
func NewText(text string) *Node {
	return &Node{Text: text}
}

// ToNodes converts loosely typed content into nodes. Strings and numbers
// become text nodes, nodes are kept as-is, nil entries are skipped.
func ToNodes(content ...any) []*Node {
	out := make([]*Node, 0, len(content))
	for _, item := range content {
		switch v := item.(type) {
		case nil:
		case *Node:
			if v != nil {
				out = append(out, v)
			}
		case []*Node:
			out = append(out, v...)
		case string:
			out = append(out, NewText(v))
		case fmt.Stringer:
			out = append(out, NewText(v.String()))
		case int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64, bool:
			out = append(out, NewText(fmt.Sprint(v)))
		default:
			out = append(out, NewText(fmt.Sprintf("%v", v)))
		}
	}
	return out
}

// IsText reports whether n is a text node.
func (n *Node) IsText() bool {
	return n.Tag == ""
}

// AppendChild attaches children in order, skipping nil entries.
func (n *Node) AppendChild(children ...*Node) *Node {
	for _, child := range children {
		if child == nil {
			continue
		}
		child.Parent = n
		n.Children = append(n.Children, child)
	}
	return n
}

// SetAttr sets an attribute. The class and style attributes are parsed into
// the node's class list and declarations.
func (n *Node) SetAttr(key, val string) *Node {
	switch strings.ToLower(key) {
	case "class":
		n.classes = nil
		n.AddClass(strings.Fields(val)...)
	case "style":
		n.style = nil
		for _, decl := range strings.Split(val, ";") {
			prop, value, ok := strings.Cut(decl, ":")
			if !ok {
				continue
			}
			n.SetStyle(strings.TrimSpace(prop), strings.TrimSpace(value))
		}
	default:
		n.attrs.Set(key, val)
	}
	return n
}

// SetAttrs sets every attribute in attrs.
func (n *Node) SetAttrs(attrs Attributes) *Node {
	for _, attr := range attrs {
		n.SetAttr(attr.Key, attr.Val)
	}
	return n
}

// RemoveAttr deletes an attribute.
func (n *Node) RemoveAttr(key string) *Node {
	switch strings.ToLower(key) {
	case "class":
		n.classes = nil
	case "style":
		n.style = nil
	default:
		n.attrs.Delete(key)
	}
	return n
}

// Attr returns an attribute value, including the synthesized class and
// style attributes.
func (n *Node) Attr(key string) (string, bool) {
	switch strings.ToLower(key) {
	case "class":
		if len(n.classes) == 0 {
			return "", false
		}
		return strings.Join(n.classes, " "), true
	case "style":
		if len(n.style) == 0 {
			return "", false
		}
		return n.styleString(), true
	}
	return n.attrs.Get(key)
}

// HasAttr reports whether the attribute is present.
func (n *Node) HasAttr(key string) bool {
	_, ok := n.Attr(key)
	return ok
}

// Attributes returns every attribute in render order.
func (n *Node) Attributes() Attributes {
	out := make(Attributes, 0, len(n.attrs)+2)
	if class, ok := n.Attr("class"); ok {
		out = append(out, Attr{Key: "class", Val: class})
	}
	out = append(out, n.attrs...)
	if style, ok := n.Attr("style"); ok {
		out = append(out, Attr{Key: "style", Val: style})
	}
	return out
}

// AddClass appends classes that are not present yet.
func (n *Node) AddClass(classes ...string) *Node {
	for _, class := range classes {
		if class == "" || n.HasClass(class) {
			continue
		}
		n.classes = append(n.classes, class)
	}
	return n
}

// HasClass reports whether class is in the class list.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.classes {
		if c == class {
			return true
		}
	}
	return false
}

// Classes returns a copy of the class list.
func (n *Node) Classes() []string {
	return append([]string(nil), n.classes...)
}

// SetStyle sets an inline style declaration. An empty value removes it.
func (n *Node) SetStyle(prop, val string) *Node {
	if val == "" {
		n.style.Delete(prop)
		return n
	}
	n.style.Set(prop, val)
	return n
}

// Style returns an inline style declaration.
func (n *Node) Style(prop string) string {
	val, _ := n.style.Get(prop)
	return val
}

func (n *Node) styleString() string {
	parts := make([]string, len(n.style))
	for i, decl := range n.style {
		parts[i] = decl.Key + ": " + decl.Val
	}
	return strings.Join(parts, "; ")
}

// TextContent concatenates the text of n and its descendants.
func (n *Node) TextContent() string {
	if n.IsText() {
		return n.Text
	}
	var b strings.Builder
	for _, child := range n.Children {
		b.WriteString(child.TextContent())
	}
	return b.String()
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.Parent {
		if cur == n {
			return true
		}
	}
	return false
}

// OnMount registers fn to run each time the node is mounted into a Document.
func (n *Node) OnMount(fn func(*Node)) *Node {
	if fn != nil {
		n.mountHooks = append(n.mountHooks, fn)
	}
	return n
}

// AddEventListener registers a listener for the given event type.
func (n *Node) AddEventListener(typ EventType, fn Listener) *Node {
	if fn == nil {
		return n
	}
	if n.listeners == nil {
		n.listeners = make(map[EventType][]Listener)
	}
	n.listeners[typ] = append(n.listeners[typ], fn)
	return n
}

// Clone returns a deep copy of n with no parent. Listeners and mount hooks
// are copied into the clone; the functions themselves are shared.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		Tag:        n.Tag,
		Text:       n.Text,
		attrs:      append(Attributes(nil), n.attrs...),
		classes:    append([]string(nil), n.classes...),
		style:      append(Attributes(nil), n.style...),
		mountHooks: append(([]func(*Node))(nil), n.mountHooks...),
	}
	if len(n.listeners) > 0 {
		out.listeners = make(map[EventType][]Listener, len(n.listeners))
		for typ, fns := range n.listeners {
			out.listeners[typ] = append([]Listener(nil), fns...)
		}
	}
	for _, child := range n.Children {
		out.AppendChild(child.Clone())
	}
	return out
}

// String renders the node as HTML.
func (n *Node) String() string {
	return HTML(n)
}
