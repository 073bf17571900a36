package dom

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

var (
	// ErrNotFocusable is returned when focusing a node the host would skip.
	ErrNotFocusable = errors.New("dom: node is not focusable")
	// ErrDetached is returned for nodes outside the mounted tree.
	ErrDetached = errors.New("dom: node is not mounted")
)

// Document hosts one mounted tree and tracks focus. A node carrying the
// disabled attribute is never focusable, whatever its tag.
type Document struct {
	root        *Node
	active      *Node
	navigations []string
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Mount replaces the current tree with root and runs every mount hook in the
// new tree once, parents before children.
func (d *Document) Mount(root *Node) {
	d.Unmount()
	d.root = root
	if root == nil {
		return
	}
	root.Walk(func(n *Node) bool {
		for _, hook := range n.mountHooks {
			hook(n)
		}
		return true
	})
}

// Unmount detaches the current tree and clears focus.
func (d *Document) Unmount() {
	d.root = nil
	d.active = nil
}

// Root returns the mounted tree.
func (d *Document) Root() *Node {
	return d.root
}

// ActiveElement returns the focused node, or nil.
func (d *Document) ActiveElement() *Node {
	return d.active
}

// Navigations lists link targets followed through default activation.
func (d *Document) Navigations() []string {
	return append([]string(nil), d.navigations...)
}

// IsFocusable reports whether n can receive focus programmatically.
func IsFocusable(n *Node) bool {
	if n == nil || n.IsText() || n.HasAttr("disabled") {
		return false
	}
	if _, ok := tabIndex(n); ok {
		return true
	}
	switch n.Tag {
	case "button", "input", "select", "textarea":
		return true
	case "a":
		return n.HasAttr("href")
	}
	return false
}

// IsTabbable reports whether n takes part in sequential keyboard navigation.
func IsTabbable(n *Node) bool {
	if !IsFocusable(n) {
		return false
	}
	if idx, ok := tabIndex(n); ok {
		return idx >= 0
	}
	return true
}

func tabIndex(n *Node) (int, bool) {
	raw, ok := n.Attr("tabindex")
	if !ok {
		return 0, false
	}
	idx, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return idx, true
}

func isNativeControl(n *Node) bool {
	switch n.Tag {
	case "button", "input", "select", "textarea":
		return true
	}
	return false
}

// TabOrder lists tabbable nodes: positive tabindex values ascending, then
// the rest in document order.
func (d *Document) TabOrder() []*Node {
	if d.root == nil {
		return nil
	}
	type entry struct {
		node  *Node
		index int
		pos   int
	}
	var entries []entry
	d.root.Walk(func(n *Node) bool {
		if IsTabbable(n) {
			idx, _ := tabIndex(n)
			entries = append(entries, entry{node: n, index: idx, pos: len(entries)})
		}
		return true
	})
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if (a.index > 0) != (b.index > 0) {
			return a.index > 0
		}
		if a.index > 0 && a.index != b.index {
			return a.index < b.index
		}
		return a.pos < b.pos
	})
	out := make([]*Node, len(entries))
	for i, e := range entries {
		out[i] = e.node
	}
	return out
}

// Focus moves focus to n, firing blur on the previous element and focus on n.
func (d *Document) Focus(n *Node) error {
	if !d.attached(n) {
		return ErrDetached
	}
	if !IsFocusable(n) {
		return fmt.Errorf("focus <%s>: %w", n.Tag, ErrNotFocusable)
	}
	if d.active == n {
		return nil
	}
	d.Blur()
	d.active = n
	Dispatch(&Event{Type: EventFocus, Target: n})
	return nil
}

// Blur removes focus from the active element.
func (d *Document) Blur() {
	prev := d.active
	if prev == nil {
		return
	}
	d.active = nil
	Dispatch(&Event{Type: EventBlur, Target: prev})
}

// Tab moves focus to the next tabbable node, wrapping around.
func (d *Document) Tab() *Node {
	return d.step(1)
}

// ShiftTab moves focus to the previous tabbable node, wrapping around.
func (d *Document) ShiftTab() *Node {
	return d.step(-1)
}

func (d *Document) step(dir int) *Node {
	order := d.TabOrder()
	if len(order) == 0 {
		d.Blur()
		return nil
	}
	next := 0
	if dir < 0 {
		next = len(order) - 1
	}
	for i, n := range order {
		if n == d.active {
			next = (i + dir + len(order)) % len(order)
			break
		}
	}
	_ = d.Focus(order[next])
	return d.active
}

// Click dispatches a click on n. Detached nodes and disabled native controls
// receive no event; the return value reports whether it was dispatched.
func (d *Document) Click(n *Node) bool {
	if !d.attached(n) || (isNativeControl(n) && n.HasAttr("disabled")) {
		return false
	}
	ev := Dispatch(&Event{Type: EventClick, Target: n})
	if !ev.DefaultPrevented() {
		d.followLink(n)
	}
	return true
}

// KeyDown dispatches a keydown on n and then applies the host's default
// activation: Enter or Space on a native button and Enter on a link with an
// href synthesize a click. Keys pressed on detached nodes are dropped.
func (d *Document) KeyDown(n *Node, key string) {
	if !d.attached(n) {
		return
	}
	key = NormalizeKey(key)
	ev := Dispatch(&Event{Type: EventKeyDown, Key: key, Target: n})
	if ev.DefaultPrevented() {
		return
	}
	switch {
	case n.Tag == "button" && (key == KeyEnter || key == KeySpace):
		d.Click(n)
	case n.Tag == "a" && n.HasAttr("href") && key == KeyEnter:
		d.Click(n)
	}
}

func (d *Document) attached(n *Node) bool {
	return n != nil && d.root != nil && d.root.Contains(n)
}

func (d *Document) followLink(n *Node) {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Tag != "a" {
			continue
		}
		if href, ok := cur.Attr("href"); ok {
			d.navigations = append(d.navigations, href)
		}
		return
	}
}
