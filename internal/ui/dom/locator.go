package dom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// ErrNoMatch is returned by Query when nothing matches the selector.
var ErrNoMatch = errors.New("dom: no element matches selector")

// QueryAll returns every element under root (root included) matching the CSS
// selector, in document order. An empty selector matches root alone.
func QueryAll(root *Node, selector string) ([]*Node, error) {
	if root == nil {
		return nil, nil
	}
	if strings.TrimSpace(selector) == "" {
		return []*Node{root}, nil
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("compile selector %q: %w", selector, err)
	}

	index := make(map[*html.Node]*Node)
	tree := snapshot(root, index)

	var out []*Node
	for _, match := range sel.MatchAll(tree) {
		if n, ok := index[match]; ok {
			out = append(out, n)
		}
	}
	return out, nil
}

// Query returns the first element matching selector.
func Query(root *Node, selector string) (*Node, error) {
	matches, err := QueryAll(root, selector)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%q: %w", selector, ErrNoMatch)
	}
	return matches[0], nil
}
