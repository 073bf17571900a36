// Package a11y checks rendered element trees for accessibility problems.
package a11y

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/uikit/internal/ui/dom"
)

// Rule names reported in violations.
const (
	RuleControlName         = "control-name"
	RuleRoleButtonFocusable = "role-button-focusable"
	RuleLinkTarget          = "link-target"
	RuleDecorativeSVG       = "decorative-svg"
	RuleDisabledTabbable    = "disabled-tabbable"
)

// Violation is a single failed check.
type Violation struct {
	Rule    string
	Node    *dom.Node
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: <%s> %s", v.Rule, v.Node.Tag, v.Message)
}

type rule struct {
	name  string
	check func(n *dom.Node) (string, bool)
}

var rules = []rule{
	{name: RuleControlName, check: checkControlName},
	{name: RuleRoleButtonFocusable, check: checkRoleButtonFocusable},
	{name: RuleLinkTarget, check: checkLinkTarget},
	{name: RuleDecorativeSVG, check: checkDecorativeSVG},
	{name: RuleDisabledTabbable, check: checkDisabledTabbable},
}

// Audit runs every rule over root and its descendants, returning violations
// in document order.
func Audit(root *dom.Node) []Violation {
	if root == nil {
		return nil
	}
	var out []Violation
	root.Walk(func(n *dom.Node) bool {
		if n.IsText() {
			return false
		}
		for _, r := range rules {
			if msg, failed := r.check(n); failed {
				out = append(out, Violation{Rule: r.name, Node: n, Message: msg})
			}
		}
		return true
	})
	return out
}

func isControl(n *dom.Node) bool {
	if n.Tag == "button" || n.Tag == "a" {
		return true
	}
	role, _ := n.Attr("role")
	return role == "button"
}

// AccessibleName returns aria-label when present, otherwise the trimmed text
// content of the node.
func AccessibleName(n *dom.Node) string {
	if label, ok := n.Attr("aria-label"); ok && strings.TrimSpace(label) != "" {
		return strings.TrimSpace(label)
	}
	return strings.TrimSpace(n.TextContent())
}

func checkControlName(n *dom.Node) (string, bool) {
	if !isControl(n) || AccessibleName(n) != "" {
		return "", false
	}
	return "control has no accessible name", true
}

func checkRoleButtonFocusable(n *dom.Node) (string, bool) {
	role, _ := n.Attr("role")
	if role != "button" || n.Tag == "button" || n.HasAttr("tabindex") {
		return "", false
	}
	return `role="button" element is not focusable`, true
}

func checkLinkTarget(n *dom.Node) (string, bool) {
	if n.Tag != "a" || n.HasAttr("role") || n.HasAttr("href") || n.HasAttr("to") {
		return "", false
	}
	return "link has no href or to target", true
}

func checkDecorativeSVG(n *dom.Node) (string, bool) {
	if n.Tag != "svg" {
		return "", false
	}
	if hidden, _ := n.Attr("aria-hidden"); hidden == "true" {
		return "", false
	}
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		if isControl(cur) && AccessibleName(cur) != "" {
			return "icon inside a named control must be aria-hidden", true
		}
	}
	return "", false
}

func checkDisabledTabbable(n *dom.Node) (string, bool) {
	if !n.HasAttr("disabled") {
		return "", false
	}
	raw, ok := n.Attr("tabindex")
	if !ok {
		return "", false
	}
	if idx, err := strconv.Atoi(raw); err == nil && idx > 0 {
		return fmt.Sprintf("disabled element has tabindex %d", idx), true
	}
	return "", false
}
