package components

import (
	"fmt"

	"github.com/alexisbeaulieu97/uikit/internal/ui/dom"
)

// ElementKind is the category of host element a button renders as.
type ElementKind int

const (
	ElementButton ElementKind = iota
	ElementLink
	ElementCustom
)

func (k ElementKind) String() string {
	switch k {
	case ElementButton:
		return "button"
	case ElementLink:
		return "link"
	case ElementCustom:
		return "custom"
	}
	return fmt.Sprintf("ElementKind(%d)", int(k))
}

// HostElement is the resolved host element: its kind plus the tag used to
// render it. Tag is "button" for ElementButton and "a" for ElementLink.
type HostElement struct {
	Kind ElementKind
	Tag  string
}

// ResolveElementKind picks the host element for cfg. An explicit As wins:
// "a" is a link, "button" a native button and anything else a custom tag.
// Without As, Href or To make a link and everything else a native button.
func ResolveElementKind(cfg ButtonConfig) HostElement {
	switch cfg.As {
	case "":
		if cfg.Href != "" || cfg.To != "" {
			return HostElement{Kind: ElementLink, Tag: "a"}
		}
		return HostElement{Kind: ElementButton, Tag: "button"}
	case "a":
		return HostElement{Kind: ElementLink, Tag: "a"}
	case "button":
		return HostElement{Kind: ElementButton, Tag: "button"}
	}
	return HostElement{Kind: ElementCustom, Tag: cfg.As}
}

// inactive reports whether activation is suppressed.
func (cfg ButtonConfig) inactive() bool {
	return cfg.Disabled || cfg.ReadOnly
}

// ComputeAccessibilityAttributes returns the semantic attributes of the host
// element. Read-only buttons get the same disabled attribute as disabled
// ones, which takes them out of the tab order.
func ComputeAccessibilityAttributes(host HostElement, cfg ButtonConfig) dom.Attributes {
	var attrs dom.Attributes

	switch host.Kind {
	case ElementButton:
		typ := cfg.Type
		if typ == "" {
			typ = ButtonTypeButton
		}
		attrs.Set("type", typ)
	case ElementLink:
		if cfg.Href != "" {
			attrs.Set("href", cfg.Href)
		}
		if cfg.To != "" {
			attrs.Set("to", cfg.To)
		}
	case ElementCustom:
		attrs.Set("role", "button")
		attrs.Set("tabindex", "0")
	}

	if cfg.inactive() {
		attrs.Set("disabled", "")
		attrs.Set("aria-disabled", "true")
	}
	return attrs
}

// TriggerSource distinguishes pointer from keyboard activation.
type TriggerSource int

const (
	TriggerPointer TriggerSource = iota
	TriggerKeyboard
)

// Trigger is a user action that may activate a button.
type Trigger struct {
	Source TriggerSource
	Key    string
}

// PointerTrigger is a mouse or touch click.
func PointerTrigger() Trigger {
	return Trigger{Source: TriggerPointer}
}

// KeyTrigger is a key press.
func KeyTrigger(key string) Trigger {
	return Trigger{Source: TriggerKeyboard, Key: dom.NormalizeKey(key)}
}

// ShouldActivate reports whether trigger may fire OnClick. Only the disabled
// and read-only states block activation; which keys count as activation is
// decided by the host and HandlesKey before this gate is consulted.
func ShouldActivate(cfg ButtonConfig, trigger Trigger) bool {
	return !cfg.inactive()
}

// HandlesKey reports whether the button's own keydown handler activates on
// key, as opposed to leaving it to the host. Native buttons rely on the host
// for Enter and Space, and links rely on it for Enter. Space on a link only
// activates when there is an href to follow. Custom elements handle both.
func HandlesKey(host HostElement, cfg ButtonConfig, key string) bool {
	key = dom.NormalizeKey(key)
	switch host.Kind {
	case ElementLink:
		return key == dom.KeySpace && cfg.Href != ""
	case ElementCustom:
		return key == dom.KeyEnter || key == dom.KeySpace
	}
	return false
}

// ResolveCursor returns not-allowed for disabled buttons, the allow-listed
// cursor prop when one is supplied, and pointer otherwise.
func ResolveCursor(cfg ButtonConfig) Cursor {
	if cfg.Disabled {
		return CursorNotAllowed
	}
	if raw, ok := cfg.Props["cursor"]; ok && validPassThrough("cursor", raw) {
		return Cursor(raw.(string))
	}
	return CursorPointer
}
