package components

import (
	"fmt"
	"sort"
	"testing"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/alexisbeaulieu97/uikit/internal/ui/dom"
)

var (
	customTags  = []string{"span", "div", "li", "my-button", "x-action"}
	foreignKeys = []string{"padding", "display", "width", "height", "background", "shadow", "borderRadius", "data-id", "onMouseOver", "style", "class"}
)

func drawConfig(t *rapid.T) ButtonConfig {
	return ButtonConfig{
		As:         rapid.SampledFrom(append([]string{"", "a", "button"}, customTags...)).Draw(t, "as"),
		Href:       rapid.SampledFrom([]string{"", "example.html", "https://example.com"}).Draw(t, "href"),
		To:         rapid.SampledFrom([]string{"", "/home"}).Draw(t, "to"),
		Disabled:   rapid.Bool().Draw(t, "disabled"),
		ReadOnly:   rapid.Bool().Draw(t, "readOnly"),
		FluidWidth: rapid.Bool().Draw(t, "fluid"),
		Children:   []any{rapid.StringMatching(`[A-Za-z ]{1,12}`).Draw(t, "label")},
	}
}

func TestProperty_ButtonBehavior(t *testing.T) {
	t.Parallel()

	t.Run("LinkTargetsResolveToLink", func(t *testing.T) {
		t.Parallel()
		rapid.Check(t, func(t *rapid.T) {
			g := NewWithT(t)
			cfg := drawConfig(t)
			cfg.As = ""
			if cfg.Href == "" && cfg.To == "" {
				cfg.Href = "example.html"
			}

			g.Expect(ResolveElementKind(cfg).Kind).To(Equal(ElementLink))
		})
	})

	t.Run("CustomTagsExposeButtonRole", func(t *testing.T) {
		t.Parallel()
		rapid.Check(t, func(t *rapid.T) {
			g := NewWithT(t)
			cfg := drawConfig(t)
			cfg.As = rapid.SampledFrom(customTags).Draw(t, "customTag")

			host := ResolveElementKind(cfg)
			g.Expect(host.Kind).To(Equal(ElementCustom))
			g.Expect(host.Tag).To(Equal(cfg.As))

			attrs := ComputeAccessibilityAttributes(host, cfg)
			role, _ := attrs.Get("role")
			tabindex, _ := attrs.Get("tabindex")
			g.Expect(role).To(Equal("button"))
			g.Expect(tabindex).To(Equal("0"))
		})
	})

	t.Run("InactiveButtonsNeverActivate", func(t *testing.T) {
		t.Parallel()
		rapid.Check(t, func(t *rapid.T) {
			g := NewWithT(t)
			cfg := drawConfig(t)
			if rapid.Bool().Draw(t, "useReadOnly") {
				cfg.ReadOnly = true
			} else {
				cfg.Disabled = true
			}
			key := rapid.SampledFrom([]string{dom.KeyEnter, dom.KeySpace, "a", "Escape"}).Draw(t, "key")

			g.Expect(ShouldActivate(cfg, PointerTrigger())).To(BeFalse())
			g.Expect(ShouldActivate(cfg, KeyTrigger(key))).To(BeFalse())

			calls := 0
			cfg.OnClick = func(*dom.Event) { calls++ }
			node := NewButton(cfg).Render(DefaultContext())
			doc := dom.NewDocument()
			doc.Mount(node)

			g.Expect(doc.TabOrder()).To(BeEmpty())
			doc.Click(node)
			doc.KeyDown(node, key)
			g.Expect(calls).To(BeZero())
		})
	})

	t.Run("EnabledButtonsPassTheActivationGate", func(t *testing.T) {
		t.Parallel()
		rapid.Check(t, func(t *rapid.T) {
			g := NewWithT(t)
			cfg := drawConfig(t)
			cfg.Disabled = false
			cfg.ReadOnly = false
			key := rapid.SampledFrom([]string{dom.KeyEnter, dom.KeySpace, "a", "Escape"}).Draw(t, "key")

			g.Expect(ShouldActivate(cfg, PointerTrigger())).To(BeTrue())
			g.Expect(ShouldActivate(cfg, KeyTrigger(key))).To(BeTrue())
		})
	})

	t.Run("ActivationFiresAtMostOncePerAction", func(t *testing.T) {
		t.Parallel()
		rapid.Check(t, func(t *rapid.T) {
			g := NewWithT(t)
			cfg := drawConfig(t)
			key := rapid.SampledFrom([]string{dom.KeyEnter, dom.KeySpace, "Tab"}).Draw(t, "key")

			calls := 0
			cfg.OnClick = func(*dom.Event) { calls++ }
			node := NewButton(cfg).Render(DefaultContext())
			doc := dom.NewDocument()
			doc.Mount(node)

			doc.KeyDown(node, key)
			g.Expect(calls).To(BeNumerically("<=", 1))

			calls = 0
			doc.Click(node)
			g.Expect(calls).To(BeNumerically("<=", 1))
		})
	})

	t.Run("ForeignPropsReportedOnceAndDropped", func(t *testing.T) {
		t.Parallel()
		rapid.Check(t, func(t *rapid.T) {
			g := NewWithT(t)
			keys := rapid.SliceOfDistinct(rapid.SampledFrom(foreignKeys), rapid.ID[string]).Draw(t, "keys")
			props := make(map[string]any, len(keys)+1)
			for _, k := range keys {
				props[k] = "value"
			}
			props["margin"] = "small"

			reporter := &RecordingReporter{}
			node := NewButton(ButtonConfig{Children: []any{"Label"}, Props: props}).
				Render(DefaultContext().WithReporter(reporter))

			g.Expect(reporter.Messages()).To(HaveLen(len(keys)))
			for _, k := range keys {
				g.Expect(reporter.Messages()).To(ContainElement(fmt.Sprintf("[Button] prop '%s' is not allowed.", k)))
				if k != "class" && k != "style" {
					g.Expect(node.HasAttr(k)).To(BeFalse())
				}
			}
			g.Expect(node.HasAttr("data-id")).To(BeFalse())
			g.Expect(node.Style("margin")).To(Equal("0.75rem"))
		})
	})

	t.Run("ValidatePropsPartitionsInput", func(t *testing.T) {
		t.Parallel()
		rapid.Check(t, func(t *rapid.T) {
			g := NewWithT(t)
			props := rapid.MapOf(rapid.StringMatching(`[a-z]{1,8}`), rapid.Just[any]("v")).Draw(t, "props")

			kept, rejected := ValidateProps(props, AllowedButtonProps)

			g.Expect(len(kept) + len(rejected)).To(Equal(len(props)))
			for name := range kept {
				g.Expect(AllowedButtonProps).To(ContainElement(name))
			}
			for _, name := range rejected {
				g.Expect(AllowedButtonProps).NotTo(ContainElement(name))
			}
			g.Expect(sort.StringsAreSorted(rejected)).To(BeTrue())
		})
	})

	t.Run("CursorFollowsDisabled", func(t *testing.T) {
		t.Parallel()
		rapid.Check(t, func(t *rapid.T) {
			g := NewWithT(t)
			cfg := drawConfig(t)
			if rapid.Bool().Draw(t, "withCursor") {
				cfg.Props = map[string]any{"cursor": "move"}
			}

			cursor := ResolveCursor(cfg)
			switch {
			case cfg.Disabled:
				g.Expect(cursor).To(Equal(CursorNotAllowed))
			case cfg.Props != nil:
				g.Expect(cursor).To(Equal(CursorMove))
			default:
				g.Expect(cursor).To(Equal(CursorPointer))
			}
		})
	})
}
