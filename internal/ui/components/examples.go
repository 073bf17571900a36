package components

// ButtonExample is a named button configuration used for previews, audits
// and rendering from the command line.
type ButtonExample struct {
	Name   string
	Config ButtonConfig
}

var buttonVariants = []ButtonVariant{
	ButtonVariantDefault,
	ButtonVariantPrimary,
	ButtonVariantSuccess,
	ButtonVariantDanger,
	ButtonVariantLight,
	ButtonVariantGhost,
	ButtonVariantLink,
}

var buttonSizes = []ButtonSize{ButtonSizeSmall, ButtonSizeMedium, ButtonSizeLarge}

// ButtonExamples returns the example catalog in a stable order.
func ButtonExamples() []ButtonExample {
	examples := make([]ButtonExample, 0, len(buttonVariants)+len(buttonSizes)+10)

	for _, variant := range buttonVariants {
		examples = append(examples, ButtonExample{
			Name:   "variant-" + string(variant),
			Config: ButtonConfig{Variant: variant, Children: []any{"Button"}},
		})
	}
	for _, size := range buttonSizes {
		examples = append(examples, ButtonExample{
			Name:   "size-" + string(size),
			Config: ButtonConfig{Size: size, Children: []any{"Button"}},
		})
	}

	examples = append(examples,
		ButtonExample{
			Name:   "icon-with-text",
			Config: ButtonConfig{Icon: IconAddSolid, Children: []any{"Add item"}},
		},
		ButtonExample{
			Name: "icon-only",
			Config: ButtonConfig{
				Icon:     IconTrashSolid,
				Variant:  ButtonVariantDanger,
				Children: []any{ScreenReaderContent("Delete")},
			},
		},
		ButtonExample{
			Name:   "link",
			Config: ButtonConfig{Href: "example.html", Icon: IconArrowOpenEndSolid, Children: []any{"Continue"}},
		},
		ButtonExample{
			Name:   "router-link",
			Config: ButtonConfig{To: "/settings", Variant: ButtonVariantLink, Children: []any{"Settings"}},
		},
		ButtonExample{
			Name:   "custom-element",
			Config: ButtonConfig{As: "span", Children: []any{"Custom"}},
		},
		ButtonExample{
			Name:   "submit",
			Config: ButtonConfig{Type: ButtonTypeSubmit, Variant: ButtonVariantPrimary, Children: []any{"Save"}},
		},
		ButtonExample{
			Name:   "fluid-width",
			Config: ButtonConfig{FluidWidth: true, Variant: ButtonVariantPrimary, Children: []any{"Full width"}},
		},
		ButtonExample{
			Name:   "with-margin",
			Config: ButtonConfig{Children: []any{"Spaced"}, Props: map[string]any{"margin": "small"}},
		},
		ButtonExample{
			Name:   "disabled",
			Config: ButtonConfig{Disabled: true, Children: []any{"Disabled"}},
		},
		ButtonExample{
			Name:   "read-only",
			Config: ButtonConfig{ReadOnly: true, Children: []any{"Read only"}},
		},
	)
	return examples
}

// LookupButtonExample returns the example with the given name.
func LookupButtonExample(name string) (ButtonExample, bool) {
	for _, ex := range ButtonExamples() {
		if ex.Name == name {
			return ex, true
		}
	}
	return ButtonExample{}, false
}
