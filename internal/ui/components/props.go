package components

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// AllowedButtonProps is the fixed set of layout props a Button forwards to
// its View.
var AllowedButtonProps = []string{"margin", "cursor", "as"}

// Cursor is a CSS cursor keyword.
type Cursor string

const (
	CursorPointer    Cursor = "pointer"
	CursorNotAllowed Cursor = "not-allowed"
	CursorMove       Cursor = "move"
)

const cursorKeywords = "auto default none context-menu help pointer progress wait cell crosshair text vertical-text alias copy move no-drop not-allowed grab grabbing all-scroll zoom-in zoom-out"

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	tagPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)

	// Void elements cannot hold the button's content and raw-text elements
	// would print it as literal markup.
	childlessTags = map[string]struct{}{
		"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {},
		"img": {}, "input": {}, "keygen": {}, "link": {}, "meta": {},
		"param": {}, "source": {}, "track": {}, "wbr": {},
		"iframe": {}, "noembed": {}, "noframes": {}, "noscript": {},
		"plaintext": {}, "script": {}, "style": {}, "textarea": {},
		"title": {}, "xmp": {},
	}
)

// validHostTag reports whether tag can host button content.
func validHostTag(tag string) bool {
	if !tagPattern.MatchString(tag) {
		return false
	}
	_, childless := childlessTags[strings.ToLower(tag)]
	return !childless
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("margin", func(fl validator.FieldLevel) bool {
			_, err := ParseMargin(DefaultTheme(), fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("html_tag", func(fl validator.FieldLevel) bool {
			return validHostTag(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// ValidateProps splits props into the allow-listed ones and the sorted names
// of everything else. The input map is not modified.
func ValidateProps(props map[string]any, allowList []string) (map[string]any, []string) {
	allowed := make(map[string]struct{}, len(allowList))
	for _, name := range allowList {
		allowed[name] = struct{}{}
	}

	kept := make(map[string]any, len(props))
	var rejected []string
	for name, value := range props {
		if _, ok := allowed[name]; ok {
			kept[name] = value
			continue
		}
		rejected = append(rejected, name)
	}
	sort.Strings(rejected)
	return kept, rejected
}

// validPassThrough checks the value of an allow-listed prop.
func validPassThrough(name string, value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	v := validatorInstance()
	switch name {
	case "cursor":
		return v.Var(s, "required,oneof="+cursorKeywords) == nil
	case "margin":
		return v.Var(s, "required,margin") == nil
	case "as":
		return v.Var(s, "required,html_tag") == nil
	}
	return true
}
