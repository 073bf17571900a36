package dom

import "strings"

// Attr is a single element attribute.
type Attr struct {
	Key string
	Val string
}

// Attributes is an ordered attribute list. Keys are stored lower-case and
// appear at most once.
type Attributes []Attr

// Get returns the value stored under key.
func (a Attributes) Get(key string) (string, bool) {
	key = strings.ToLower(key)
	for _, attr := range a {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// Has reports whether key is present.
func (a Attributes) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Set replaces the value under key, appending it when missing.
func (a *Attributes) Set(key, val string) {
	key = strings.ToLower(key)
	for i := range *a {
		if (*a)[i].Key == key {
			(*a)[i].Val = val
			return
		}
	}
	*a = append(*a, Attr{Key: key, Val: val})
}

// Delete removes key if present.
func (a *Attributes) Delete(key string) {
	key = strings.ToLower(key)
	out := (*a)[:0]
	for _, attr := range *a {
		if attr.Key != key {
			out = append(out, attr)
		}
	}
	*a = out
}

// Merge sets every attribute of other onto a, in order.
func (a *Attributes) Merge(other Attributes) {
	for _, attr := range other {
		a.Set(attr.Key, attr.Val)
	}
}

// Keys lists attribute names in insertion order.
func (a Attributes) Keys() []string {
	keys := make([]string, len(a))
	for i, attr := range a {
		keys[i] = attr.Key
	}
	return keys
}
