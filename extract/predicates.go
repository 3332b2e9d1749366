// Package extract provides whole-stream extraction operations on top of
// the markup scanner: document text, titles, links, and heading
// outlines. It contains no parsing logic of its own.
package extract

import (
	"strings"

	"github.com/dhamidi/tagwalk/markup"
)

// Predicate selects tags during a scan.
type Predicate func(*markup.Tag) bool

// ByName matches tags with any of the given names, case-insensitively.
func ByName(names ...string) Predicate {
	return func(t *markup.Tag) bool {
		for _, name := range names {
			if strings.EqualFold(t.Name(), name) {
				return true
			}
		}
		return false
	}
}

// HasClass matches tags whose class attribute contains the given token.
func HasClass(class string) Predicate {
	return func(t *markup.Tag) bool { return t.HasClass(class) }
}

// WithAttr matches tags carrying the named attribute. An empty value
// matches any value; otherwise the value must match exactly.
func WithAttr(name, value string) Predicate {
	return func(t *markup.Tag) bool {
		got, ok := t.Attr(name)
		if !ok {
			return false
		}
		return value == "" || got == value
	}
}

// And matches tags satisfying every given predicate.
func And(preds ...Predicate) Predicate {
	return func(t *markup.Tag) bool {
		for _, pred := range preds {
			if !pred(t) {
				return false
			}
		}
		return true
	}
}
