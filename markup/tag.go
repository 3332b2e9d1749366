package markup

import "strings"

// Attribute is one name="value" pair from an opening tag, in the order it
// appeared. The class attribute never shows up here; it feeds the tag's
// class set instead.
type Attribute struct {
	Name  string
	Value string
}

// Tag is one opened element. Everything about it is fixed at scan time
// except the closed flag, which the owning Navigator flips exactly once.
// Callers must treat a Tag as read-only.
type Tag struct {
	name        string
	classes     []string
	attrs       []Attribute
	parent      *Tag
	depth       int
	pos         Position
	selfClosing bool
	closed      bool
}

// Name returns the tag name as scanned. Matching against names elsewhere
// in this package is case-insensitive.
func (t *Tag) Name() string { return t.name }

// Parent returns the tag that was innermost open when this one appeared,
// or nil at top level. The link is for lookup only; the Navigator owns
// the live nesting chain.
func (t *Tag) Parent() *Tag { return t.parent }

// Depth is 1 for a top-level tag, otherwise the parent's depth plus one.
func (t *Tag) Depth() int { return t.depth }

// Position locates the tag's opening '<' in the input.
func (t *Tag) Position() Position { return t.pos }

// SelfClosing reports whether the tag can never contain children, either
// from an explicit '/' or because its name is in the void set.
func (t *Tag) SelfClosing() bool { return t.selfClosing }

// Closed reports whether the tag's close event has been processed.
// Self-closing tags are born closed.
func (t *Tag) Closed() bool { return t.closed }

// Classes returns a copy of the tag's class tokens in the order they
// appeared in the class attribute.
func (t *Tag) Classes() []string {
	if len(t.classes) == 0 {
		return nil
	}
	out := make([]string, len(t.classes))
	copy(out, t.classes)
	return out
}

// HasClass reports whether the class attribute contained the given token.
func (t *Tag) HasClass(name string) bool {
	for _, c := range t.classes {
		if c == name {
			return true
		}
	}
	return false
}

// Attributes returns a copy of the tag's attributes in insertion order.
func (t *Tag) Attributes() []Attribute {
	if len(t.attrs) == 0 {
		return nil
	}
	out := make([]Attribute, len(t.attrs))
	copy(out, t.attrs)
	return out
}

// Attr looks up an attribute value by name, case-insensitively.
func (t *Tag) Attr(name string) (string, bool) {
	for _, a := range t.attrs {
		if strings.EqualFold(a.Name, name) {
			return a.Value, true
		}
	}
	return "", false
}

func (t *Tag) String() string {
	if t.selfClosing {
		return "<" + t.name + "/>"
	}
	return "<" + t.name + ">"
}

// addClass records one class token, discarding duplicates.
func (t *Tag) addClass(name string) {
	for _, c := range t.classes {
		if c == name {
			return
		}
	}
	t.classes = append(t.classes, name)
}

// setAttr stores an attribute. A repeated name keeps its original position
// and takes the newer value.
func (t *Tag) setAttr(name, value string) {
	for i, a := range t.attrs {
		if strings.EqualFold(a.Name, name) {
			t.attrs[i].Value = value
			return
		}
	}
	t.attrs = append(t.attrs, Attribute{Name: name, Value: value})
}

// voidTags are the elements that never contain children and close
// themselves, per the HTML living standard.
var voidTags = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// rawTextTags are the elements whose bodies are never tokenized; literal
// '<' and '>' inside them stay text until the matching close tag.
var rawTextTags = map[string]bool{
	"script": true,
	"style":  true,
}
