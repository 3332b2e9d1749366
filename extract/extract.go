package extract

import (
	"strings"

	"github.com/dhamidi/tagwalk/markup"
)

// Link is one anchor element: its target and the text immediately
// inside it.
type Link struct {
	Href     string
	Text     string
	Position markup.Position
}

// Heading is one h1-h6 element.
type Heading struct {
	Level    int
	Text     string
	Position markup.Position
}

// Text scans the whole remaining stream and returns the document text:
// every content run concatenated, raw-text bodies (script and style)
// skipped, whitespace normalized to single spaces.
func Text(nav *markup.Navigator) (string, error) {
	var parts []string
	for !nav.Done() {
		tag, err := nav.Descend()
		if err != nil {
			return "", err
		}
		if c := nav.Content(); c != "" {
			parts = append(parts, c)
		}
		if tag != nil && isRawText(tag) && !tag.Closed() {
			// drain the body without recording its text
			if err := nav.Close(tag); err != nil {
				return "", err
			}
		}
	}
	return normalizeSpace(strings.Join(parts, " ")), nil
}

// Title returns the text of the first title element, or the empty
// string when the stream has none.
func Title(nav *markup.Navigator) (string, error) {
	tag, err := nav.Find(ByName("title"))
	if err != nil || tag == nil {
		return "", err
	}
	text, err := leadingText(nav, tag)
	if err != nil {
		return "", err
	}
	return normalizeSpace(text), nil
}

// Links returns every anchor in the remaining stream, in document
// order, with its href (empty if absent) and immediate text.
func Links(nav *markup.Navigator) ([]Link, error) {
	var links []Link
	err := Each(nav, ByName("a"), func(tag *markup.Tag) error {
		href, _ := tag.Attr("href")
		text, err := leadingText(nav, tag)
		if err != nil {
			return err
		}
		links = append(links, Link{
			Href:     href,
			Text:     normalizeSpace(text),
			Position: tag.Position(),
		})
		return nil
	})
	return links, err
}

// Outline returns every heading element (h1 through h6) in the
// remaining stream, in document order.
func Outline(nav *markup.Navigator) ([]Heading, error) {
	var headings []Heading
	err := Each(nav, isHeading, func(tag *markup.Tag) error {
		text, err := leadingText(nav, tag)
		if err != nil {
			return err
		}
		headings = append(headings, Heading{
			Level:    int(tag.Name()[1] - '0'),
			Text:     normalizeSpace(text),
			Position: tag.Position(),
		})
		return nil
	})
	return headings, err
}

// Each scans the whole remaining stream and calls fn for every tag
// matching pred, regardless of nesting. Unlike Navigator.Find it never
// stops at a subtree boundary; fn may advance the scan itself, for
// example to read the match's text.
func Each(nav *markup.Navigator, pred Predicate, fn func(*markup.Tag) error) error {
	for !nav.Done() {
		tag, err := nav.Descend()
		if err != nil {
			return err
		}
		if tag != nil && pred(tag) {
			if err := fn(tag); err != nil {
				return err
			}
		}
	}
	return nil
}

// leadingText reads the text immediately inside a just-opened tag, then
// skips the rest of its subtree.
func leadingText(nav *markup.Navigator, tag *markup.Tag) (string, error) {
	if tag == nil || tag.Closed() {
		return "", nil
	}
	if _, err := nav.Descend(); err != nil {
		return "", err
	}
	text := nav.Content()
	if err := nav.Close(tag); err != nil {
		return "", err
	}
	return text, nil
}

func isHeading(t *markup.Tag) bool {
	name := t.Name()
	return len(name) == 2 &&
		(name[0] == 'h' || name[0] == 'H') &&
		name[1] >= '1' && name[1] <= '6'
}

func isRawText(t *markup.Tag) bool {
	return strings.EqualFold(t.Name(), "script") || strings.EqualFold(t.Name(), "style")
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
