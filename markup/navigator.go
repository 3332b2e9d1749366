package markup

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Navigator scans a character source into a sequence of tag events. Create
// one with New, NewFromReader, or NewFromString, then drive it with
// Descend, Find, Close, and InlineText.
//
// A Navigator owns its scan state alone: calls must come from a single
// goroutine and must not overlap.
type Navigator struct {
	src  CharSource
	file string

	offset int
	line   int
	column int

	pend    rune
	hasPend bool
	eof     bool
	err     error

	top     *Tag
	done    bool
	content []rune
	scratch []rune

	voids map[string]bool
	raw   map[string]bool
}

// Option adjusts a Navigator at construction time.
type Option func(*Navigator)

// WithFilename sets the file name recorded in tag positions.
func WithFilename(name string) Option {
	return func(n *Navigator) { n.file = name }
}

// WithVoidTags adds names to the set of void elements.
func WithVoidTags(names ...string) Option {
	return func(n *Navigator) {
		for _, name := range names {
			n.voids[strings.ToLower(name)] = true
		}
	}
}

// WithRawTextTags adds names to the set of raw-text elements, whose bodies
// are scanned as plain text up to their matching close tag.
func WithRawTextTags(names ...string) Option {
	return func(n *Navigator) {
		for _, name := range names {
			n.raw[strings.ToLower(name)] = true
		}
	}
}

// New returns a Navigator reading from src.
func New(src CharSource, opts ...Option) *Navigator {
	n := &Navigator{
		src:    src,
		line:   1,
		column: 1,
		voids:  make(map[string]bool, len(voidTags)),
		raw:    make(map[string]bool, len(rawTextTags)),
	}
	for name := range voidTags {
		n.voids[name] = true
	}
	for name := range rawTextTags {
		n.raw[name] = true
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NewFromReader returns a Navigator scanning r.
func NewFromReader(r io.Reader, opts ...Option) *Navigator {
	return New(NewReaderSource(r), opts...)
}

// NewFromString returns a Navigator scanning s.
func NewFromString(s string, opts ...Option) *Navigator {
	return New(NewStringSource(s), opts...)
}

// Top returns the innermost open tag, or nil before the first tag and
// after the outermost tag closes.
func (n *Navigator) Top() *Tag { return n.top }

// Done reports whether the input is exhausted. Tags still open at that
// point stay open; there is no implicit close at end of input.
func (n *Navigator) Done() bool { return n.done }

// Content returns the text accumulated since the previous tag boundary.
// Every Descend step updates it, including steps that produce no tag.
func (n *Navigator) Content() string { return string(n.content) }

// Descend advances the scan by one step: it accumulates text up to the
// next tag boundary and returns the next opened Tag. It returns nil when
// the step processed a close event instead, or when input ended (Done
// reports which). A failed read from the source is the only error; it
// aborts the scan and repeats on every later call.
func (n *Navigator) Descend() (*Tag, error) {
	if n.err != nil {
		return nil, n.err
	}
	if n.done {
		return nil, nil
	}
	n.content = n.content[:0]
	for {
		start := n.position()
		ch, ok, err := n.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			n.done = true
			return nil, nil
		}
		if ch != '<' {
			n.content = append(n.content, ch)
			continue
		}

		pk, ok, err := n.peek()
		if err != nil {
			return nil, err
		}
		if !ok {
			// input ends on a bare '<'
			n.content = append(n.content, '<')
			n.done = true
			return nil, nil
		}

		if pk == '/' {
			n.next()
			handled, err := n.scanCloseTag()
			if err != nil {
				return nil, err
			}
			if handled {
				return nil, nil
			}
			continue
		}

		if n.inRawText() {
			// literal '<' inside a script or style body
			n.content = append(n.content, '<')
			continue
		}

		if pk == '!' {
			n.next()
			pk, ok, err = n.peek()
			if err != nil {
				return nil, err
			}
			if ok && pk == '-' {
				if err := n.skipComment(); err != nil {
					return nil, err
				}
				continue
			}
			if ok && isLetter(pk) {
				return n.scanOpenTag(start, true)
			}
			n.content = append(n.content, '<', '!')
			continue
		}

		if !isLetter(pk) {
			// '<' that opens nothing is text
			n.content = append(n.content, '<')
			continue
		}

		return n.scanOpenTag(start, false)
	}
}

// scanCloseTag consumes a closing tag after its "</" prefix and runs stack
// reconciliation. Inside a raw-text body a close tag for any other element
// is literal content; the return value reports whether a close event was
// actually processed.
func (n *Navigator) scanCloseTag() (bool, error) {
	n.scratch = n.scratch[:0]
	for {
		ch, ok, err := n.peek()
		if err != nil {
			return false, err
		}
		if !ok || !isNameChar(ch) {
			break
		}
		n.next()
		n.scratch = append(n.scratch, ch)
	}
	name := string(n.scratch)

	if n.inRawText() && !strings.EqualFold(name, n.top.name) {
		n.content = append(n.content, '<', '/')
		n.content = append(n.content, n.scratch...)
		return false, nil
	}

	for {
		ch, ok, err := n.next()
		if err != nil {
			return false, err
		}
		if !ok || ch == '>' {
			break
		}
	}
	n.ascend(name)
	return true, nil
}

// skipComment absorbs a comment after its "<!" prefix, through the
// terminating "-->". Comments contribute nothing to content.
func (n *Navigator) skipComment() error {
	dashes := 0
	for {
		ch, ok, err := n.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch {
		case ch == '-':
			dashes++
		case ch == '>' && dashes >= 2:
			return nil
		default:
			dashes = 0
		}
	}
}

// scanOpenTag reads a tag name and its attributes, builds the Tag, and
// pushes it unless it is self-closing. Declaration-like tags (<!DOCTYPE>)
// cannot contain children and count as self-closing.
func (n *Navigator) scanOpenTag(start Position, decl bool) (*Tag, error) {
	n.scratch = n.scratch[:0]
	if decl {
		n.scratch = append(n.scratch, '!')
	}
	for {
		ch, ok, err := n.peek()
		if err != nil {
			return nil, err
		}
		if !ok || !isNameChar(ch) {
			break
		}
		n.next()
		n.scratch = append(n.scratch, ch)
	}

	tag := &Tag{
		name:   string(n.scratch),
		parent: n.top,
		depth:  1,
		pos:    start,
	}
	if n.top != nil {
		tag.depth = n.top.depth + 1
	}

	selfClose, err := n.scanAttributes(tag)
	if err != nil {
		return nil, err
	}

	if decl || selfClose || n.voids[strings.ToLower(tag.name)] {
		tag.selfClosing = true
		tag.closed = true
		return tag, nil
	}
	n.top = tag
	return tag, nil
}

// ascend closes the innermost open tag and walks up the chain, closing
// every visited tag, until one matching name has been closed or the chain
// is exhausted. An unmatched close name therefore empties the stack
// instead of failing.
func (n *Navigator) ascend(name string) {
	for n.top != nil {
		t := n.top
		t.closed = true
		n.top = t.parent
		if strings.EqualFold(t.name, name) {
			return
		}
	}
}

func (n *Navigator) inRawText() bool {
	return n.top != nil && n.raw[strings.ToLower(n.top.name)]
}

func (n *Navigator) position() Position {
	return Position{File: n.file, Offset: n.offset, Line: n.line, Column: n.column}
}

// next consumes one character. The boolean is false at end of input.
func (n *Navigator) next() (rune, bool, error) {
	if n.err != nil {
		return 0, false, n.err
	}
	if n.hasPend {
		n.hasPend = false
		n.bump(n.pend)
		return n.pend, true, nil
	}
	if n.eof {
		return 0, false, nil
	}
	ch, err := n.src.ReadChar()
	if err == io.EOF {
		n.eof = true
		return 0, false, nil
	}
	if err != nil {
		n.err = fmt.Errorf("read markup: %w", err)
		return 0, false, n.err
	}
	n.bump(ch)
	return ch, true, nil
}

// peek buffers one character without consuming it.
func (n *Navigator) peek() (rune, bool, error) {
	if n.hasPend {
		return n.pend, true, nil
	}
	if n.err != nil {
		return 0, false, n.err
	}
	if n.eof {
		return 0, false, nil
	}
	ch, err := n.src.ReadChar()
	if err == io.EOF {
		n.eof = true
		return 0, false, nil
	}
	if err != nil {
		n.err = fmt.Errorf("read markup: %w", err)
		return 0, false, n.err
	}
	n.pend = ch
	n.hasPend = true
	return ch, true, nil
}

func (n *Navigator) bump(ch rune) {
	n.offset++
	if ch == '\n' {
		n.line++
		n.column = 1
	} else {
		n.column++
	}
}

// Character classification helpers

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isNameChar(ch rune) bool {
	return isLetter(ch) || isDigit(ch) || ch == '-'
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isAttrNameChar(ch rune) bool {
	return isLetter(ch) || isDigit(ch) || ch == '-' || ch == '_' || ch == '.'
}
