package markup

import "strings"

// scanAttributes reads attribute pairs until the tag ends at '>' or input
// runs out. It reports whether a bare '/' marked the tag self-closing.
func (n *Navigator) scanAttributes(tag *Tag) (bool, error) {
	selfClose := false
	for {
		if err := n.skipTagSpace(); err != nil {
			return false, err
		}
		ch, ok, err := n.peek()
		if err != nil {
			return false, err
		}
		if !ok {
			// unterminated tag: end of input acts like '>'
			return selfClose, nil
		}
		if ch == '>' {
			n.next()
			return selfClose, nil
		}
		if ch == '/' {
			n.next()
			selfClose = true
			continue
		}
		if err := n.scanAttribute(tag); err != nil {
			return false, err
		}
	}
}

// scanAttribute extracts one name="value" pair into tag. Malformed input
// (no name, missing '=', missing opening quote, unterminated value) is
// dropped silently: the scanner consumes just enough to make progress and
// records nothing.
func (n *Navigator) scanAttribute(tag *Tag) error {
	n.scratch = n.scratch[:0]
	for {
		ch, ok, err := n.peek()
		if err != nil {
			return err
		}
		if !ok || !isAttrNameChar(ch) {
			break
		}
		n.next()
		n.scratch = append(n.scratch, ch)
	}

	if len(n.scratch) == 0 {
		// not even a name here: drop one character and resynchronize
		_, _, err := n.next()
		return err
	}
	name := string(n.scratch)

	if err := n.skipTagSpace(); err != nil {
		return err
	}
	ch, ok, err := n.peek()
	if err != nil {
		return err
	}
	if !ok || ch != '=' {
		// bare attribute without a value: dropped
		return nil
	}
	n.next()
	if err := n.skipTagSpace(); err != nil {
		return err
	}

	ch, ok, err = n.peek()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if ch != '"' && ch != '\'' {
		// unquoted value: dropped, but consumed so scanning resumes cleanly
		return n.skipUnquoted()
	}

	value, terminated, err := n.readQuoted(ch)
	if err != nil {
		return err
	}
	if !terminated {
		// unterminated value: dropped
		return nil
	}

	if strings.EqualFold(name, "class") {
		for _, token := range strings.Fields(value) {
			tag.addClass(token)
		}
		return nil
	}
	tag.setAttr(name, value)
	return nil
}

// readQuoted consumes a quoted value after its opening quote was peeked.
// The boolean reports whether the closing quote appeared before input
// ended.
func (n *Navigator) readQuoted(quote rune) (string, bool, error) {
	n.next() // opening quote
	n.scratch = n.scratch[:0]
	for {
		ch, ok, err := n.next()
		if err != nil {
			return "", false, err
		}
		if !ok {
			return string(n.scratch), false, nil
		}
		if ch == quote {
			return string(n.scratch), true, nil
		}
		n.scratch = append(n.scratch, ch)
	}
}

// skipUnquoted consumes an unquoted value run so scanning can pick up at
// the next attribute or tag end.
func (n *Navigator) skipUnquoted() error {
	for {
		ch, ok, err := n.peek()
		if err != nil {
			return err
		}
		if !ok || isWhitespace(ch) || ch == '>' || ch == '/' {
			return nil
		}
		n.next()
	}
}

func (n *Navigator) skipTagSpace() error {
	for {
		ch, ok, err := n.peek()
		if err != nil {
			return err
		}
		if !ok || !isWhitespace(ch) {
			return nil
		}
		n.next()
	}
}
