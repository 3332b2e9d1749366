package markup

// Find repeatedly descends and returns the first Tag satisfying pred. It
// returns nil when input is exhausted, or when the tag that was Top at the
// start of the call closes without a match. Called from inside an open tag
// the search is therefore bounded to that tag's subtree; called at the
// root it covers the whole remaining stream.
func (n *Navigator) Find(pred func(*Tag) bool) (*Tag, error) {
	scope := n.top
	for {
		tag, err := n.Descend()
		if err != nil {
			return nil, err
		}
		if tag != nil && pred(tag) {
			return tag, nil
		}
		if n.done || (scope != nil && scope.closed) {
			return nil, nil
		}
	}
}

// Close descends until tag is closed, skipping past its remaining
// content. Closing an already-closed tag scans nothing. Input may end
// first, in which case the tag stays open.
func (n *Navigator) Close(tag *Tag) error {
	if tag == nil {
		return nil
	}
	for !tag.closed && !n.done {
		if _, err := n.Descend(); err != nil {
			return err
		}
	}
	return nil
}

// InlineText reads the text at the start of the next element, before any
// nested markup. It descends once for the element, captures the text at
// the following boundary, keeps descending until a close event or end of
// input, and closes the element if it is still open. On
// "<em>word <b>bold</b> more</em>" it returns "word ".
func (n *Navigator) InlineText() (string, error) {
	tag, err := n.Descend()
	if err != nil {
		return "", err
	}
	var text string
	captured := false
	for {
		step, err := n.Descend()
		if err != nil {
			return "", err
		}
		if !captured {
			text = n.Content()
			captured = true
		}
		if step == nil {
			break
		}
	}
	if tag != nil && !tag.closed {
		if err := n.Close(tag); err != nil {
			return "", err
		}
	}
	return text, nil
}
