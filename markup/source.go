package markup

import (
	"bufio"
	"io"
)

// CharSource is the pull-based character stream the Navigator consumes.
// ReadChar returns the next code point, or io.EOF once the input is
// exhausted. After io.EOF every further call must return io.EOF again.
// The Navigator never seeks and never pushes characters back.
type CharSource interface {
	ReadChar() (rune, error)
}

type readerSource struct {
	r *bufio.Reader
}

// NewReaderSource wraps an io.Reader in a buffered, UTF-8 decoding
// CharSource. Invalid byte sequences decode to the replacement character
// rather than failing.
func NewReaderSource(r io.Reader) CharSource {
	return &readerSource{r: bufio.NewReader(r)}
}

func (s *readerSource) ReadChar() (rune, error) {
	ch, _, err := s.r.ReadRune()
	if err != nil {
		return 0, err
	}
	return ch, nil
}

type stringSource struct {
	input []rune
	pos   int
}

// NewStringSource returns a CharSource reading from an in-memory string.
func NewStringSource(s string) CharSource {
	return &stringSource{input: []rune(s)}
}

func (s *stringSource) ReadChar() (rune, error) {
	if s.pos >= len(s.input) {
		return 0, io.EOF
	}
	ch := s.input[s.pos]
	s.pos++
	return ch, nil
}
