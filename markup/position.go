package markup

import "fmt"

// Position locates a character in the scanned input. Offset counts code
// points from the start of the input; Line and Column are 1-based, with
// Column counted in code points.
type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}
