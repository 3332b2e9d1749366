// Package markup provides a forward-only, error-tolerant scanner for
// HTML-like text.
//
// # Overview
//
// The scanner walks nested tags without building a document tree. A caller
// drives it one step at a time: each step either produces the next opened
// Tag, processes a close event, or reaches end of input. Malformed markup
// is absorbed by policy instead of reported, which makes the package suited
// for ad-hoc extraction from real-world pages rather than for validation
// or rendering.
//
// # Architecture
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│ CharSource  │────▶│  Navigator  │────▶│    Tags     │
//	│  (runes)    │     │  (descend)  │     │  + content  │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                           │
//	                           ▼
//	                    ┌─────────────┐
//	                    │  Tag stack  │
//	                    │ (parent     │
//	                    │  chain)     │
//	                    └─────────────┘
//
// The nesting stack is implicit: every Tag points at the tag that was open
// when it appeared, and the Navigator keeps only the innermost open tag.
// Closing markup reconciles the chain tolerantly, so a stray close tag
// never fails — it just closes everything between the innermost tag and
// the first name match.
//
// # Scanning model
//
// The Navigator moves through five states:
//
//	text ──'<'──▶ tag name ──▶ attributes ──'>'──▶ text
//	  │             │
//	  │           '</'──▶ close tag ──▶ text
//	  ▼
//	 done (end of input while scanning text)
//
// Raw-text elements (script and style by default) suspend tokenization:
// their bodies pass through as ordinary text until the matching close tag,
// so literal '<' and '>' inside them never produce tags.
//
// # Example Usage
//
//	nav := markup.NewFromString(`<p>intro</p><a href="/next">more</a>`)
//	link, err := nav.Find(func(t *markup.Tag) bool { return t.Name() == "a" })
//	if err == nil && link != nil {
//		href, _ := link.Attr("href")
//		fmt.Println(href) // "/next"
//	}
//
// Reading the text of the next element, ignoring nested markup:
//
//	nav = markup.NewFromString(`<ul><li>one</li><li>two</li></ul>`)
//	nav.Descend()                 // enter <ul>
//	first, _ := nav.InlineText()  // "one"
//	second, _ := nav.InlineText() // "two"
//
// A Navigator instance is not safe for concurrent use; drive it from one
// goroutine only. Returned Tag values are read-only for callers.
package markup
