package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/tagwalk/markup"
)

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain nesting",
			input: `<div><p>Hello</p> <p>world</p></div>`,
			want:  "Hello world",
		},
		{
			name:  "script body skipped",
			input: `<p>before</p><script>var x = "<b>not text</b>";</script><p>after</p>`,
			want:  "before after",
		},
		{
			name:  "style body skipped",
			input: `<style>p { color: red }</style><p>visible</p>`,
			want:  "visible",
		},
		{
			name:  "whitespace collapsed",
			input: "<p>\n  spread\n  out\n</p>",
			want:  "spread out",
		},
		{
			name:  "text outside tags",
			input: `before <b>middle</b> after`,
			want:  "before middle after",
		},
		{
			name:  "empty document",
			input: ``,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := markup.NewFromString(tt.input)
			got, err := Text(nav)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTitle(t *testing.T) {
	t.Run("first title element", func(t *testing.T) {
		nav := markup.NewFromString(`<html><head><title>My Page</title></head><body>x</body></html>`)
		got, err := Title(nav)
		require.NoError(t, err)
		assert.Equal(t, "My Page", got)
	})

	t.Run("no title", func(t *testing.T) {
		nav := markup.NewFromString(`<html><body>x</body></html>`)
		got, err := Title(nav)
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})
}

func TestLinks(t *testing.T) {
	t.Run("document order with targets and text", func(t *testing.T) {
		nav := markup.NewFromString(
			`<p><a href="/one">first</a></p><div><a href="/two">second</a></div>`)

		links, err := Links(nav)
		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, Link{Href: "/one", Text: "first", Position: links[0].Position}, links[0])
		assert.Equal(t, "/two", links[1].Href)
		assert.Equal(t, "second", links[1].Text)
		assert.Less(t, links[0].Position.Offset, links[1].Position.Offset)
	})

	t.Run("anchor without href", func(t *testing.T) {
		nav := markup.NewFromString(`<a name="top">here</a>`)
		links, err := Links(nav)
		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "", links[0].Href)
		assert.Equal(t, "here", links[0].Text)
	})

	t.Run("nested markup inside the anchor", func(t *testing.T) {
		nav := markup.NewFromString(`<a href="/x">lead <em>rest</em></a>`)
		links, err := Links(nav)
		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "lead", links[0].Text)
	})
}

func TestOutline(t *testing.T) {
	nav := markup.NewFromString(`<h1>Top</h1>
<p>intro</p>
<h2>Sub one</h2>
<div><h2>Sub two</h2></div>
<h3>Deep</h3>`)

	headings, err := Outline(nav)
	require.NoError(t, err)
	require.Len(t, headings, 4)

	assert.Equal(t, 1, headings[0].Level)
	assert.Equal(t, "Top", headings[0].Text)
	assert.Equal(t, 1, headings[0].Position.Line)

	assert.Equal(t, 2, headings[1].Level)
	assert.Equal(t, "Sub one", headings[1].Text)

	assert.Equal(t, 2, headings[2].Level)
	assert.Equal(t, "Sub two", headings[2].Text)

	assert.Equal(t, 3, headings[3].Level)
	assert.Equal(t, "Deep", headings[3].Text)
}

func TestPredicates(t *testing.T) {
	nav := markup.NewFromString(`<div class="hero main" id="top" data-x="1">`)
	tag, err := nav.Descend()
	require.NoError(t, err)
	require.NotNil(t, tag)

	assert.True(t, ByName("div")(tag))
	assert.True(t, ByName("DIV")(tag))
	assert.True(t, ByName("span", "div")(tag))
	assert.False(t, ByName("span")(tag))

	assert.True(t, HasClass("hero")(tag))
	assert.True(t, HasClass("main")(tag))
	assert.False(t, HasClass("other")(tag))

	assert.True(t, WithAttr("id", "top")(tag))
	assert.True(t, WithAttr("id", "")(tag))
	assert.False(t, WithAttr("id", "bottom")(tag))
	assert.False(t, WithAttr("missing", "")(tag))

	assert.True(t, And(ByName("div"), HasClass("hero"))(tag))
	assert.False(t, And(ByName("div"), HasClass("other"))(tag))
	assert.True(t, And()(tag))
}

func TestEachCrossesSubtreeBoundaries(t *testing.T) {
	nav := markup.NewFromString(`<div><span>a</span></div><section><span>b</span></section>`)

	var seen []string
	err := Each(nav, ByName("span"), func(tag *markup.Tag) error {
		text, err := leadingText(nav, tag)
		if err != nil {
			return err
		}
		seen = append(seen, text)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, seen)
}
