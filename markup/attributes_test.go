package markup

import (
	"reflect"
	"testing"
)

// scanTag returns the first tag of input, failing the test if there is none.
func scanTag(t *testing.T, input string) *Tag {
	t.Helper()
	nav := NewFromString(input)
	tag, err := nav.Descend()
	if err != nil {
		t.Fatalf("Descend() error = %v", err)
	}
	if tag == nil {
		t.Fatalf("Descend() = nil, want tag for %q", input)
	}
	return tag
}

func TestAttributesOrdered(t *testing.T) {
	tag := scanTag(t, `<a href="x" target="_blank" rel="noopener">`)

	want := []Attribute{
		{Name: "href", Value: "x"},
		{Name: "target", Value: "_blank"},
		{Name: "rel", Value: "noopener"},
	}
	if got := tag.Attributes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Attributes() = %v, want %v", got, want)
	}
}

func TestAttributesClassDiverted(t *testing.T) {
	tag := scanTag(t, `<p class="big red">`)

	if got, want := tag.Classes(), []string{"big", "red"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Classes() = %v, want %v", got, want)
	}
	if got := tag.Attributes(); got != nil {
		t.Errorf("Attributes() = %v, want nil (class diverted)", got)
	}
	if !tag.HasClass("big") {
		t.Error("HasClass(big) = false, want true")
	}
	if tag.HasClass("blue") {
		t.Error("HasClass(blue) = true, want false")
	}
}

func TestAttributesClassTokens(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{`<p CLASS='a  b '>`, []string{"a", "b"}},
		{`<p class="x x y">`, []string{"x", "y"}},
		{`<p class="  ">`, nil},
		{`<p class="">`, nil},
		{`<p class="one">`, []string{"one"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tag := scanTag(t, tt.input)
			if got := tag.Classes(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Classes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAttributesMalformedDropped(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Attribute
	}{
		{
			name:  "bare attribute without value",
			input: `<div hidden>`,
			want:  nil,
		},
		{
			name:  "unquoted value",
			input: `<a href=plain target="_blank">`,
			want:  []Attribute{{Name: "target", Value: "_blank"}},
		},
		{
			name:  "missing name before equals",
			input: `<a ="x" href="y">`,
			want:  []Attribute{{Name: "href", Value: "y"}},
		},
		{
			name:  "unterminated quote",
			input: `<a href="x`,
			want:  nil,
		},
		{
			name:  "stray quote between attributes",
			input: `<a " href="y">`,
			want:  []Attribute{{Name: "href", Value: "y"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := scanTag(t, tt.input)
			if got := tag.Attributes(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Attributes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAttributesDuplicateName(t *testing.T) {
	tag := scanTag(t, `<a x="1" x="2" y="3">`)

	want := []Attribute{
		{Name: "x", Value: "2"},
		{Name: "y", Value: "3"},
	}
	if got := tag.Attributes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Attributes() = %v, want %v", got, want)
	}
}

func TestAttributesNameCharacters(t *testing.T) {
	tag := scanTag(t, `<a data-id="7" a.b="c" x_y="z">`)

	want := []Attribute{
		{Name: "data-id", Value: "7"},
		{Name: "a.b", Value: "c"},
		{Name: "x_y", Value: "z"},
	}
	if got := tag.Attributes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Attributes() = %v, want %v", got, want)
	}
}

func TestAttributesSelfCloseSlash(t *testing.T) {
	tag := scanTag(t, `<a / href="y">`)

	if !tag.SelfClosing() {
		t.Error("SelfClosing() = false, want true (bare '/' before '>')")
	}
	if href, ok := tag.Attr("href"); !ok || href != "y" {
		t.Errorf("Attr(href) = %q, %v, want %q, true", href, ok, "y")
	}
}

func TestAttributesSpacedEquals(t *testing.T) {
	tag := scanTag(t, `<a href = "x">`)

	if href, ok := tag.Attr("href"); !ok || href != "x" {
		t.Errorf("Attr(href) = %q, %v, want %q, true", href, ok, "x")
	}
}

func TestAttributesLookupFold(t *testing.T) {
	tag := scanTag(t, `<a HREF="x">`)

	for _, name := range []string{"href", "HREF", "Href"} {
		if v, ok := tag.Attr(name); !ok || v != "x" {
			t.Errorf("Attr(%q) = %q, %v, want %q, true", name, v, ok, "x")
		}
	}
	if _, ok := tag.Attr("title"); ok {
		t.Error("Attr(title) found, want missing")
	}
}

func TestAttributesValuePreserved(t *testing.T) {
	tests := []struct {
		input string
		name  string
		want  string
	}{
		{`<a title="two words  kept">`, "title", "two words  kept"},
		{`<a alt="">`, "alt", ""},
		{`<a q="it's fine">`, "q", "it's fine"},
		{`<a q='say "hi"'>`, "q", `say "hi"`},
		{`<a href="/a?b=1&c=2">`, "href", "/a?b=1&c=2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tag := scanTag(t, tt.input)
			if got, ok := tag.Attr(tt.name); !ok || got != tt.want {
				t.Errorf("Attr(%s) = %q, %v, want %q, true", tt.name, got, ok, tt.want)
			}
		})
	}
}

func TestAttributesMultiline(t *testing.T) {
	tag := scanTag(t, "<a\n\thref=\"x\"\n\ttarget=\"_blank\">")

	want := []Attribute{
		{Name: "href", Value: "x"},
		{Name: "target", Value: "_blank"},
	}
	if got := tag.Attributes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Attributes() = %v, want %v", got, want)
	}
}
