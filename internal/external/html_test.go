package external

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "hello world", "hello world"},
		{"tags removed", "<p>Hello <b>World</b></p>", "Hello World"},
		{"nested markup", "<div><ul><li>Go</li><li>SQL</li></ul></div>", "GoSQL"},
		{"entities decoded", "Design &amp; Build", "Design & Build"},
		{"nbsp collapsed", "a&nbsp;&nbsp;b", "a b"},
		{"whitespace collapsed", "a \n\t  b   c", "a b c"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripHTML(tt.in))
		})
	}
}

func TestStripHTMLNeverEmitsTagCharacters(t *testing.T) {
	inputs := []string{
		"<script>alert(1)</script>",
		"use &lt;code&gt; blocks",
		"a < b and b > c",
		"<p>broken <markup",
	}
	for _, in := range inputs {
		got := StripHTML(in)
		assert.NotContains(t, got, "<", "input %q", in)
		assert.NotContains(t, got, ">", "input %q", in)
	}
}

func TestStripHTMLCapsLength(t *testing.T) {
	long := strings.Repeat("x", 2*maxDescriptionLen)
	got := StripHTML(long)
	assert.Len(t, []rune(got), maxDescriptionLen)

	// cap counts runes, not bytes
	multibyte := strings.Repeat("₹", 2*maxDescriptionLen)
	got = StripHTML(multibyte)
	assert.Len(t, []rune(got), maxDescriptionLen)
}
