package external

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxDescriptionLen caps normalized job descriptions.
const maxDescriptionLen = 500

// StripHTML flattens an upstream description to plain text. External APIs
// routinely return full HTML bodies; the canonical record must carry no
// tags at all. The result is whitespace-collapsed and capped at
// maxDescriptionLen runes.
func StripHTML(html string) string {
	if html == "" {
		return ""
	}

	text := html
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		text = doc.Text()
	} else {
		// crude fallback: drop everything between angle brackets
		var b strings.Builder
		inTag := false
		for _, r := range html {
			switch {
			case r == '<':
				inTag = true
			case r == '>':
				inTag = false
			case !inTag:
				b.WriteRune(r)
			}
		}
		text = b.String()
	}

	text = strings.NewReplacer(
		"&nbsp;", " ",
		"&amp;", "&",
		"&quot;", `"`,
	).Replace(text)

	// entities like &lt; decode back into tag characters; the canonical
	// record promises none, so drop any that survive
	text = strings.NewReplacer("&lt;", "", "&gt;", "", "<", "", ">", "").Replace(text)

	text = strings.Join(strings.Fields(text), " ")

	runes := []rune(text)
	if len(runes) > maxDescriptionLen {
		runes = runes[:maxDescriptionLen]
	}
	return strings.TrimSpace(string(runes))
}
