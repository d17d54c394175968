// Package htmltext reduces possibly-marked-up source text to plain text.
// Corpus imports sometimes carry HTML fragments; the categorizer only ever
// sees the visible words.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// Strip removes HTML markup from s, returning the concatenated text
// content. Plain text passes through unchanged apart from trimming. If
// parsing fails the input is returned as-is.
func Strip(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(buf.String())
}
