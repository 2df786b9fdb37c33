// Package htmltext extracts plain text from stored HTML page bodies.
// The engine never fetches pages; this only strips markup from
// content the rendering layer already has on disk.
package htmltext

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Extract parses HTML and returns its visible text, whitespace
// joined. Script and style subtrees are skipped.
func Extract(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(buf.String()), nil
}
