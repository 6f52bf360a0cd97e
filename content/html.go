package content

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ExcludedTags are removed from HTML before text is extracted.
var ExcludedTags = []string{
	"script",
	"style",
	"noscript",
	"iframe",
	"svg",
	"template",
	"head",
}

// ExtractHTMLText returns the visible text of an HTML document, with runs of
// whitespace collapsed to a single space.
func ExtractHTMLText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", err
	}
	doc.Find(strings.Join(ExcludedTags, ", ")).Remove()

	sel := doc.Find("body")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	var sb strings.Builder
	for _, n := range sel.Nodes {
		writeText(&sb, n)
	}
	return strings.Join(strings.Fields(sb.String()), " "), nil
}

// writeText writes text nodes separated by spaces, so that adjacent block
// elements don't run together.
func writeText(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		sb.WriteByte(' ')
	case html.CommentNode:
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeText(sb, c)
		}
	}
}
