package htmldriver

import (
	"strings"

	"golang.org/x/net/html"
)

// visibleText extracts the rendered text of the given nodes: script, style
// and similar non-rendered subtrees are dropped and runs of whitespace
// collapse to single spaces, approximating what a browser's innerText
// returns for a static tree.
func visibleText(nodes ...*html.Node) string {
	var builder strings.Builder
	for _, n := range nodes {
		collectText(n, &builder)
	}
	return strings.Join(strings.Fields(builder.String()), " ")
}

func collectText(n *html.Node, builder *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		builder.WriteString(n.Data)
		builder.WriteByte(' ')
		return
	case html.CommentNode:
		return
	case html.ElementNode:
		if isNonRenderedElement(strings.ToLower(n.Data)) || hasHiddenAttr(n) {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, builder)
	}
}

// isNonRenderedElement returns true for elements whose text a browser
// never renders.
func isNonRenderedElement(tagName string) bool {
	nonRendered := map[string]bool{
		"script":   true,
		"style":    true,
		"noscript": true,
		"template": true,
		"head":     true,
		"title":    true,
	}
	return nonRendered[tagName]
}

func hasHiddenAttr(n *html.Node) bool {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, "hidden") {
			return true
		}
	}
	return false
}
