// Package htmltext converts HTML fragments to plain text.
//
// Shipping addresses arrive from the document store with markup; the mobile
// client wants plain text with line breaks preserved at block boundaries.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockAtoms are elements whose close implies a line break.
var blockAtoms = map[atom.Atom]bool{
	atom.P:     true,
	atom.Div:   true,
	atom.Li:    true,
	atom.Tr:    true,
	atom.Table: true,
	atom.H1:    true,
	atom.H2:    true,
	atom.H3:    true,
	atom.H4:    true,
	atom.Ul:    true,
	atom.Ol:    true,
	atom.Address: true,
}

// Strip collapses all tags, keeping text content. <br> and closing block
// elements become newlines; runs of blank lines collapse to one.
func Strip(fragment string) string {
	if fragment == "" {
		return ""
	}

	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		// Malformed input degrades to the raw string rather than failing
		// the response.
		return strings.TrimSpace(fragment)
	}

	var b strings.Builder
	walk(doc, &b)
	return collapse(b.String())
}

func walk(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
	case html.ElementNode:
		if n.DataAtom == atom.Br {
			b.WriteString("\n")
		}
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, b)
	}

	if n.Type == html.ElementNode && blockAtoms[n.DataAtom] {
		b.WriteString("\n")
	}
}

func collapse(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
