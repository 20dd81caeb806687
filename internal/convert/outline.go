package convert

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

func (k NodeKind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindText:
		return "text"
	case KindComment:
		return "comment"
	default:
		return "other"
	}
}

// Outline parses fragment with p and lists the head and body trees one
// node per line, indented by depth. Whitespace-only text is omitted.
// It shows how the parser repaired the input before serialization.
func Outline(ctx context.Context, p Parser, fragment string) (string, error) {
	if p == nil {
		p = HTMLParser{}
	}
	doc, err := p.Parse(ctx, fragment)
	if err != nil {
		return "", err
	}
	head, body := regions(doc)
	var b strings.Builder
	for _, region := range []struct {
		name string
		node *html.Node
	}{{"head", head}, {"body", body}} {
		b.WriteString(region.name)
		if region.node == nil {
			b.WriteString(" (missing)")
		}
		b.WriteByte('\n')
		for _, c := range childNodes(region.node) {
			outlineNode(&b, c, 1)
		}
	}
	return b.String(), nil
}

func outlineNode(b *strings.Builder, n *html.Node, depth int) {
	kind := kindOf(n)
	if kind == KindText && strings.TrimSpace(n.Data) == "" {
		return
	}
	b.WriteString(strings.Repeat(indentStep, depth))
	b.WriteString(kind.String())
	switch kind {
	case KindElement:
		b.WriteString(" <" + n.Data)
		for _, a := range n.Attr {
			fmt.Fprintf(b, " %s=%q", attrName(a), a.Val)
		}
		b.WriteString(">")
	case KindText, KindComment:
		b.WriteString(" " + strconv.Quote(strings.TrimSpace(n.Data)))
	default:
		fmt.Fprintf(b, " type=%d", n.Type)
	}
	b.WriteByte('\n')
	if kind == KindElement {
		for _, c := range childNodes(n) {
			outlineNode(b, c, depth+1)
		}
	}
}
