package convert

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Parser turns a pasted fragment into a full document tree.
type Parser interface {
	Parse(ctx context.Context, fragment string) (*html.Node, error)
}

// ErrNoDocument is returned when a parser yields no usable tree.
var ErrNoDocument = errors.New("convert: parser produced no document")

// HTMLParser parses with golang.org/x/net/html. The tree builder follows
// the WHATWG algorithm, so malformed snippets are repaired the same way
// a browser repairs them. Scripting is disabled to match DOMParser, which
// keeps <noscript> content as elements.
type HTMLParser struct{}

func (HTMLParser) Parse(_ context.Context, fragment string) (*html.Node, error) {
	doc, err := html.ParseWithOptions(strings.NewReader(fragment), html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	if doc == nil {
		return nil, ErrNoDocument
	}
	return doc, nil
}

var (
	headSel = cascadia.MustCompile("html > head")
	bodySel = cascadia.MustCompile("html > body")
)

// regions returns the head and body elements of doc. Either may be nil.
func regions(doc *html.Node) (head, body *html.Node) {
	if doc == nil {
		return nil, nil
	}
	return cascadia.Query(doc, headSel), cascadia.Query(doc, bodySel)
}

// childNodes lists the direct children of n in document order.
func childNodes(n *html.Node) []*html.Node {
	if n == nil {
		return nil
	}
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}
