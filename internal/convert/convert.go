// Package convert rewrites pasted HTML tracking snippets into Next.js
// markup: <script> becomes next/script's <Script strategy="afterInteractive">,
// inline styles become object literals, and head and body content are
// emitted separately together with setup instructions.
package convert

import (
	"context"
	"strings"

	"golang.org/x/net/html"
)

// WarningCode classifies a conversion diagnostic.
type WarningCode string

const (
	WarnStyleSkipped  WarningCode = "style-skipped"
	WarnStyleRejected WarningCode = "style-rejected"
	WarnScriptLiteral WarningCode = "script-literal"
	WarnParseFailed   WarningCode = "parse-failed"
)

// Warning is a non-fatal observation. Warnings never change the markup.
type Warning struct {
	Code   WarningCode `json:"code"`
	Tag    string      `json:"tag,omitempty"`
	Detail string      `json:"detail"`
}

func (w Warning) String() string {
	if w.Tag == "" {
		return string(w.Code) + ": " + w.Detail
	}
	return string(w.Code) + " <" + w.Tag + ">: " + w.Detail
}

// Result holds the output of one conversion. All fields are rebuilt on
// every call.
type Result struct {
	Head         string    `json:"head"`
	Body         string    `json:"body"`
	Instructions string    `json:"instructions"`
	Warnings     []Warning `json:"warnings,omitempty"`
}

// Empty reports whether neither region produced markup.
func (r Result) Empty() bool { return r.Head == "" && r.Body == "" }

// Option configures a Converter.
type Option func(*Converter)

// WithParser replaces the default x/net/html parser.
func WithParser(p Parser) Option {
	return func(c *Converter) {
		if p != nil {
			c.parser = p
		}
	}
}

// WithIDs sets the factory for inline-script id generators. The factory
// is called once per conversion.
func WithIDs(factory func() IDGenerator) Option {
	return func(c *Converter) {
		if factory != nil {
			c.ids = factory
		}
	}
}

// Converter is safe for concurrent use as long as its Parser is.
type Converter struct {
	parser Parser
	ids    func() IDGenerator
}

// New returns a Converter using HTMLParser and random ids unless
// overridden.
func New(opts ...Option) *Converter {
	c := &Converter{
		parser: HTMLParser{},
		ids:    RandomIDs,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultConverter = New()

// Convert runs the default converter.
func Convert(fragment string) Result {
	return defaultConverter.Convert(context.Background(), fragment)
}

// Convert parses fragment and serializes its head and body children.
func (c *Converter) Convert(ctx context.Context, fragment string) Result {
	if strings.TrimSpace(fragment) == "" {
		return Result{Instructions: NotFoundMessage}
	}
	doc, err := c.parser.Parse(ctx, fragment)
	if err != nil {
		return Result{
			Instructions: NotFoundMessage,
			Warnings:     []Warning{{Code: WarnParseFailed, Detail: err.Error()}},
		}
	}
	headNode, bodyNode := regions(doc)
	w := &walker{nextID: c.ids()}
	res := Result{
		Head: w.region(headNode),
		Body: w.region(bodyNode),
	}
	res.Instructions = instructions(res.Head, res.Body)
	res.Warnings = w.warnings
	return res
}

func (w *walker) region(root *html.Node) string {
	var parts []string
	for _, n := range childNodes(root) {
		if out := w.node(n, ""); out != "" {
			parts = append(parts, out)
		}
	}
	return strings.Join(parts, "\n")
}
