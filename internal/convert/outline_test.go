package convert

import (
	"context"
	"testing"
)

func TestOutline(t *testing.T) {
	t.Parallel()
	in := "<script src=\"a.js\"></script><body>\n<!-- c --><div class=\"x\"> hi </div></body>"
	got, err := Outline(context.Background(), nil, in)
	if err != nil {
		t.Fatalf("Outline: %v", err)
	}
	want := "head\n" +
		"  element <script src=\"a.js\">\n" +
		"body\n" +
		"  comment \"c\"\n" +
		"  element <div class=\"x\">\n" +
		"    text \"hi\"\n"
	if got != want {
		t.Fatalf("Outline =\n%s\nwant\n%s", got, want)
	}
}

func TestOutlineParserError(t *testing.T) {
	t.Parallel()
	if _, err := Outline(context.Background(), failingParser{}, "<p>"); err == nil {
		t.Fatalf("expected parser error")
	}
}
