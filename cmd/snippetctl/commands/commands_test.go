package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"snippetkit/internal/convert"
	"snippetkit/internal/encoder"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	verbose = false
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEncodeArg(t *testing.T) {
	out, err := run(t, "", "encode", "hello")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if out != "?edit=aGVsbG9fT0xpR2Fua0V3U1Blcm1Pcw==\n" {
		t.Fatalf("out = %q", out)
	}
}

func TestEncodeStdinTrimsTrailingNewline(t *testing.T) {
	out, err := run(t, "hello\n", "encode")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want, _ := encoder.Encode("hello")
	if strings.TrimSpace(out) != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	key, err := run(t, "", "encode", "café")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := run(t, "", "encode", "--decode", strings.TrimSpace(key))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != "café\n" {
		t.Fatalf("decoded = %q", out)
	}
}

func TestEncodeUnencodable(t *testing.T) {
	out, err := run(t, "", "encode", "snow ☃")
	if err == nil {
		t.Fatalf("expected error")
	}
	if strings.TrimSpace(out) != encoder.FailureMessage {
		t.Fatalf("out = %q", out)
	}
}

func TestConvertFileSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snippet.html")
	in := `<script>a();</script><body><noscript><img src="p.gif"></noscript></body>`
	if err := os.WriteFile(path, []byte(in), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := run(t, "", "convert", "--stable-ids", path)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	for _, want := range []string{
		"== Instructions ==\n1. Import the Script and Head components:",
		"== Head Code ==\n<Script id=\"inline-script-1\" strategy=\"afterInteractive\">",
		"== Body Code ==\n<noscript>\n  <img src=\"p.gif\" />\n</noscript>",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConvertJSONFromStdin(t *testing.T) {
	out, err := run(t, `<body><div style="color: red">x</div></body>`, "convert", "--json", "-")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	var res convert.Result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("json: %v\n%s", err, out)
	}
	if res.Body != "<div style={{\n  color: 'red'\n}}>\n  x\n</div>" || res.Head != "" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestConvertNothingFound(t *testing.T) {
	out, err := run(t, "", "convert")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if out != "== Instructions ==\n"+convert.NotFoundMessage+"\n" {
		t.Fatalf("out = %q", out)
	}
}

func TestConvertUnknownParser(t *testing.T) {
	if _, err := run(t, "<p>x</p>", "convert", "--parser", "gecko"); err == nil {
		t.Fatalf("expected error for unknown parser")
	}
}

func TestParseDump(t *testing.T) {
	out, err := run(t, `<meta charset="utf-8"><p>hi</p>`, "parse")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := "head\n  element <meta charset=\"utf-8\">\nbody\n  element <p>\n    text \"hi\"\n"
	if out != want {
		t.Fatalf("out =\n%s\nwant\n%s", out, want)
	}
}

func TestConvertMissingFile(t *testing.T) {
	if _, err := run(t, "", "convert", filepath.Join(t.TempDir(), "nope.html")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
