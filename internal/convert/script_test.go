package convert

import "testing"

func TestFormatScript(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want string
	}{
		{"a();", "{`\n  a();\n  \n`}"},
		{"if(x){y()}", "{`\n  if(x){\n  y()\n}\n`}"},
		{"noop", "{`\n  noop\n`}"},
	}
	for _, tc := range cases {
		if got := formatScript(tc.in); got != tc.want {
			t.Fatalf("formatScript(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// The formatter is cosmetic only and splits literals too.
func TestFormatScriptSplitsInsideStrings(t *testing.T) {
	t.Parallel()
	got := formatScript(`s="a;b"`)
	want := "{`\n  s=\"a;\n  b\"\n`}"
	if got != want {
		t.Fatalf("formatScript = %q, want %q", got, want)
	}
}

func TestSplitsLiteral(t *testing.T) {
	t.Parallel()
	cases := map[string]bool{
		`a();b();`:              false,
		`x = "a;b"`:             true,
		`x = 'no breaks'; y()`:  false,
		"t = `${a}`":            true,
		`s = "esc \" ; inside"`: true,
		`s = "esc \\"; after`:   false,
	}
	for in, want := range cases {
		if got := splitsLiteral(in); got != want {
			t.Fatalf("splitsLiteral(%q) = %v, want %v", in, got, want)
		}
	}
}
