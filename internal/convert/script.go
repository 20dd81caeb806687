package convert

import "strings"

// Deferred-load construct emitted in place of <script>: next/script's
// Script component with the load-after-interactive strategy.
const (
	ScriptComponent = "Script"
	ScriptStrategy  = "afterInteractive"
)

var jsBreaker = strings.NewReplacer(
	";", ";\n  ",
	"{", "{\n  ",
	"}", "\n}",
)

// formatScript line-breaks inline code after ';' and around braces and
// wraps it in a template literal. Token order is never changed, and
// nothing is parsed: a ';' or brace inside a string literal is broken
// like any other.
func formatScript(code string) string {
	return "{`\n  " + jsBreaker.Replace(code) + "\n`}"
}

// splitsLiteral reports whether the formatter would break a ';', '{' or
// '}' that sits inside a quoted string or template literal.
func splitsLiteral(code string) bool {
	var quote rune
	escaped := false
	for _, r := range code {
		if quote != 0 {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == quote:
				quote = 0
			case r == ';' || r == '{' || r == '}':
				return true
			}
			continue
		}
		switch r {
		case '\'', '"', '`':
			quote = r
		}
	}
	return false
}
