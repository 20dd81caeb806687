package convert

import (
	"regexp"
	"strings"

	"github.com/aymerick/douceur/parser"
)

var hyphenWord = regexp.MustCompile(`-(\w)`)

// styleDecl is one property of an inline style object.
type styleDecl struct {
	key   string
	value string
}

// styleObject is an insertion-ordered property map. Setting an existing
// key replaces its value in place.
type styleObject struct {
	decls []styleDecl
	index map[string]int
}

func (o *styleObject) set(key, value string) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[key]; ok {
		o.decls[i].value = value
		return
	}
	o.index[key] = len(o.decls)
	o.decls = append(o.decls, styleDecl{key: key, value: value})
}

// parseStyle splits a CSS declaration list the naive way: on ';', then on
// the first ':'. Declarations missing a property or a value are returned
// in skipped.
func parseStyle(raw string) (obj styleObject, skipped []string) {
	for _, decl := range strings.Split(raw, ";") {
		if decl == "" {
			continue
		}
		prop, value, found := strings.Cut(decl, ":")
		prop = strings.TrimSpace(prop)
		value = strings.TrimSpace(value)
		if !found || prop == "" || value == "" {
			if strings.TrimSpace(decl) != "" {
				skipped = append(skipped, strings.TrimSpace(decl))
			}
			continue
		}
		obj.set(camelCase(prop), value)
	}
	return obj, skipped
}

// camelCase turns font-size into fontSize and -webkit-box into WebkitBox.
func camelCase(prop string) string {
	return hyphenWord.ReplaceAllStringFunc(prop, func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

var quoteEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// literal renders the object as a JS object literal with unquoted keys
// and single-quoted values, two spaces per level.
func (o styleObject) literal() string {
	if len(o.decls) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for i, d := range o.decls {
		b.WriteString("  ")
		b.WriteString(d.key)
		b.WriteString(": '")
		b.WriteString(quoteEscaper.Replace(d.value))
		b.WriteString("'")
		if i < len(o.decls)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

// styleLiteral converts a style attribute value into the object literal
// used inside style={...}.
func styleLiteral(raw string) string {
	if raw == "" {
		return "{}"
	}
	obj, _ := parseStyle(raw)
	return obj.literal()
}

// checkStyle runs the attribute through a real CSS declaration parser.
// Rejection does not change the output; the naive split still applies.
func checkStyle(raw string) error {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil
	}
	// the declaration parser drops a final declaration without ';'
	if !strings.HasSuffix(text, ";") {
		text += ";"
	}
	_, err := parser.ParseDeclarations(text)
	return err
}
