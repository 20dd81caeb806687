package convert

import (
	"strings"

	"golang.org/x/net/html"
)

// NodeKind is the closed set of node kinds the serializer handles.
type NodeKind int

const (
	KindOther NodeKind = iota
	KindElement
	KindText
	KindComment
)

func kindOf(n *html.Node) NodeKind {
	switch n.Type {
	case html.ElementNode:
		return KindElement
	case html.TextNode:
		return KindText
	case html.CommentNode:
		return KindComment
	default:
		return KindOther
	}
}

// voidTags never get children or a closing tag in the output.
var voidTags = map[string]bool{
	"img":   true,
	"br":    true,
	"hr":    true,
	"input": true,
	"meta":  true,
	"link":  true,
}

const indentStep = "  "

// walker serializes nodes for one conversion run.
type walker struct {
	nextID   IDGenerator
	warnings []Warning
}

func (w *walker) warn(code WarningCode, tag, detail string) {
	w.warnings = append(w.warnings, Warning{Code: code, Tag: tag, Detail: detail})
}

// node returns the markup for n, or "" when n yields nothing.
func (w *walker) node(n *html.Node, indent string) string {
	switch kindOf(n) {
	case KindComment:
		return indent + "{/* " + strings.TrimSpace(n.Data) + " */}"
	case KindText:
		text := strings.TrimSpace(n.Data)
		if text == "" {
			return ""
		}
		return indent + text
	case KindElement:
		tag := strings.ToLower(n.Data)
		if tag == "script" {
			return w.script(n, indent)
		}
		return w.element(n, tag, indent)
	default:
		return ""
	}
}

func (w *walker) script(n *html.Node, indent string) string {
	code := strings.TrimSpace(textContent(n))
	id, _ := attr(n, "id")
	sourceID := code != "" && id != ""
	var props strings.Builder
	for _, a := range n.Attr {
		name := attrName(a)
		switch {
		case name == "async":
			props.WriteString(" async")
		case name == "id" && code != "" && !sourceID:
			// an empty id is replaced by a generated one
		default:
			props.WriteString(" " + name + `="` + a.Val + `"`)
		}
	}
	if code == "" {
		return indent + "<" + ScriptComponent + props.String() + ` strategy="` + ScriptStrategy + `" />`
	}
	lead := ""
	if !sourceID {
		id = w.nextID()
		lead = ` id="` + id + `"`
	}
	if splitsLiteral(code) {
		w.warn(WarnScriptLiteral, "script", id)
	}
	return indent + "<" + ScriptComponent + lead + props.String() + ` strategy="` + ScriptStrategy + `">` +
		"\n  " + formatScript(code) +
		"\n" + indent + "</" + ScriptComponent + ">"
}

func (w *walker) element(n *html.Node, tag, indent string) string {
	var props strings.Builder
	for _, a := range n.Attr {
		name := attrName(a)
		if name == "style" {
			w.checkStyle(tag, a.Val)
			props.WriteString(" style={" + styleLiteral(a.Val) + "}")
			continue
		}
		props.WriteString(" " + name + `="` + a.Val + `"`)
	}
	if voidTags[tag] {
		return indent + "<" + tag + props.String() + " />"
	}
	var children []string
	// template content is a separate fragment in the DOM, not children
	for c := n.FirstChild; c != nil && tag != "template"; c = c.NextSibling {
		if out := w.node(c, indent+indentStep); out != "" {
			children = append(children, out)
		}
	}
	open := indent + "<" + tag + props.String() + ">"
	closing := "</" + tag + ">"
	if len(children) == 0 {
		return open + closing
	}
	return open + "\n" + strings.Join(children, "\n") + "\n" + indent + closing
}

func (w *walker) checkStyle(tag, raw string) {
	_, skipped := parseStyle(raw)
	for _, decl := range skipped {
		w.warn(WarnStyleSkipped, tag, decl)
	}
	if err := checkStyle(raw); err != nil {
		w.warn(WarnStyleRejected, tag, err.Error())
	}
}

// attrName restores the prefix x/net/html splits off foreign attributes,
// so xlink:href stays xlink:href.
func attrName(a html.Attribute) string {
	if a.Namespace != "" {
		return a.Namespace + ":" + a.Key
	}
	return a.Key
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if attrName(a) == key {
			return a.Val, true
		}
	}
	return "", false
}

// textContent concatenates every descendant text node, like the DOM
// property of the same name.
func textContent(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(cur *html.Node) {
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
			visit(c)
		}
	}
	visit(n)
	return b.String()
}
