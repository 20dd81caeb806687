package convert

import "strings"

// NotFoundMessage is the instruction text when neither region produced
// markup.
const NotFoundMessage = "Could not parse valid <script> or <noscript> tags. Please check your input."

const headSteps = "1. Import the Script and Head components:\n" +
	"   import Script from 'next/script';\n" +
	"   import Head from 'next/head';\n\n" +
	"2. Paste the \"Head Code\" inside the <Head> component in your main layout file.\n\n"

const bodyStep = " Paste the \"Body Code\" right after the opening <body> tag in your layout.\n\n"

// instructions derives the setup guidance from which regions have output.
// Body numbering continues after the head steps when both are present.
func instructions(head, body string) string {
	var b strings.Builder
	if head != "" {
		b.WriteString(headSteps)
	}
	if body != "" {
		if head != "" {
			b.WriteString("3.")
		} else {
			b.WriteString("1.")
		}
		b.WriteString(bodyStep)
	}
	if b.Len() == 0 {
		return NotFoundMessage
	}
	return strings.TrimSpace(b.String())
}
