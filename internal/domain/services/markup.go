package services

import (
	"regexp"
	"strings"
)

var strongPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// RenderHTML converts a narrative returned by the model into HTML fragments.
// It is a single-pass, line-oriented grammar with exactly two states: lines
// starting with "* " or "- " (after trimming) open and fill a <ul>, any other
// line closes it; non-blank lines outside a list become paragraphs and blank
// lines produce nothing. Paired **...** spans become <strong> in both cases.
//
// Nested lists, numbered lists, tables and headings are intentionally not
// supported; they pass through as plain paragraphs. The report layout depends
// on this exact shape, so the grammar must not be extended quietly.
func RenderHTML(text string) string {
	var htmlLines []string
	inList := false

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)

		if strings.HasPrefix(stripped, "* ") || strings.HasPrefix(stripped, "- ") {
			if !inList {
				htmlLines = append(htmlLines, "<ul>")
				inList = true
			}
			item := applyEmphasis(stripped[2:])
			htmlLines = append(htmlLines, "<li>"+item+"</li>")
			continue
		}

		if inList {
			htmlLines = append(htmlLines, "</ul>")
			inList = false
		}

		line = applyEmphasis(line)
		if strings.TrimSpace(line) != "" {
			htmlLines = append(htmlLines, "<p>"+line+"</p>")
		}
	}

	if inList {
		htmlLines = append(htmlLines, "</ul>")
	}

	return strings.Join(htmlLines, "\n")
}

// applyEmphasis replaces each non-overlapping paired **...** delimiter with a
// strong span, left to right. An unmatched ** is left literal.
func applyEmphasis(text string) string {
	return strongPattern.ReplaceAllString(text, "<strong>$1</strong>")
}
