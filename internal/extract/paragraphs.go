// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
)

// blankLine matches a paragraph break: a newline, any whitespace-only lines,
// and the newline that ends them.
var blankLine = regexp.MustCompile(`\n[ \t\f\v\r]*(?:\n[ \t\f\v\r]*)*\n`)

// SplitParagraphs splits text on blank lines. Paragraphs are trimmed,
// whitespace-only paragraphs are dropped, and source order is kept.
func SplitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var paras []string
	for _, p := range blankLine.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			paras = append(paras, p)
		}
	}
	return paras
}
