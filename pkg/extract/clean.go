package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// decorativeRegex matches bullet and star glyphs commonly used to frame
// promotional messages.
var decorativeRegex = regexp.MustCompile(`[•·●◆◇★☆▪▫]`)

// markdownLinkRegex matches markdown-style links and captures the label.
var markdownLinkRegex = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)

// CleanText strips emoji and decorative glyphs from promotional text and
// collapses all whitespace, newlines included, to single spaces. Store,
// price and category extraction run over this form.
func CleanText(raw string) string {
	if raw == "" {
		return ""
	}
	stripped := stripSymbols(raw)
	stripped = decorativeRegex.ReplaceAllString(stripped, "")
	return strings.Join(strings.Fields(stripped), " ")
}

// cleanLines strips the same noise as CleanText plus markdown markup, but
// preserves line structure. Title extraction needs lines because the
// product name is usually the first meaningful one.
func cleanLines(raw string) []string {
	s := stripSymbols(raw)
	s = decorativeRegex.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "*", "")
	s = strings.ReplaceAll(s, "_", "")
	s = markdownLinkRegex.ReplaceAllString(s, "$1")

	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// stripSymbols drops symbol-class (emoji) and unassigned code points,
// keeping everything else intact.
func stripSymbols(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.Is(unicode.So, r) {
			continue
		}
		if !unicode.IsGraphic(r) && !unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
