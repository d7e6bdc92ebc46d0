package extract

import "regexp"

// urlRegexes match product links, full URLs first and then bare
// short-link hosts that appear without a scheme.
var urlRegexes = []*regexp.Regexp{
	regexp.MustCompile(`https?://\S+`),
	regexp.MustCompile(`(?i)(?:amzn\.to|fkrt\.it|myntra\.com|ajio\.com)/\S+`),
}

// trailingPunctRegex strips sentence punctuation glued to a URL.
var trailingPunctRegex = regexp.MustCompile(`[,.;:!?)]+$`)

// ExtractLink returns the first URL-shaped token in raw text, or "" when
// none is present. Runs on the raw message because cleaning can mangle
// URL characters.
func ExtractLink(text string) string {
	for _, re := range urlRegexes {
		if m := re.FindString(text); m != "" {
			return trailingPunctRegex.ReplaceAllString(m, "")
		}
	}
	return ""
}
