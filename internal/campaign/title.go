package campaign

import "strings"

// DefaultTitle is used when no text is available to derive a title from.
const DefaultTitle = "Special Offer!"

const maxTitleLen = 50

// ExtractTitle derives a widget title from recommendation text: the first
// non-empty sentence, capped at 50 characters with a trailing ellipsis. The
// client script carries the same rule; both must produce identical output for
// identical input.
func ExtractTitle(text string) string {
	if text == "" {
		return DefaultTitle
	}
	sentences := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		return truncateTitle(s)
	}
	return truncateTitle(text)
}

func truncateTitle(s string) string {
	// count characters, not bytes, to match the client-side rule
	r := []rune(s)
	if len(r) > maxTitleLen {
		return string(r[:maxTitleLen-3]) + "..."
	}
	return s
}
