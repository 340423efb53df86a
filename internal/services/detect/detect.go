package detect

import "strings"

// Match reports the first banned word contained in text. Matching is
// case-insensitive plain substring containment: a word embedded inside a
// larger word still matches. Word order follows the policy list.
func Match(text string, words []string) (string, bool) {
	if text == "" {
		return "", false
	}

	low := strings.ToLower(text)
	for _, word := range words {
		norm := strings.ToLower(strings.TrimSpace(word))
		if norm != "" && strings.Contains(low, norm) {
			return word, true
		}
	}
	return "", false
}
