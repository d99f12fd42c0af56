package openai

import "strings"

// stripCodeFences removes markdown code fences a model may wrap its answer in.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```JSON")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// truncateRunes shortens s to at most n runes.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// cleanKeywords trims keywords, drops blanks and case-insensitive duplicates,
// and keeps at most limit entries in their original order.
func cleanKeywords(keywords []string, limit int) []string {
	seen := make(map[string]bool, len(keywords))
	cleaned := make([]string, 0, min(len(keywords), limit))
	for _, kw := range keywords {
		kw = strings.TrimSpace(strings.Trim(kw, "#,;"))
		key := strings.ToLower(kw)
		if kw == "" || seen[key] {
			continue
		}
		seen[key] = true
		cleaned = append(cleaned, kw)
		if len(cleaned) == limit {
			break
		}
	}
	return cleaned
}

// isLetter returns true if the rune is an ASCII letter.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
