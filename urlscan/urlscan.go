// Package urlscan finds http and https URLs embedded in free text.
package urlscan

import "regexp"

// urlPattern matches a scheme, an optional www. prefix, a host with a dotted
// top-level label and an optional path/query tail.
var urlPattern = regexp.MustCompile(`https?://(?:www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b(?:[-a-zA-Z0-9()@:%_+.~#?&/=]*)`)

// Extract returns every URL in text in order of appearance.
// Duplicates are kept. The result is never nil.
func Extract(text string) []string {
	matches := urlPattern.FindAllString(text, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}
