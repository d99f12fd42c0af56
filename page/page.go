// Package page extracts readable content from fetched HTML documents.
//
// A Page carries the document title, the visible text with one line per
// text node, and the embedded image and audio resources in document order.
package page

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Page is the extracted content of one HTML document.
type Page struct {
	// Title is the trimmed <title> text, or "" when the document has none.
	Title string

	// Text is the visible text: script, style and noscript content removed,
	// one trimmed non-blank line per text fragment.
	Text string

	// Images holds the image references taken from src or data-src.
	Images []Resource

	// Audio holds the audio references taken from <audio> and <source> tags.
	Audio []Resource
}

// Resource is an embedded media reference.
type Resource struct {
	// URL is the absolute resource URL.
	URL string

	// Index is the position of the tag among all tags of its kind in the
	// document, including tags without a usable source.
	Index int
}

// Parse extracts a Page from html. Relative media references are resolved
// against pageURL.
func Parse(html, pageURL string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page URL %q: %w", pageURL, err)
	}

	p := &Page{
		Title:  extractTitle(doc),
		Images: findImages(doc, base),
		Audio:  findAudio(doc, base),
	}

	// Text extraction strips nodes from the tree, so it runs last.
	p.Text = extractText(doc)
	return p, nil
}

func extractTitle(doc *goquery.Document) string {
	title := doc.Find("title").First()
	if title.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(title.Text())
}

func extractText(doc *goquery.Document) string {
	doc.Find("script, style, noscript").Remove()

	var lines []string
	collectText(doc.Selection, &lines)
	return strings.Join(lines, "\n")
}

func collectText(sel *goquery.Selection, lines *[]string) {
	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		switch goquery.NodeName(s) {
		case "#text":
			for _, line := range strings.Split(s.Text(), "\n") {
				if line = strings.TrimSpace(line); line != "" {
					*lines = append(*lines, line)
				}
			}
		case "#comment", "#doctype":
		default:
			collectText(s, lines)
		}
	})
}

func findImages(doc *goquery.Document, base *url.URL) []Resource {
	images := []Resource{}
	doc.Find("img").Each(func(i int, s *goquery.Selection) {
		src := strings.TrimSpace(s.AttrOr("src", ""))
		if src == "" {
			src = strings.TrimSpace(s.AttrOr("data-src", ""))
		}
		if resolved := resolveRef(base, src); resolved != "" {
			images = append(images, Resource{URL: resolved, Index: i})
		}
	})
	return images
}

func findAudio(doc *goquery.Document, base *url.URL) []Resource {
	audio := []Resource{}
	doc.Find("audio, source").Each(func(i int, s *goquery.Selection) {
		src := strings.TrimSpace(s.AttrOr("src", ""))
		if resolved := resolveRef(base, src); resolved != "" {
			audio = append(audio, Resource{URL: resolved, Index: i})
		}
	})
	return audio
}

// resolveRef returns ref made absolute against base, or "" when ref is
// empty or unparseable.
func resolveRef(base *url.URL, ref string) string {
	if ref == "" {
		return ""
	}
	u, err := base.Parse(ref)
	if err != nil {
		return ""
	}
	return u.String()
}
