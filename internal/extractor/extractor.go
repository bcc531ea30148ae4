// Package extractor pulls loosely structured county data out of rendered
// HTML.
//
// No page schema is assumed: a union of broad structural selectors is
// harvested into an unranked fragment bag, alongside every outbound link and
// a bounded prefix of the page's plain text. Ranking and interpretation
// happen downstream in the parser. Truncation limits keep the downstream
// regex work bounded even on pathological pages.
package extractor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const (
	// MaxFragmentText rejects whole-page dumps masquerading as one element.
	MaxFragmentText = 500
	// MaxFragments caps the fragment bag.
	MaxFragments = 100
	// MaxLinks caps the harvested outbound links.
	MaxLinks = 50
	// MaxLinkText drops links whose anchor text is a paragraph.
	MaxLinkText = 200
	// MaxBodyText bounds the plain-text prefix kept for regex scanning.
	MaxBodyText = 10000

	fragmentHTMLPrefix = 500
)

// selectors are tried in order and unioned; none is authoritative.
var selectors = []string{
	"table tr",
	"tbody tr",
	"ul li",
	"ol li",
	"[class*='county']",
	"[class*='County']",
	"[class*='row']",
	"[class*='item']",
}

// Fragment is one candidate piece of county data.
type Fragment struct {
	Selector string `json:"selector"`
	Text     string `json:"text"`
	HTML     string `json:"html"`
}

// Link is one outbound hyperlink.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// PageData is the extractor's output for one page.
type PageData struct {
	BodyText  string     `json:"bodyText"`
	Fragments []Fragment `json:"potentialData"`
	Links     []Link     `json:"allLinks"`
}

// Extract parses rendered HTML into a PageData. The fragment bag holds the
// text of every element matching any selector whose text mentions "County"
// and stays under the length cap; deduplication happens downstream.
func Extract(html string) (*PageData, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	data := &PageData{
		Fragments: make([]Fragment, 0),
		Links:     make([]Link, 0),
	}

	for _, selector := range selectors {
		doc.Find(selector).EachWithBreak(func(i int, sel *goquery.Selection) bool {
			if len(data.Fragments) >= MaxFragments {
				return false
			}

			text := strings.TrimSpace(sel.Text())
			if text == "" || len(text) >= MaxFragmentText || !strings.Contains(text, "County") {
				return true
			}

			inner, _ := sel.Html()
			if len(inner) > fragmentHTMLPrefix {
				inner = inner[:fragmentHTMLPrefix]
			}

			data.Fragments = append(data.Fragments, Fragment{
				Selector: selector,
				Text:     text,
				HTML:     inner,
			})
			return true
		})

		if len(data.Fragments) >= MaxFragments {
			break
		}
	}

	doc.Find("a[href]").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if len(data.Links) >= MaxLinks {
			return false
		}

		text := strings.TrimSpace(sel.Text())
		if text == "" || len(text) >= MaxLinkText {
			return true
		}

		href, _ := sel.Attr("href")
		data.Links = append(data.Links, Link{Text: text, Href: href})
		return true
	})

	data.BodyText = Truncate(collapseWhitespace(doc.Find("body").Text()), MaxBodyText)

	return data, nil
}

// SetBodyText replaces the body text with rendered text from a browser
// engine, which reflects CSS visibility and line breaks better than the
// static text walk. The same length bound applies.
func (d *PageData) SetBodyText(rendered string) {
	if rendered != "" {
		d.BodyText = Truncate(rendered, MaxBodyText)
	}
}

// Truncate bounds s to at most n bytes, backing off to a rune boundary so
// the cut never leaves a dangling partial encoding.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// collapseWhitespace tidies the static text walk, which otherwise inherits
// every run of indentation from the source markup. Newlines are preserved so
// line-oriented patterns still work.
func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastSpace := false
	lastNewline := false
	for _, r := range s {
		switch {
		case r == '\n':
			if !lastNewline {
				b.WriteRune('\n')
			}
			lastNewline = true
			lastSpace = true
		case r == ' ' || r == '\t' || r == '\r':
			if !lastSpace {
				b.WriteRune(' ')
			}
			lastSpace = true
		default:
			b.WriteRune(r)
			lastSpace = false
			lastNewline = false
		}
	}

	return strings.TrimSpace(b.String())
}
