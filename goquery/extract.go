// Package goquery extracts hyperlinks from HTML documents using goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jcharovsky/docs2skill"
)

// ExtractLinks returns the absolute URL of every a[href] in html, resolved
// against baseURL, in document order and without duplicates. Unlike plain
// URL resolution, fragments are stripped, so /api#auth and /api#errors yield
// one link. Non-HTTP(S) targets (mailto:, javascript:, ...) are dropped.
// With sameHost only links whose host equals the base host (port included)
// are kept; subdomains count as different hosts.
func ExtractLinks(html string, baseURL string, sameHost bool) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, docs2skill.Errorf(docs2skill.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docs2skill.Errorf(docs2skill.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")

		resolved := resolveURL(base, href)
		if resolved == nil {
			return
		}
		if sameHost && resolved.Host != base.Host {
			return
		}

		u := resolved.String()
		if !seen[u] {
			seen[u] = true
			links = append(links, u)
		}
	})

	return links, nil
}

// resolveURL resolves href against base and strips the fragment.
// Returns nil when href cannot be parsed or does not point at an HTTP(S) resource.
func resolveURL(base *url.URL, href string) *url.URL {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return nil
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	resolved.RawFragment = ""

	switch resolved.Scheme {
	case "http", "https":
		return resolved
	default:
		return nil
	}
}
