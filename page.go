package docs2skill

import (
	"context"
	"sort"
)

// LinkSet is a set of absolute URLs.
type LinkSet map[string]struct{}

// NewLinkSet returns a LinkSet holding urls.
func NewLinkSet(urls ...string) LinkSet {
	s := make(LinkSet, len(urls))
	for _, u := range urls {
		s.Add(u)
	}
	return s
}

// Add inserts url into the set.
func (s LinkSet) Add(url string) {
	s[url] = struct{}{}
}

// Contains reports whether url is in the set.
func (s LinkSet) Contains(url string) bool {
	_, ok := s[url]
	return ok
}

// Len returns the number of URLs in the set.
func (s LinkSet) Len() int {
	return len(s)
}

// Sorted returns the URLs in lexical order.
func (s LinkSet) Sorted() []string {
	urls := make([]string, 0, len(s))
	for u := range s {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls
}

// ArchivedPage is one linked page converted to Markdown.
type ArchivedPage struct {
	SourceURL string
	Stem      string // naming engine output
	Filename  string // on-disk name after collision resolution; set by Bundle.SavePage
	Markdown  string
	Checksum  string
}

// ArchiveProgress reports progress during archiving.
type ArchiveProgress struct {
	URL       string
	Completed int
	Total     int
	Filename  string
	Checksum  string // xxhash of the saved Markdown, empty unless saved
	Error     error
}

// ArchiveProgressFunc is called as each URL is processed.
type ArchiveProgressFunc func(ArchiveProgress)

// Bundle is the output directory for one run: Markdown resources plus a
// manifest. A bundle is created before archiving and never deleted.
type Bundle interface {
	// Path returns the current location of the bundle directory.
	Path() string

	// SavePage writes the page under the resources directory without
	// overwriting existing files and records the chosen name in page.Filename.
	SavePage(page *ArchivedPage) error

	// Resources lists the Markdown files in the resources directory, sorted.
	Resources() ([]string, error)

	// Excerpt returns up to n characters from the start of a resource file.
	Excerpt(name string, n int) (string, error)

	// Rename moves the bundle to a sibling directory called name.
	// On failure the bundle keeps its current path.
	Rename(name string) error

	// WriteManifest writes the SKILL.md file at the bundle root.
	WriteManifest(content string) error
}

// LinkCollector gathers the outbound links of a single page.
type LinkCollector interface {
	// Collect fetches seedURL and returns every hyperlink it contains,
	// resolved to absolute form. With sameHost only links on the seed's host
	// are kept. Failures yield an empty set.
	Collect(ctx context.Context, seedURL string, sameHost bool) LinkSet
}

// PageArchiver fetches, converts, and saves pages into a bundle.
type PageArchiver interface {
	// ArchiveAll processes urls in order and returns how many were saved.
	// Per-URL failures are isolated; an error is returned only when ctx ends.
	ArchiveAll(ctx context.Context, bundle Bundle, urls []string, progress ArchiveProgressFunc) (int, error)
}
