package docs2skill

import (
	"net/url"
	"regexp"
	"strings"
)

// Filename limits.
const (
	maxFilenameSegments = 3
	maxFilenameLen      = 100
	minHyphenCut        = 50
)

// stopSegments are path segments that say nothing about a page's content.
var stopSegments = map[string]bool{
	"docs":          true,
	"documentation": true,
	"reference":     true,
	"guide":         true,
	"api-reference": true,
	"en":            true,
	"v1":            true,
	"v2":            true,
	"v3":            true,
}

var (
	pageExtRe   = regexp.MustCompile(`(?i)\.(html|htm|php|asp|aspx)$`)
	unsafeRe    = regexp.MustCompile(`[^A-Za-z0-9_-]`)
	hyphenRunRe = regexp.MustCompile(`-+`)
)

// DomainToken returns the short site name for a URL: the second-to-last label
// of the host (port dropped), or the only label, lowercased.
// Example: https://docs.brightdata.com:8443/x → brightdata
func DomainToken(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	labels := strings.Split(u.Hostname(), ".")
	name := labels[0]
	if len(labels) >= 2 {
		name = labels[len(labels)-2]
	}
	return strings.ToLower(name)
}

// Filename derives a filesystem-safe, content-descriptive file stem from the
// path of a URL. The result is deterministic and never empty.
// Example: https://example.com/docs/v2/api-reference/webhooks/events → webhooks-events
func Filename(rawURL string) string {
	path := strings.Trim(rawPath(rawURL), "/")
	if path == "" {
		return "index"
	}

	all := strings.Split(path, "/")
	segments := make([]string, 0, len(all))
	for _, s := range all {
		if !stopSegments[strings.ToLower(s)] {
			segments = append(segments, s)
		}
	}
	if len(segments) == 0 {
		segments = all[len(all)-1:]
	}
	if len(segments) > maxFilenameSegments {
		segments = segments[len(segments)-maxFilenameSegments:]
	}

	name := strings.Join(segments, "-")
	name = pageExtRe.ReplaceAllString(name, "")
	name = unsafeRe.ReplaceAllString(name, "-")
	name = hyphenRunRe.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")

	if len(name) > maxFilenameLen {
		name = name[:maxFilenameLen]
		if i := strings.LastIndex(name, "-"); i > minHyphenCut {
			name = name[:i]
		}
	}

	if name == "" {
		return "page"
	}
	return name
}

// rawPath returns the path of rawURL exactly as written: the text after
// scheme://authority up to the first '?' or '#'. No escaping or unescaping
// is applied.
func rawPath(rawURL string) string {
	s := rawURL
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+len("://"):]
		j := strings.IndexByte(s, '/')
		if j < 0 {
			return ""
		}
		s = s[j:]
	}
	return s
}
