package docs2skill

import "context"

// Manifest request limits.
const (
	MaxExcerpts   = 10
	ExcerptLength = 200
)

// Excerpt is the opening text of one resource file.
type Excerpt struct {
	Filename string
	Text     string
}

// ManifestRequest is what the LLM is told about a bundle.
type ManifestRequest struct {
	DomainHint string
	SourceURL  string
	Filenames  []string
	Excerpts   []Excerpt
}

// ManifestResult is the parsed LLM reply.
type ManifestResult struct {
	CleanedName  string
	ManifestText string
}

// BundleFinalizer names a bundle and writes its manifest.
type BundleFinalizer interface {
	// Finalize asks the LLM for a manifest, renames the bundle to
	// use-<cleanedName> and writes SKILL.md. It returns the final bundle path.
	// Failures downgrade to an archive-only bundle and return the current path.
	Finalize(ctx context.Context, bundle Bundle, domainHint, sourceURL string) (string, error)
}
