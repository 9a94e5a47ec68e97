// Package skill asks an LLM provider to name a bundle and write its SKILL.md
// manifest.
package skill

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/jcharovsky/docs2skill"
)

// Ensure Finalizer implements docs2skill.BundleFinalizer at compile time.
var _ docs2skill.BundleFinalizer = (*Finalizer)(nil)

// Finalizer implements docs2skill.BundleFinalizer. Every failure downgrades
// the run to an archive-only bundle; Finalize never returns an error.
type Finalizer struct {
	Gateway docs2skill.Gateway
	Config  docs2skill.ProviderConfig
	Logger  *slog.Logger // optional
}

// Finalize names bundle and writes its manifest, returning the final path.
func (f *Finalizer) Finalize(ctx context.Context, bundle docs2skill.Bundle, domainHint, sourceURL string) (string, error) {
	log := f.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	if err := f.Config.Validate(); err != nil {
		log.Warn("skipping SKILL.md generation", "reason", docs2skill.ErrorMessage(err))
		return bundle.Path(), nil
	}

	req, err := BuildRequest(bundle, domainHint, sourceURL)
	if err != nil {
		log.Warn("skipping SKILL.md generation", "error", err)
		return bundle.Path(), nil
	}
	if len(req.Filenames) == 0 {
		log.Warn("skipping SKILL.md generation", "reason", "no resources in bundle")
		return bundle.Path(), nil
	}

	raw, err := f.Gateway.Generate(ctx, f.Config, SystemPrompt, BuildUserPrompt(req))
	if err != nil {
		log.Error("SKILL.md generation failed", "provider", f.Config.Provider, "error", err)
		return bundle.Path(), nil
	}

	result := ParseResult(raw, domainHint)
	name := BundleName(result.CleanedName)

	if filepath.Base(bundle.Path()) != name {
		old := bundle.Path()
		if err := bundle.Rename(name); err != nil {
			log.Warn("keeping bundle name", "path", old, "wanted", name, "error", err)
		} else {
			log.Info("renamed bundle", "from", old, "to", bundle.Path())
		}
	}

	checkFrontmatter(log, result.ManifestText, filepath.Base(bundle.Path()))

	if err := bundle.WriteManifest(result.ManifestText); err != nil {
		log.Error("failed to write SKILL.md", "path", bundle.Path(), "error", err)
		return bundle.Path(), nil
	}
	return bundle.Path(), nil
}

// BuildRequest describes bundle for the model: every resource name plus
// excerpts of the first few files.
func BuildRequest(bundle docs2skill.Bundle, domainHint, sourceURL string) (docs2skill.ManifestRequest, error) {
	names, err := bundle.Resources()
	if err != nil {
		return docs2skill.ManifestRequest{}, err
	}

	req := docs2skill.ManifestRequest{
		DomainHint: domainHint,
		SourceURL:  sourceURL,
		Filenames:  names,
	}
	for _, name := range names[:min(len(names), docs2skill.MaxExcerpts)] {
		text, err := bundle.Excerpt(name, docs2skill.ExcerptLength)
		if err != nil {
			return docs2skill.ManifestRequest{}, err
		}
		req.Excerpts = append(req.Excerpts, docs2skill.Excerpt{Filename: name, Text: text})
	}
	return req, nil
}

func checkFrontmatter(log *slog.Logger, manifest, bundleName string) {
	fm, err := ParseFrontmatter(manifest)
	if err != nil {
		log.Warn("SKILL.md frontmatter", "error", docs2skill.ErrorMessage(err))
		return
	}
	if fm.Name != bundleName {
		log.Warn("SKILL.md name does not match bundle", "name", fm.Name, "bundle", bundleName)
	}
}
