// Package docs2skill turns the pages linked from one documentation URL into a
// local skill bundle: a directory of Markdown resources plus a SKILL.md manifest
// written by an LLM provider.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, gemini/).
package docs2skill

// Bundle layout names.
const (
	ResourcesDir     = "resources"
	ManifestFilename = "SKILL.md"
	MarkdownExt      = ".md"
)
