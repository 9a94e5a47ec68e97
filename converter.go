package docs2skill

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert strips non-content elements (scripts, styles, navigation,
	// headers, footers, frames) from a full HTML document and returns the
	// Markdown representation of what remains.
	Convert(html string) (string, error)
}
