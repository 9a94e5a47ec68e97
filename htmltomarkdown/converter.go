// Package htmltomarkdown converts documentation pages to Markdown using
// goquery for pruning and html-to-markdown for rendering.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/jcharovsky/docs2skill"
)

// PrunedElements lists the elements removed, with their subtrees, before
// conversion.
const PrunedElements = "script, style, nav, footer, header, iframe, noscript"

// Ensure Converter implements docs2skill.Converter at compile time.
var _ docs2skill.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert prunes non-content elements from html and renders the remaining
// body as Markdown. Head content never reaches the output.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", docs2skill.Errorf(docs2skill.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", docs2skill.Errorf(docs2skill.EINVALID, "failed to parse HTML: %v", err)
	}
	doc.Find(PrunedElements).Remove()

	body, err := doc.Find("body").Html()
	if err != nil {
		return "", err
	}

	result, err := c.conv.ConvertString(body)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}
