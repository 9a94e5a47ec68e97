package mock

import "github.com/jcharovsky/docs2skill"

var _ docs2skill.Converter = (*Converter)(nil)

// Converter is a mock implementation of docs2skill.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
