package mock

import "github.com/jcharovsky/docs2skill"

var _ docs2skill.Bundle = (*Bundle)(nil)

// Bundle is a mock implementation of docs2skill.Bundle.
type Bundle struct {
	PathFn          func() string
	SavePageFn      func(page *docs2skill.ArchivedPage) error
	ResourcesFn     func() ([]string, error)
	ExcerptFn       func(name string, n int) (string, error)
	RenameFn        func(name string) error
	WriteManifestFn func(content string) error
}

func (b *Bundle) Path() string {
	return b.PathFn()
}

func (b *Bundle) SavePage(page *docs2skill.ArchivedPage) error {
	return b.SavePageFn(page)
}

func (b *Bundle) Resources() ([]string, error) {
	return b.ResourcesFn()
}

func (b *Bundle) Excerpt(name string, n int) (string, error) {
	return b.ExcerptFn(name, n)
}

func (b *Bundle) Rename(name string) error {
	return b.RenameFn(name)
}

func (b *Bundle) WriteManifest(content string) error {
	return b.WriteManifestFn(content)
}
