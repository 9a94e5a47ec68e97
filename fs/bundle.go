// Package fs provides the on-disk skill bundle.
package fs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jcharovsky/docs2skill"
)

// maxCollisionSuffix bounds the _N suffixes tried for one stem.
const maxCollisionSuffix = 10000

// Ensure Bundle implements docs2skill.Bundle at compile time.
var _ docs2skill.Bundle = (*Bundle)(nil)

// Bundle is a skill bundle directory on the local filesystem.
type Bundle struct {
	path string
}

// CreateBundle creates the bundle directory at path (and any parents) if it
// does not exist. Existing directories are reused.
func CreateBundle(path string) (*Bundle, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, fmt.Errorf("create bundle directory: %w", err)
	}
	return &Bundle{path: abs}, nil
}

// Path returns the absolute path of the bundle directory.
func (b *Bundle) Path() string {
	return b.path
}

func (b *Bundle) resourcesDir() string {
	return filepath.Join(b.path, docs2skill.ResourcesDir)
}

// SavePage writes page to resources/<stem>.md. Existing files are never
// overwritten; <stem>_1.md, <stem>_2.md, ... are tried in turn.
func (b *Bundle) SavePage(page *docs2skill.ArchivedPage) error {
	if page.Stem == "" {
		return docs2skill.Errorf(docs2skill.EINVALID, "page stem required")
	}

	dir := b.resourcesDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	content := []byte(FormatPage(page))
	for i := 0; i < maxCollisionSuffix; i++ {
		name := page.Stem + docs2skill.MarkdownExt
		if i > 0 {
			name = fmt.Sprintf("%s_%d%s", page.Stem, i, docs2skill.MarkdownExt)
		}

		f, err := os.OpenFile(filepath.Join(dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, fs.ErrExist) {
			continue
		} else if err != nil {
			return err
		}

		if _, err := f.Write(content); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		page.Filename = name
		return nil
	}
	return docs2skill.Errorf(docs2skill.ECONFLICT, "no free filename for stem %q", page.Stem)
}

// FormatPage renders an archived page with its title and source header.
func FormatPage(page *docs2skill.ArchivedPage) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(page.Stem)
	b.WriteString("\n\n**Source URL:** ")
	b.WriteString(page.SourceURL)
	b.WriteString("\n\n---\n\n")
	b.WriteString(page.Markdown)
	return b.String()
}

// Resources lists the Markdown files in the resources directory, sorted.
// A missing resources directory yields no files.
func (b *Bundle) Resources() ([]string, error) {
	entries, err := os.ReadDir(b.resourcesDir())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), docs2skill.MarkdownExt) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Excerpt returns the first n characters of a resource file.
func (b *Bundle) Excerpt(name string, n int) (string, error) {
	if name != filepath.Base(name) {
		return "", docs2skill.Errorf(docs2skill.EINVALID, "invalid resource name %q", name)
	}

	f, err := os.Open(filepath.Join(b.resourcesDir(), name))
	if errors.Is(err, fs.ErrNotExist) {
		return "", docs2skill.Errorf(docs2skill.ENOTFOUND, "resource %q not found", name)
	} else if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, int64(n*utf8.UTFMax)))
	if err != nil {
		return "", err
	}

	s := strings.ToValidUTF8(string(data), "")
	if utf8.RuneCountInString(s) <= n {
		return s, nil
	}
	return string([]rune(s)[:n]), nil
}

// Rename moves the bundle to a sibling directory called name. It refuses to
// replace an existing path and leaves the bundle untouched on failure.
func (b *Bundle) Rename(name string) error {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return docs2skill.Errorf(docs2skill.EINVALID, "invalid bundle name %q", name)
	}

	target := filepath.Join(filepath.Dir(b.path), name)
	if target == b.path {
		return nil
	}
	if _, err := os.Lstat(target); err == nil {
		return docs2skill.Errorf(docs2skill.ECONFLICT, "%s already exists", target)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.Rename(b.path, target); err != nil {
		return fmt.Errorf("rename bundle: %w", err)
	}
	b.path = target
	return nil
}

// WriteManifest writes content verbatim to SKILL.md at the bundle root.
func (b *Bundle) WriteManifest(content string) error {
	return os.WriteFile(filepath.Join(b.path, docs2skill.ManifestFilename), []byte(content), 0644)
}
