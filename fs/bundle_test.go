package fs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jcharovsky/docs2skill"
	"github.com/jcharovsky/docs2skill/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ docs2skill.Bundle = (*fs.Bundle)(nil)

func newBundle(t *testing.T) *fs.Bundle {
	t.Helper()
	b, err := fs.CreateBundle(filepath.Join(t.TempDir(), "acme"))
	require.NoError(t, err)
	return b
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestCreateBundle(t *testing.T) {
	t.Parallel()

	t.Run("creates nested directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out", "nested", "acme")

		b, err := fs.CreateBundle(path)

		require.NoError(t, err)
		assert.DirExists(t, path)
		assert.Equal(t, path, b.Path())
	})

	t.Run("reuses an existing directory", func(t *testing.T) {
		t.Parallel()

		path := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(path, "keep.txt"), []byte("x"), 0644))

		_, err := fs.CreateBundle(path)

		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(path, "keep.txt"))
	})

	t.Run("fails when a file is in the way", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

		_, err := fs.CreateBundle(filepath.Join(path, "acme"))

		require.Error(t, err)
	})
}

func TestBundle_SavePage(t *testing.T) {
	t.Parallel()

	t.Run("writes header and body", func(t *testing.T) {
		t.Parallel()

		b := newBundle(t)
		page := &docs2skill.ArchivedPage{
			SourceURL: "https://acme.dev/docs/webhooks",
			Stem:      "webhooks",
			Markdown:  "Acme sends events.",
		}

		require.NoError(t, b.SavePage(page))

		assert.Equal(t, "webhooks.md", page.Filename)
		got := readFile(t, filepath.Join(b.Path(), "resources", "webhooks.md"))
		assert.Equal(t, "# webhooks\n\n**Source URL:** https://acme.dev/docs/webhooks\n\n---\n\nAcme sends events.", got)
	})

	t.Run("never overwrites on stem collision", func(t *testing.T) {
		t.Parallel()

		b := newBundle(t)
		urls := []string{
			"https://acme.dev/docs/webhooks",
			"https://acme.dev/guide/webhooks",
			"https://acme.dev/reference/webhooks",
		}

		var names []string
		for _, u := range urls {
			page := &docs2skill.ArchivedPage{SourceURL: u, Stem: "webhooks", Markdown: "body of " + u}
			require.NoError(t, b.SavePage(page))
			names = append(names, page.Filename)
		}

		assert.Equal(t, []string{"webhooks.md", "webhooks_1.md", "webhooks_2.md"}, names)
		for i, name := range names {
			assert.Contains(t, readFile(t, filepath.Join(b.Path(), "resources", name)), "body of "+urls[i])
		}
	})

	t.Run("preexisting files are preserved", func(t *testing.T) {
		t.Parallel()

		b := newBundle(t)
		dir := filepath.Join(b.Path(), "resources")
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "index.md"), []byte("from a previous run"), 0644))

		page := &docs2skill.ArchivedPage{SourceURL: "https://acme.dev/", Stem: "index", Markdown: "new"}
		require.NoError(t, b.SavePage(page))

		assert.Equal(t, "index_1.md", page.Filename)
		assert.Equal(t, "from a previous run", readFile(t, filepath.Join(dir, "index.md")))
	})

	t.Run("requires a stem", func(t *testing.T) {
		t.Parallel()

		err := newBundle(t).SavePage(&docs2skill.ArchivedPage{Markdown: "x"})

		assert.Equal(t, docs2skill.EINVALID, docs2skill.ErrorCode(err))
	})
}

func TestBundle_Resources(t *testing.T) {
	t.Parallel()

	t.Run("missing resources directory", func(t *testing.T) {
		t.Parallel()

		names, err := newBundle(t).Resources()

		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("lists markdown files sorted", func(t *testing.T) {
		t.Parallel()

		b := newBundle(t)
		for _, stem := range []string{"webhooks", "auth", "billing"} {
			require.NoError(t, b.SavePage(&docs2skill.ArchivedPage{SourceURL: "https://acme.dev/" + stem, Stem: stem, Markdown: stem}))
		}
		require.NoError(t, os.WriteFile(filepath.Join(b.Path(), "resources", "notes.txt"), []byte("x"), 0644))
		require.NoError(t, os.Mkdir(filepath.Join(b.Path(), "resources", "dir.md"), 0755))

		names, err := b.Resources()

		require.NoError(t, err)
		assert.Equal(t, []string{"auth.md", "billing.md", "webhooks.md"}, names)
	})
}

func TestBundle_Excerpt(t *testing.T) {
	t.Parallel()

	b := newBundle(t)
	body := strings.Repeat("é", 300)
	require.NoError(t, b.SavePage(&docs2skill.ArchivedPage{SourceURL: "https://acme.dev/x", Stem: "x", Markdown: body}))

	t.Run("counts characters not bytes", func(t *testing.T) {
		t.Parallel()

		got, err := b.Excerpt("x.md", 200)

		require.NoError(t, err)
		assert.Equal(t, 200, len([]rune(got)))
		assert.True(t, strings.HasPrefix(got, "# x\n\n**Source URL:** https://acme.dev/x"))
	})

	t.Run("short files are returned whole", func(t *testing.T) {
		t.Parallel()

		got, err := b.Excerpt("x.md", 10000)

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(got, body))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := b.Excerpt("missing.md", 10)

		assert.Equal(t, docs2skill.ENOTFOUND, docs2skill.ErrorCode(err))
	})

	t.Run("rejects paths", func(t *testing.T) {
		t.Parallel()

		_, err := b.Excerpt("../SKILL.md", 10)

		assert.Equal(t, docs2skill.EINVALID, docs2skill.ErrorCode(err))
	})
}

func TestBundle_Rename(t *testing.T) {
	t.Parallel()

	t.Run("moves directory and keeps contents", func(t *testing.T) {
		t.Parallel()

		b := newBundle(t)
		require.NoError(t, b.SavePage(&docs2skill.ArchivedPage{SourceURL: "https://acme.dev/a", Stem: "a", Markdown: "a"}))
		old := b.Path()

		require.NoError(t, b.Rename("use-acme"))

		assert.Equal(t, filepath.Join(filepath.Dir(old), "use-acme"), b.Path())
		assert.NoDirExists(t, old)
		assert.FileExists(t, filepath.Join(b.Path(), "resources", "a.md"))
	})

	t.Run("same name is a no-op", func(t *testing.T) {
		t.Parallel()

		b := newBundle(t)
		old := b.Path()

		require.NoError(t, b.Rename("acme"))

		assert.Equal(t, old, b.Path())
	})

	t.Run("refuses to replace an existing directory", func(t *testing.T) {
		t.Parallel()

		b := newBundle(t)
		old := b.Path()
		taken := filepath.Join(filepath.Dir(old), "use-acme")
		require.NoError(t, os.Mkdir(taken, 0755))

		err := b.Rename("use-acme")

		assert.Equal(t, docs2skill.ECONFLICT, docs2skill.ErrorCode(err))
		assert.Equal(t, old, b.Path())
		assert.DirExists(t, old)
	})

	t.Run("rejects names with separators", func(t *testing.T) {
		t.Parallel()

		b := newBundle(t)

		assert.Equal(t, docs2skill.EINVALID, docs2skill.ErrorCode(b.Rename("../escape")))
		assert.Equal(t, docs2skill.EINVALID, docs2skill.ErrorCode(b.Rename("")))
		assert.Equal(t, docs2skill.EINVALID, docs2skill.ErrorCode(b.Rename("..")))
	})
}

func TestBundle_WriteManifest(t *testing.T) {
	t.Parallel()

	b := newBundle(t)
	manifest := "---\nname: use-acme\n---\n\n# Acme\n"

	require.NoError(t, b.WriteManifest(manifest))

	assert.Equal(t, manifest, readFile(t, filepath.Join(b.Path(), "SKILL.md")))
}
