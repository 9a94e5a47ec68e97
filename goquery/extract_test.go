package goquery_test

import (
	"testing"

	"github.com/jcharovsky/docs2skill"
	"github.com/jcharovsky/docs2skill/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLinks(t *testing.T) {
	t.Parallel()

	const seed = "https://docs.acme.dev/start/index.html"

	t.Run("resolves relative and absolute links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/api/auth">Auth</a>
<a href="webhooks">Webhooks</a>
<a href="../guide/intro">Intro</a>
<a href="https://docs.acme.dev/billing">Billing</a>
</body></html>`

		links, err := goquery.ExtractLinks(html, seed, true)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://docs.acme.dev/api/auth",
			"https://docs.acme.dev/start/webhooks",
			"https://docs.acme.dev/guide/intro",
			"https://docs.acme.dev/billing",
		}, links)
	})

	t.Run("same host filter is exact", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="https://docs.acme.dev/a">Same</a>
<a href="https://acme.dev/b">Parent domain</a>
<a href="https://blog.docs.acme.dev/c">Subdomain</a>
<a href="https://docs.acme.dev:8443/d">Other port</a>
<a href="https://github.com/acme">GitHub</a>
</body></html>`

		links, err := goquery.ExtractLinks(html, seed, true)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://docs.acme.dev/a"}, links)
	})

	t.Run("all domains keeps external links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/a">Same</a>
<a href="https://github.com/acme">GitHub</a>
</body></html>`

		links, err := goquery.ExtractLinks(html, seed, false)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://docs.acme.dev/a", "https://github.com/acme"}, links)
	})

	t.Run("protocol-relative links take the seed scheme", func(t *testing.T) {
		t.Parallel()

		html := `<a href="//docs.acme.dev/cdn-page">CDN</a>`

		links, err := goquery.ExtractLinks(html, seed, true)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://docs.acme.dev/cdn-page"}, links)
	})

	t.Run("fragments are stripped and duplicates collapse", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/api#auth">Auth section</a>
<a href="/api#errors">Errors section</a>
<a href="/api">API</a>
<a href="#top">Top</a>
</body></html>`

		links, err := goquery.ExtractLinks(html, seed, true)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://docs.acme.dev/api",
			"https://docs.acme.dev/start/index.html",
		}, links)
	})

	t.Run("drops non-HTTP schemes", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="mailto:support@acme.dev">Mail</a>
<a href="javascript:void(0)">JS</a>
<a href="tel:+15555555555">Phone</a>
<a href="ftp://docs.acme.dev/file">FTP</a>
<a href="/ok">OK</a>
</body></html>`

		links, err := goquery.ExtractLinks(html, seed, false)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://docs.acme.dev/ok"}, links)
	})

	t.Run("empty href resolves to the seed", func(t *testing.T) {
		t.Parallel()

		links, err := goquery.ExtractLinks(`<a href="">Self</a>`, seed, true)

		require.NoError(t, err)
		assert.Equal(t, []string{seed}, links)
	})

	t.Run("anchors without href are ignored", func(t *testing.T) {
		t.Parallel()

		links, err := goquery.ExtractLinks(`<a name="x">Anchor</a>`, seed, true)

		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("invalid base URL", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.ExtractLinks(`<a href="/a">A</a>`, "://bad", true)

		assert.Equal(t, docs2skill.EINVALID, docs2skill.ErrorCode(err))
	})
}
