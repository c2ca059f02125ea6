package site

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"git.home.luguber.info/inful/bloggen/internal/assets"
	"git.home.luguber.info/inful/bloggen/internal/config"
	"git.home.luguber.info/inful/bloggen/internal/htmldoc"
	"git.home.luguber.info/inful/bloggen/internal/markup"
)

func testConfig() *config.Config {
	return &config.Config{
		Title:   "My Blog",
		Tagline: "notes on *stuff*",
		Footer:  "made with care",
		Socials: []config.Social{
			{Name: "GitHub", IconName: "github", URL: "https://github.com/example"},
		},
		Stylesheets: []string{"main.css"},
	}
}

func newTestAssembler(t *testing.T, production bool) *Assembler {
	t.Helper()
	a, err := NewAssembler(testConfig(), assets.Identity{}, production)
	require.NoError(t, err)
	return a
}

func renderFragment(t *testing.T, nodes []*html.Node) string {
	t.Helper()
	var buf bytes.Buffer
	for _, n := range nodes {
		require.NoError(t, html.Render(&buf, n))
	}
	return buf.String()
}

func renderPage(t *testing.T, a *Assembler, inner []*html.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, htmldoc.RenderDocument(&buf, a.Layout(inner)))
	return buf.String()
}

func articleWith(t *testing.T, slug, date, title, summary string) Article {
	t.Helper()
	body, err := markup.ProcessFragment("article body")
	require.NoError(t, err)

	doc := &markup.Document{Title: title, Date: date, Body: body}
	if summary != "" {
		sum, err := markup.ProcessFragment(summary)
		require.NoError(t, err)
		doc.Summary = sum
	}

	articles := SelectArticles([]SourceDocument{{
		Path: "content/articles/" + slug + ".md",
		Slug: slug,
		Doc:  doc,
	}})
	require.Len(t, articles, 1)
	return articles[0]
}

func TestHomePageOrdering(t *testing.T) {
	a := newTestAssembler(t, true)
	older := articleWith(t, "older", "2023-01-01", "Older Post", "")
	newer := articleWith(t, "newer", "2024-06-01", "Newer Post", "")

	out := renderFragment(t, a.HomePage([]Article{older, newer}))

	// Most recent first.
	newerIdx := strings.Index(out, "Newer Post")
	olderIdx := strings.Index(out, "Older Post")
	require.NotEqual(t, -1, newerIdx)
	require.NotEqual(t, -1, olderIdx)
	assert.Less(t, newerIdx, olderIdx)

	assert.Contains(t, out, "<h1>My Blog</h1>")
	assert.Contains(t, out, "notes on <em>stuff</em>")
	assert.Contains(t, out, "Latest articles")
}

func TestHomePagePreviewLinks(t *testing.T) {
	a := newTestAssembler(t, true)
	art := articleWith(t, "hello", "2024-03-15", "Hello", "a *short* summary")

	out := renderFragment(t, a.HomePage([]Article{art}))

	assert.Contains(t, out, `href="/2024/11/hello/"`)
	assert.Contains(t, out, "2024-03-15")
	assert.Contains(t, out, "a <em>short</em> summary")
}

func TestHomePagePreviewWithoutSummary(t *testing.T) {
	a := newTestAssembler(t, true)
	art := articleWith(t, "hello", "2024-03-15", "Hello", "")

	out := renderFragment(t, a.HomePage([]Article{art}))

	// No empty placeholder div after the date.
	assert.NotContains(t, out, "<div></div>")
}

func TestArticleIndexPageHasNoHero(t *testing.T) {
	a := newTestAssembler(t, true)
	art := articleWith(t, "hello", "2024-03-15", "Hello", "")

	out := renderFragment(t, a.ArticleIndexPage([]Article{art}))

	assert.NotContains(t, out, "<h1>")
	assert.Contains(t, out, "<h2>Articles</h2>")
	assert.Contains(t, out, `href="/2024/11/hello/"`)
}

func TestArticlePage(t *testing.T) {
	a := newTestAssembler(t, true)
	art := articleWith(t, "hello", "2024-03-15", "Hello", "the gist")

	out := renderFragment(t, a.ArticlePage(art))

	assert.Contains(t, out, "<h1>Hello</h1>")
	assert.Contains(t, out, `<time datetime="2024-03-15">2024-03-15</time>`)
	assert.Contains(t, out, `class="abstract"`)
	assert.Contains(t, out, "the gist")
	assert.Contains(t, out, "article body")
}

func TestArticlePageWithoutSummaryOmitsAbstract(t *testing.T) {
	a := newTestAssembler(t, true)
	art := articleWith(t, "hello", "2024-03-15", "Hello", "")

	out := renderFragment(t, a.ArticlePage(art))
	assert.NotContains(t, out, "abstract")
}

func TestStandalonePage(t *testing.T) {
	a := newTestAssembler(t, true)
	body, err := markup.ProcessFragment("about me text")
	require.NoError(t, err)

	out := renderFragment(t, a.StandalonePage(SourceDocument{
		Path: "content/pages/about.md",
		Slug: "about",
		Doc:  &markup.Document{Title: "About", Body: body},
	}))

	assert.Contains(t, out, "<h1>About</h1>")
	assert.Contains(t, out, "about me text")
	assert.NotContains(t, out, "<time")
}

func TestLayoutHead(t *testing.T) {
	a := newTestAssembler(t, true)
	out := renderPage(t, a, nil)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>\n<html lang=\"en\">"))
	assert.Contains(t, out, `<meta charset="utf-8"/>`)
	assert.Contains(t, out, `name="viewport"`)
	assert.Contains(t, out, "<title>My Blog</title>")
	assert.Contains(t, out, `href="/assets/main.css"`)
}

func TestLayoutNav(t *testing.T) {
	a := newTestAssembler(t, true)
	out := renderPage(t, a, nil)

	assert.Contains(t, out, `<a href="/">My Blog</a>`)
	assert.Contains(t, out, `<a href="/articles/">Articles</a>`)
	assert.Contains(t, out, `<a href="/about/">About</a>`)
	assert.Contains(t, out, `href="/assets/icons.svg#github"`)
	assert.Contains(t, out, `title="GitHub"`)
}

func TestLayoutFooter(t *testing.T) {
	a := newTestAssembler(t, true)
	out := renderPage(t, a, nil)

	assert.Contains(t, out, "made with care")
	assert.Contains(t, out, separatorGlyph)
}

func TestLayoutDevelopmentScript(t *testing.T) {
	dev := newTestAssembler(t, false)
	prod := newTestAssembler(t, true)

	devOut := renderPage(t, dev, nil)
	prodOut := renderPage(t, prod, nil)

	assert.Contains(t, devOut, `src="/assets/main.js"`)
	assert.NotContains(t, prodOut, "main.js")
}

func TestLayoutOmitsEmptyOptionalFragments(t *testing.T) {
	cfg := &config.Config{Title: "Bare"}
	a, err := NewAssembler(cfg, assets.Identity{}, true)
	require.NoError(t, err)

	out := renderPage(t, a, nil)

	assert.NotContains(t, out, "<link")
	assert.NotContains(t, out, "<svg")
	assert.NotContains(t, out, `<span class="separator">`)
}

func TestLayoutUsesResolver(t *testing.T) {
	// A manifest-style resolver must flow through to stylesheet and icon URLs.
	a, err := NewAssembler(testConfig(), staticResolver{"main.css": "/assets/main.abc123.css"}, true)
	require.NoError(t, err)

	out := renderPage(t, a, nil)
	assert.Contains(t, out, `href="/assets/main.abc123.css"`)
}

type staticResolver map[string]string

func (r staticResolver) Asset(name string) string {
	if url, ok := r[name]; ok {
		return url
	}
	return "/assets/" + name
}

func TestAssemblerSharedFragmentsAreCloned(t *testing.T) {
	a := newTestAssembler(t, true)
	art := articleWith(t, "hello", "2024-03-15", "Hello", "shared summary")

	// The same article's summary appears on three different pages; each
	// assembly must get its own copy.
	home := renderFragment(t, a.HomePage([]Article{art}))
	index := renderFragment(t, a.ArticleIndexPage([]Article{art}))
	detail := renderFragment(t, a.ArticlePage(art))

	assert.Contains(t, home, "shared summary")
	assert.Contains(t, index, "shared summary")
	assert.Contains(t, detail, "shared summary")
}
