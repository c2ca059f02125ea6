package site

import (
	"fmt"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/bloggen/internal/assets"
	"git.home.luguber.info/inful/bloggen/internal/config"
	"git.home.luguber.info/inful/bloggen/internal/htmldoc"
	"git.home.luguber.info/inful/bloggen/internal/markup"
)

// separatorGlyph decorates abstract blocks and the footer.
const separatorGlyph = "⁂" // asterism

// Assembler composes page fragments and wraps them in the shared site
// layout. It reads only already-ingested data and the asset resolver, never
// the filesystem.
type Assembler struct {
	cfg        *config.Config
	resolver   assets.Resolver
	production bool
	tagline    []*html.Node
	footer     []*html.Node
}

// NewAssembler processes the config's markup strings once; pages clone the
// resulting fragments as needed.
func NewAssembler(cfg *config.Config, resolver assets.Resolver, production bool) (*Assembler, error) {
	tagline, err := markup.ProcessFragment(cfg.Tagline)
	if err != nil {
		return nil, fmt.Errorf("invalid tagline markup: %w", err)
	}
	footer, err := markup.ProcessFragment(cfg.Footer)
	if err != nil {
		return nil, fmt.Errorf("invalid footer markup: %w", err)
	}

	return &Assembler{
		cfg:        cfg,
		resolver:   resolver,
		production: production,
		tagline:    tagline,
		footer:     footer,
	}, nil
}

// HomePage renders the site title, tagline and the latest-articles previews.
// Articles arrive in canonical ascending order; previews render most recent
// first.
func (a *Assembler) HomePage(articles []Article) []*html.Node {
	header := htmldoc.El("header", htmldoc.Attrs("class", "home"),
		htmldoc.El("h1", nil, htmldoc.Text(a.cfg.Title)),
	)
	if len(a.tagline) > 0 {
		header.AppendChild(htmldoc.Append(htmldoc.El("p", nil), htmldoc.CloneFragment(a.tagline)...))
	}
	hero := htmldoc.El("div", htmldoc.Attrs("class", "main-wrapper"), header)

	latest := htmldoc.El("div", htmldoc.Attrs("class", "main-wrapper"),
		htmldoc.El("header", nil,
			htmldoc.El("h2", nil, htmldoc.Text("Latest articles")),
		),
	)
	for _, article := range Reversed(articles) {
		latest.AppendChild(a.preview(article))
	}

	return []*html.Node{htmldoc.El("main", nil, hero, latest)}
}

// ArticleIndexPage renders the unbounded reverse-chronological listing,
// without the home-page hero.
func (a *Assembler) ArticleIndexPage(articles []Article) []*html.Node {
	listing := htmldoc.El("div", htmldoc.Attrs("class", "main-wrapper"),
		htmldoc.El("header", nil,
			htmldoc.El("h2", nil, htmldoc.Text("Articles")),
		),
	)
	for _, article := range Reversed(articles) {
		listing.AppendChild(a.preview(article))
	}

	return []*html.Node{htmldoc.El("main", nil, listing)}
}

// preview renders one article entry for a listing: linked title, formatted
// date, and the summary when one exists.
func (a *Assembler) preview(article Article) *html.Node {
	entry := htmldoc.El("article", nil,
		htmldoc.El("h3", nil,
			htmldoc.El("a", htmldoc.Attrs("href", ArticleURL(article)),
				htmldoc.Text(article.Doc.Title)),
		),
		htmldoc.El("time", htmldoc.Attrs("datetime", article.Date.Format(DateFormat)),
			htmldoc.Text(article.Date.Format(DateFormat))),
	)
	if article.Doc.Summary != nil {
		entry.AppendChild(htmldoc.Append(htmldoc.El("div", nil),
			htmldoc.CloneFragment(article.Doc.Summary)...))
	}
	return entry
}

// ArticlePage renders an article detail page: dated header, optional
// abstract block, full body.
func (a *Assembler) ArticlePage(article Article) []*html.Node {
	main := htmldoc.El("main", htmldoc.Attrs("class", "main-wrapper"),
		htmldoc.El("header", nil,
			htmldoc.El("time", htmldoc.Attrs("datetime", article.Date.Format(DateFormat)),
				htmldoc.Text(article.Date.Format(DateFormat))),
			htmldoc.El("h1", nil, htmldoc.Text(article.Doc.Title)),
		),
	)

	if article.Doc.Summary != nil {
		abstract := htmldoc.El("div", htmldoc.Attrs("class", "abstract"),
			htmldoc.El("div", htmldoc.Attrs("class", "separator"), htmldoc.Text(separatorGlyph)),
		)
		htmldoc.Append(abstract, htmldoc.CloneFragment(article.Doc.Summary)...)
		main.AppendChild(abstract)
	}

	htmldoc.Append(main, htmldoc.CloneFragment(article.Doc.Body)...)
	return []*html.Node{main}
}

// StandalonePage renders an undated page: title plus body, no preview list.
func (a *Assembler) StandalonePage(doc SourceDocument) []*html.Node {
	main := htmldoc.El("main", htmldoc.Attrs("class", "main-wrapper"),
		htmldoc.El("header", nil,
			htmldoc.El("h1", nil, htmldoc.Text(doc.Doc.Title)),
		),
	)
	htmldoc.Append(main, htmldoc.CloneFragment(doc.Doc.Body)...)
	return []*html.Node{main}
}

// Layout wraps a page fragment in the shared document shell.
func (a *Assembler) Layout(inner []*html.Node) *html.Node {
	head := htmldoc.El("head", nil,
		htmldoc.El("meta", htmldoc.Attrs("charset", "utf-8")),
		htmldoc.El("meta", htmldoc.Attrs(
			"name", "viewport",
			"content", "width=device-width, initial-scale=1")),
		htmldoc.El("title", nil, htmldoc.Text(a.cfg.Title)),
	)
	for _, stylesheet := range a.cfg.Stylesheets {
		head.AppendChild(htmldoc.El("link", htmldoc.Attrs(
			"rel", "stylesheet",
			"type", "text/css",
			"href", a.resolver.Asset(stylesheet))))
	}

	body := htmldoc.El("body", nil,
		a.nav(),
		htmldoc.El("div", htmldoc.Attrs("class", "header-picture")),
	)
	htmldoc.Append(body, inner...)

	footer := htmldoc.El("footer", nil,
		htmldoc.El("div", htmldoc.Attrs("class", "separator"), htmldoc.Text(separatorGlyph)),
	)
	htmldoc.Append(footer, htmldoc.CloneFragment(a.footer)...)
	body.AppendChild(footer)

	// In development the asset bundler serves the page script itself.
	if !a.production {
		body.AppendChild(htmldoc.El("script", htmldoc.Attrs(
			"type", "text/javascript",
			"src", a.resolver.Asset("main.js"))))
	}

	return htmldoc.El("html", htmldoc.Attrs("lang", "en"), head, body)
}

func (a *Assembler) nav() *html.Node {
	wrapper := htmldoc.El("div", htmldoc.Attrs("class", "wrapper"),
		htmldoc.El("a", htmldoc.Attrs("href", "/"), htmldoc.Text(a.cfg.Title)),
		htmldoc.El("a", htmldoc.Attrs("href", ArticleIndexURL()), htmldoc.Text("Articles")),
		htmldoc.El("a", htmldoc.Attrs("href", PageURL("about")), htmldoc.Text("About")),
	)

	if len(a.cfg.Socials) > 0 {
		wrapper.AppendChild(htmldoc.El("span", htmldoc.Attrs("class", "separator")))
		iconsURL := a.resolver.Asset("icons.svg")
		for _, social := range a.cfg.Socials {
			wrapper.AppendChild(htmldoc.El("a", htmldoc.Attrs(
				"href", social.URL,
				"target", "_blank",
				"title", social.Name),
				htmldoc.El("svg", htmldoc.Attrs(
					"xmlns", "http://www.w3.org/2000/svg",
					"viewBox", "0 0 30 30"),
					htmldoc.El("use", htmldoc.Attrs(
						"href", fmt.Sprintf("%s#%s", iconsURL, social.IconName))),
				),
				htmldoc.El("span", nil, htmldoc.Text(social.Name)),
			))
		}
	}

	return htmldoc.El("nav", nil, wrapper)
}
