package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/bloggen/internal/config"
	"git.home.luguber.info/inful/bloggen/internal/logfields"
	"git.home.luguber.info/inful/bloggen/internal/site"
)

// DiscoverCmd implements the 'discover' command: it runs ingestion and
// selection but writes nothing, so authors can check what would publish.
type DiscoverCmd struct{}

func (d *DiscoverCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	articleDocs, err := site.DiscoverDocuments(cfg.Content.Articles)
	if err != nil {
		return err
	}
	pageDocs, err := site.DiscoverDocuments(cfg.Content.Pages)
	if err != nil {
		return err
	}

	articles := site.SelectArticles(articleDocs)
	slog.Info("Discovery completed",
		slog.Int("articles", len(articles)),
		slog.Int("excluded", len(articleDocs)-len(articles)),
		slog.Int("pages", len(pageDocs)))

	for _, a := range articles {
		slog.Info("  Article",
			logfields.Slug(a.Slug),
			slog.String("date", a.Date.Format(site.DateFormat)),
			logfields.Route(site.ArticleRoute(a)))
	}
	for _, p := range pageDocs {
		if p.Doc.Draft {
			continue
		}
		slog.Info("  Page", logfields.Slug(p.Slug), logfields.Route(site.PageRoute(p.Slug)))
	}

	return nil
}
