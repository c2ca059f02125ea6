package site

import (
	"log/slog"
	"sort"
	"time"

	"git.home.luguber.info/inful/bloggen/internal/logfields"
	"git.home.luguber.info/inful/bloggen/internal/markup"
)

// DateFormat is the calendar format articles are dated and displayed with.
const DateFormat = "2006-01-02"

// Article is a publishable, dated document. Every Article has a valid,
// comparable date: documents that are drafts, undated, or carry a malformed
// date never become Articles.
type Article struct {
	Doc        *markup.Document
	SourcePath string
	Slug       string
	Date       time.Time
}

// SelectArticles filters the publishable documents and orders them by
// ascending date, ties broken by input order. Exclusion is editorial intent
// (drafts, undated notes), not an error.
func SelectArticles(docs []SourceDocument) []Article {
	articles := make([]Article, 0, len(docs))
	for _, sd := range docs {
		if sd.Doc.Draft {
			slog.Debug("Skipping draft document", logfields.Path(sd.Path))
			continue
		}
		if sd.Doc.Date == "" {
			slog.Debug("Skipping undated document", logfields.Path(sd.Path))
			continue
		}
		date, err := time.Parse(DateFormat, sd.Doc.Date)
		if err != nil {
			slog.Debug("Skipping document with unparsable date",
				logfields.Path(sd.Path), slog.String("date", sd.Doc.Date))
			continue
		}

		articles = append(articles, Article{
			Doc:        sd.Doc,
			SourcePath: sd.Path,
			Slug:       sd.Slug,
			Date:       date,
		})
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Date.Before(articles[j].Date)
	})
	return articles
}

// Reversed returns a new most-recent-first slice for listing views. The
// canonical ascending order is left untouched.
func Reversed(articles []Article) []Article {
	out := make([]Article, len(articles))
	for i, a := range articles {
		out[len(articles)-1-i] = a
	}
	return out
}
