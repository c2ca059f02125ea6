package site

import (
	"fmt"
	"path/filepath"
)

// Routes are destination paths relative to the output directory; URLs are the
// corresponding absolute href forms. Both derive from the same data so links
// and files can never drift apart.

// HomeRoute is the destination of the home page.
func HomeRoute() string {
	return "index.html"
}

// ArticleIndexRoute is the destination of the article listing page.
func ArticleIndexRoute() string {
	return filepath.Join("articles", "index.html")
}

// ArticleIndexURL is the href of the article listing page.
func ArticleIndexURL() string {
	return "/articles/"
}

// ArticleRoute computes an article's destination from its date and slug,
// using ISO-8601 week numbering. Note the ISO week-based year near year
// boundaries can differ from the calendar year.
func ArticleRoute(a Article) string {
	year, week := a.Date.ISOWeek()
	return filepath.Join(fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", week), a.Slug, "index.html")
}

// ArticleURL is the href of an article's page.
func ArticleURL(a Article) string {
	year, week := a.Date.ISOWeek()
	return fmt.Sprintf("/%04d/%02d/%s/", year, week, a.Slug)
}

// PageRoute computes a standalone page's destination. No date component.
func PageRoute(slug string) string {
	return filepath.Join(slug, "index.html")
}

// PageURL is the href of a standalone page.
func PageURL(slug string) string {
	return "/" + slug + "/"
}
