// Package site implements the build pipeline: discovery, article selection,
// routing, page assembly and output writing.
package site

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"git.home.luguber.info/inful/bloggen/internal/logfields"
	"git.home.luguber.info/inful/bloggen/internal/markup"
)

// SourceDocument pairs a processed document with its origin on disk.
type SourceDocument struct {
	Path string
	Slug string
	Doc  *markup.Document
}

// DiscoverDocuments finds and processes every source file matching the glob
// pattern. Glob order carries no meaning; results are sorted by path so runs
// are deterministic.
//
// Processing failures are collected across all files and returned together,
// so an author sees every broken document in one run. Any failure means the
// whole build aborts: there is no partial-success mode.
func DiscoverDocuments(pattern string) ([]SourceDocument, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid content glob %q: %w", pattern, err)
	}
	sort.Strings(matches)

	var docs []SourceDocument
	var errs []error
	for _, path := range matches {
		doc, err := markup.Process(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if doc.Title == "" {
			errs = append(errs, fmt.Errorf("%s: document has no title", path))
			continue
		}

		docs = append(docs, SourceDocument{
			Path: path,
			Slug: slugFor(path),
			Doc:  doc,
		})
		slog.Debug("Processed source document", logfields.Path(path), logfields.Slug(slugFor(path)))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	slog.Debug("Content discovery complete", slog.String("pattern", pattern), logfields.Count(len(docs)))
	return docs, nil
}

// slugFor derives the URL path segment for a source file: its base name with
// the extension stripped.
func slugFor(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
