// Package markup turns markdown source files into structured documents:
// typed metadata plus rendered body and summary fragments.
package markup

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"golang.org/x/net/html"

	"git.home.luguber.info/inful/bloggen/internal/htmldoc"
)

// Document is the processed form of a single source file.
//
// Title and Date come straight from the frontmatter; neither is validated
// here. Discovery enforces titles, and the article filter owns date parsing.
type Document struct {
	Title   string
	Date    string
	Draft   bool
	Body    []*html.Node
	Summary []*html.Node // nil when the source has no summary
}

// Process reads and processes a single markdown source file.
func Process(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file: %w", err)
	}

	frontmatter, body, _, err := splitFrontmatter(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	meta, err := parseMetadata(frontmatter)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid frontmatter: %w", path, err)
	}

	bodyNodes, err := renderFragment(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	doc := &Document{
		Title: meta.Title,
		Date:  meta.Date,
		Draft: meta.Draft,
		Body:  bodyNodes,
	}

	if meta.Summary != "" {
		summary, err := ProcessFragment(meta.Summary)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid summary: %w", path, err)
		}
		doc.Summary = summary
	}

	return doc, nil
}

// ProcessFragment processes an inline markup string (tagline, footer,
// summary) into an HTML fragment. A single wrapping paragraph is unwrapped so
// the result can be placed inside an existing block element.
func ProcessFragment(src string) ([]*html.Node, error) {
	nodes, err := renderFragment([]byte(src))
	if err != nil {
		return nil, err
	}

	if len(nodes) == 1 && nodes[0].Type == html.ElementNode && nodes[0].Data == "p" {
		var children []*html.Node
		for c := nodes[0].FirstChild; c != nil; {
			next := c.NextSibling
			nodes[0].RemoveChild(c)
			children = append(children, c)
			c = next
		}
		return children, nil
	}

	return nodes, nil
}

func renderFragment(src []byte) ([]*html.Node, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("failed to convert markdown: %w", err)
	}

	nodes, err := htmldoc.ParseFragment(strings.TrimRight(buf.String(), "\n"))
	if err != nil {
		return nil, err
	}
	return nodes, nil
}
