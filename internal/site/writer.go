package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/bloggen/internal/htmldoc"
)

// WritePage serializes a composed page to its routed location under the
// output directory, creating parent directories as needed and overwriting
// any previous output at the same route.
func WritePage(outputDir, route string, page *html.Node) error {
	dest := filepath.Join(outputDir, route)

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory for %s: %w", route, err)
	}

	var buf bytes.Buffer
	if err := htmldoc.RenderDocument(&buf, page); err != nil {
		return fmt.Errorf("failed to serialize %s: %w", route, err)
	}

	if err := os.WriteFile(dest, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", dest, err)
	}
	return nil
}
