// Package assets maps logical asset names to servable URLs.
//
// Two policies exist: Identity, which derives a URL directly from the name,
// and Manifest, which is backed by a name-to-URL mapping file produced by the
// asset build. The policy is chosen once at startup and passed explicitly
// through the build pipeline.
package assets

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// Resolver maps a logical asset name to a servable URL. Resolution is total:
// it never fails, so the build cannot abort over a missing asset entry.
type Resolver interface {
	Asset(name string) string
}

// Identity resolves every asset to its conventional /assets/ location.
type Identity struct{}

func (Identity) Asset(name string) string {
	return "/assets/" + name
}

// Manifest resolves assets through a mapping file, typically emitted by the
// asset bundler with hashed filenames.
type Manifest struct {
	entries map[string]string
}

// LoadManifest reads a flat JSON object mapping logical names to URLs.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset manifest: %w", err)
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse asset manifest %s: %w", path, err)
	}

	return &Manifest{entries: entries}, nil
}

// Asset returns the mapped URL for name. A name absent from the manifest
// falls back to the Identity rule rather than failing the build.
func (m *Manifest) Asset(name string) string {
	if url, ok := m.entries[name]; ok {
		return url
	}
	slog.Debug("Asset missing from manifest, using identity fallback", slog.String("asset", name))
	return Identity{}.Asset(name)
}
