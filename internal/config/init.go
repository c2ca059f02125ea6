package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const exampleConfig = `# Blog site configuration
title: "My Blog"
tagline: "Notes on *things I build*"
footer: "Built by hand. No tracking."

socials:
  - name: "GitHub"
    icon_name: "github"
    url: "https://github.com/example"
  - name: "Mastodon"
    icon_name: "mastodon"
    url: "https://example.social/@example"

# Logical asset names, resolved through the asset manifest when one is given.
stylesheets:
  - "main.css"

content:
  articles: "content/articles/**/*.md"
  pages: "content/pages/**/*.md"

output:
  directory: "./site"
`

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
