package commands

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/bloggen/internal/assets"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"blog.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build    BuildCmd    `cmd:"" help:"Build the site from configured content trees"`
	Discover DiscoverCmd `cmd:"" help:"List discovered content and routes without writing output"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// SelectResolver picks the asset resolution policy once at startup: the
// manifest file when one is requested, the identity rule otherwise.
func SelectResolver(manifestPath string) (assets.Resolver, error) {
	if manifestPath == "" {
		return assets.Identity{}, nil
	}
	return assets.LoadManifest(manifestPath)
}
