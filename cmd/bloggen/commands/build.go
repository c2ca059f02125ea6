package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/bloggen/internal/config"
	"git.home.luguber.info/inful/bloggen/internal/logfields"
	"git.home.luguber.info/inful/bloggen/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output     string `short:"o" help:"Output directory for the generated site (overrides config)"`
	Production bool   `help:"Build for production (omits the development page script)"`
	Manifest   string `help:"Path to an asset manifest file; omit to use /assets/ URLs directly" type:"path"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	resolver, err := SelectResolver(b.Manifest)
	if err != nil {
		return fmt.Errorf("load asset manifest: %w", err)
	}

	gen, err := site.NewGenerator(cfg, resolver, b.Production, b.Output)
	if err != nil {
		return err
	}

	slog.Info("Starting site build",
		slog.String("config", root.Config),
		slog.String("output", gen.OutputDir()),
		slog.Bool("production", b.Production))

	bs, err := gen.Run()
	if err != nil {
		return err
	}

	slog.Info("Site build complete",
		logfields.Count(len(bs.Written)),
		slog.Int("articles", len(bs.Articles)),
		slog.String("output", gen.OutputDir()))
	return nil
}
