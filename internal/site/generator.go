package site

import (
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/bloggen/internal/assets"
	"git.home.luguber.info/inful/bloggen/internal/config"
	"git.home.luguber.info/inful/bloggen/internal/logfields"
)

// BuildState carries the pipeline's data between stages of a single run.
type BuildState struct {
	ArticleDocs []SourceDocument
	PageDocs    []SourceDocument
	Articles    []Article
	Written     []string // routes written, in order
}

// StageFunc is one sequential step of the build.
type StageFunc func(*BuildState) error

// StageDef names a stage for logging and reporting.
type StageDef struct {
	Name string
	Fn   StageFunc
}

// Generator runs the build pipeline once, top to bottom. The build is not
// transactional: an abort after partial writes leaves earlier output files
// in place.
type Generator struct {
	cfg       *config.Config
	assembler *Assembler
	outputDir string
}

// NewGenerator wires the pipeline together. The resolver is passed explicitly
// so asset policy stays a startup decision, not ambient state.
func NewGenerator(cfg *config.Config, resolver assets.Resolver, production bool, outputDir string) (*Generator, error) {
	assembler, err := NewAssembler(cfg, resolver, production)
	if err != nil {
		return nil, err
	}
	if outputDir == "" {
		outputDir = cfg.Output.Directory
	}

	return &Generator{
		cfg:       cfg,
		assembler: assembler,
		outputDir: outputDir,
	}, nil
}

// OutputDir reports where pages are written.
func (g *Generator) OutputDir() string {
	return g.outputDir
}

// Stages returns the build stages in execution order.
func (g *Generator) Stages() []StageDef {
	return []StageDef{
		{Name: "discover-articles", Fn: g.stageDiscoverArticles},
		{Name: "discover-pages", Fn: g.stageDiscoverPages},
		{Name: "select-articles", Fn: g.stageSelectArticles},
		{Name: "render-pages", Fn: g.stageRenderPages},
	}
}

// Run executes stages in order, recording timing and stopping on the first
// fatal error.
func (g *Generator) Run() (*BuildState, error) {
	bs := &BuildState{}
	for _, st := range g.Stages() {
		t0 := time.Now()
		err := st.Fn(bs)
		dur := time.Since(t0)

		if err != nil {
			slog.Error("Build stage failed", logfields.Stage(st.Name), logfields.Error(err))
			if len(bs.Written) > 0 {
				slog.Warn("Aborting with partial output in place",
					logfields.Count(len(bs.Written)), slog.String("output", g.outputDir))
			}
			return bs, fmt.Errorf("stage %s: %w", st.Name, err)
		}

		slog.Info("Build stage complete", logfields.Stage(st.Name),
			logfields.DurationMS(float64(dur.Microseconds())/1000.0))
	}
	return bs, nil
}

func (g *Generator) stageDiscoverArticles(bs *BuildState) error {
	docs, err := DiscoverDocuments(g.cfg.Content.Articles)
	if err != nil {
		return err
	}
	bs.ArticleDocs = docs
	return nil
}

func (g *Generator) stageDiscoverPages(bs *BuildState) error {
	docs, err := DiscoverDocuments(g.cfg.Content.Pages)
	if err != nil {
		return err
	}
	bs.PageDocs = docs
	return nil
}

func (g *Generator) stageSelectArticles(bs *BuildState) error {
	bs.Articles = SelectArticles(bs.ArticleDocs)
	slog.Info("Articles selected",
		logfields.Count(len(bs.Articles)),
		slog.Int("excluded", len(bs.ArticleDocs)-len(bs.Articles)))
	return nil
}

func (g *Generator) stageRenderPages(bs *BuildState) error {
	if err := g.emitPage(bs, HomeRoute(), g.assembler.HomePage(bs.Articles)); err != nil {
		return err
	}
	if err := g.emitPage(bs, ArticleIndexRoute(), g.assembler.ArticleIndexPage(bs.Articles)); err != nil {
		return err
	}
	for _, article := range bs.Articles {
		if err := g.emitPage(bs, ArticleRoute(article), g.assembler.ArticlePage(article)); err != nil {
			return err
		}
	}
	for _, page := range bs.PageDocs {
		if page.Doc.Draft {
			slog.Debug("Skipping draft page", logfields.Path(page.Path))
			continue
		}
		if err := g.emitPage(bs, PageRoute(page.Slug), g.assembler.StandalonePage(page)); err != nil {
			return err
		}
	}

	slog.Info("Pages written", logfields.Count(len(bs.Written)), slog.String("output", g.outputDir))
	return nil
}

func (g *Generator) emitPage(bs *BuildState, route string, fragment []*html.Node) error {
	page := g.assembler.Layout(fragment)
	if err := WritePage(g.outputDir, route, page); err != nil {
		return err
	}
	bs.Written = append(bs.Written, route)
	slog.Debug("Page written", logfields.Route(route))
	return nil
}
