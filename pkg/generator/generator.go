package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"sitemap-split/internal/config"
	"sitemap-split/pkg/categorizer"
	"sitemap-split/pkg/logger"
	"sitemap-split/pkg/sitemap"
	"sitemap-split/pkg/source"
)

// Generator is the pipeline orchestrator: it pulls records from a source
// adapter, categorizes them, and writes one sitemap per non-empty
// category plus the main sitemap and the index. Runs are synchronous and
// single-threaded; the inputs are a few thousand URLs at most.
type Generator struct {
	cfg       *config.Config
	cat       *categorizer.Categorizer
	builder   *sitemap.Builder
	dateStamp string
	log       *logger.Logger
}

func New(cfg *config.Config) (*Generator, error) {
	rules := make([]categorizer.Rule, 0, len(cfg.Categories))
	for _, rule := range cfg.Categories {
		rules = append(rules, categorizer.Rule{Name: rule.Name, Patterns: rule.Patterns})
	}
	cat, err := categorizer.New(rules, cfg.Fallback)
	if err != nil {
		return nil, fmt.Errorf("failed to build categorizer: %w", err)
	}

	return &Generator{
		cfg: cfg,
		cat: cat,
		builder: sitemap.NewBuilder(sitemap.BuilderConfig{
			BaseURL:           cfg.Site.BaseURL,
			DefaultChangeFreq: sitemap.ChangeFreq(cfg.Defaults.ChangeFreq),
			DefaultPriority:   cfg.Defaults.Priority,
		}),
		dateStamp: time.Now().Format("2006-01-02"),
		log:       logger.GetLogger().WithField("component", "generator"),
	}, nil
}

// DateStamp is the run's date used for every lastmod the run stamps.
func (g *Generator) DateStamp() string {
	return g.dateStamp
}

// RunTools generates sitemaps from the tool catalogue. A missing or empty
// catalogue aborts softly: zero tools reported, no files written.
func (g *Generator) RunTools(catalogue *source.CatalogueSource) *Report {
	tools, err := catalogue.Fetch()
	if err != nil {
		g.log.WithError(err).Warn("No tools to process")
		return newReport(g.dateStamp)
	}

	records := make([]sitemap.URLRecord, 0, len(tools))
	for _, tool := range tools {
		path := categorizer.NormalizeHref(tool.Href, tool.ID, g.cfg.Site.ToolPrefix)
		records = append(records, sitemap.URLRecord{
			URL:         g.cfg.Site.BaseURL + path,
			Path:        path,
			Name:        tool.Name,
			LastMod:     g.dateStamp,
			ChangeFreq:  sitemap.ChangeFreq(g.cfg.Defaults.ChangeFreq),
			Priority:    g.cfg.Defaults.Priority,
			HasPriority: true,
		})
	}

	report, err := g.Generate(records)
	if err != nil {
		g.log.WithError(err).Error("Generation failed")
		return newReport(g.dateStamp)
	}
	return report
}

// RunSplit regenerates category sitemaps from an existing sitemap
// document. The source falls back to the example dataset on its own, so
// this path always has records to work with.
func (g *Generator) RunSplit(ctx context.Context, src *source.SitemapSource) *Report {
	records := src.Fetch(ctx)
	for i := range records {
		records[i].Path = categorizer.Normalize(records[i].URL)
	}

	report, err := g.Generate(records)
	if err != nil {
		g.log.WithError(err).Error("Generation failed")
		return newReport(g.dateStamp)
	}
	return report
}

// Generate categorizes the records and writes the full output set: one
// sitemap per non-empty topical category, the main sitemap, and the
// index. Documents are assembled fully in memory and written whole, so a
// failed run never leaves a partial file behind.
func (g *Generator) Generate(records []sitemap.URLRecord) (*Report, error) {
	report := newReport(g.dateStamp)
	groups := g.groupByCategory(records, report)

	if err := os.MkdirAll(g.cfg.Output.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var categories []string
	for category, group := range groups {
		if category == g.cat.Fallback() || len(group) == 0 {
			continue
		}
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		doc := g.builder.BuildURLSet(groups[category])
		if err := g.writeDocument(sitemap.Filename(category), doc); err != nil {
			return nil, err
		}
		report.Files = append(report.Files, sitemap.Filename(category))
	}

	// The main sitemap always exists. Records the categorizer routed to
	// the fallback carry their own metadata; with none of those, the
	// configured static pages fill it.
	mainRecords := groups[g.cat.Fallback()]
	if len(mainRecords) == 0 {
		mainRecords = g.staticPageRecords()
	}
	mainDoc := g.builder.BuildURLSet(mainRecords)
	if err := g.writeDocument(sitemap.Filename(g.cat.Fallback()), mainDoc); err != nil {
		return nil, err
	}
	report.Files = append(report.Files, sitemap.Filename(g.cat.Fallback()))

	index := g.builder.BuildIndex(g.cat.Fallback(), categories, g.dateStamp)
	if err := g.writeDocument(g.cfg.Output.IndexFile, index); err != nil {
		return nil, err
	}
	report.Files = append(report.Files, g.cfg.Output.IndexFile)

	return report, nil
}

func (g *Generator) groupByCategory(records []sitemap.URLRecord, report *Report) map[string][]sitemap.URLRecord {
	groups := make(map[string][]sitemap.URLRecord)
	for _, record := range records {
		category := g.cat.Categorize(record.Path)
		groups[category] = append(groups[category], record)
		report.Categories[category]++
		report.Total++
	}
	return groups
}

func (g *Generator) staticPageRecords() []sitemap.URLRecord {
	records := make([]sitemap.URLRecord, 0, len(g.cfg.StaticPages))
	for _, page := range g.cfg.StaticPages {
		records = append(records, sitemap.URLRecord{
			Path:        categorizer.Normalize(page.Path),
			LastMod:     g.dateStamp,
			ChangeFreq:  sitemap.ChangeFreq(page.ChangeFreq),
			Priority:    page.Priority,
			HasPriority: true,
		})
	}
	return records
}

// writeDocument serializes a document and writes it atomically: the bytes
// land in a temp file in the output directory and are renamed into place.
func (g *Generator) writeDocument(name string, doc interface{}) error {
	data, err := sitemap.Encode(doc)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(g.cfg.Output.Dir, name+".tmp-")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close %s: %w", name, err)
	}

	target := filepath.Join(g.cfg.Output.Dir, name)
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to rename %s into place: %w", name, err)
	}

	g.log.WithFields(map[string]interface{}{
		"file": target,
		"size": len(data),
	}).Info("Wrote sitemap file")
	return nil
}
