package sitemap

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strconv"
)

// BuilderConfig carries the site-wide values every document shares.
type BuilderConfig struct {
	BaseURL           string
	DefaultChangeFreq ChangeFreq
	DefaultPriority   float64
}

// Builder assembles sitemap and sitemap-index documents in memory. It has
// no side effects; writing the serialized bytes is the orchestrator's job.
type Builder struct {
	config BuilderConfig
}

func NewBuilder(config BuilderConfig) *Builder {
	if config.DefaultChangeFreq == "" {
		config.DefaultChangeFreq = Weekly
	}
	if config.DefaultPriority == 0 {
		config.DefaultPriority = 0.8
	}
	return &Builder{config: config}
}

// BuildURLSet builds one urlset document from a group of records.
// Records are emitted sorted by display name (path when the name is
// empty) so repeated runs over the same data diff cleanly regardless of
// source ordering.
func (b *Builder) BuildURLSet(records []URLRecord) *URLSet {
	sorted := make([]URLRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sortKey(sorted[i]) < sortKey(sorted[j])
	})

	doc := &URLSet{
		Xmlns: Namespace,
		URLs:  make([]Entry, 0, len(sorted)),
	}
	for _, record := range sorted {
		doc.URLs = append(doc.URLs, Entry{
			Loc:        b.locFor(record),
			LastMod:    record.LastMod,
			ChangeFreq: string(b.freqFor(record)),
			Priority:   FormatPriority(b.priorityFor(record)),
		})
	}
	return doc
}

// BuildIndex builds the sitemapindex document. The main sitemap entry
// comes first, then one entry per category in alphabetical order, so the
// index is reproducible no matter what order categorization produced the
// groups in.
func (b *Builder) BuildIndex(main string, categories []string, dateStamp string) *Index {
	sorted := make([]string, len(categories))
	copy(sorted, categories)
	sort.Strings(sorted)

	doc := &Index{
		Xmlns: Namespace,
		Sitemaps: []IndexEntry{
			{Loc: b.config.BaseURL + "/" + Filename(main), LastMod: dateStamp},
		},
	}
	for _, category := range sorted {
		if category == main {
			continue
		}
		doc.Sitemaps = append(doc.Sitemaps, IndexEntry{
			Loc:     b.config.BaseURL + "/" + Filename(category),
			LastMod: dateStamp,
		})
	}
	return doc
}

func (b *Builder) locFor(record URLRecord) string {
	if record.Path != "" {
		if record.Path == "/" {
			return b.config.BaseURL + "/"
		}
		return b.config.BaseURL + record.Path
	}
	return record.URL
}

func (b *Builder) freqFor(record URLRecord) ChangeFreq {
	if record.ChangeFreq.Valid() {
		return record.ChangeFreq
	}
	return b.config.DefaultChangeFreq
}

func (b *Builder) priorityFor(record URLRecord) float64 {
	if record.HasPriority {
		return record.Priority
	}
	return b.config.DefaultPriority
}

func sortKey(record URLRecord) string {
	if record.Name != "" {
		return record.Name
	}
	return record.Path
}

// Filename returns the deterministic file name for a category sitemap.
func Filename(category string) string {
	return fmt.Sprintf("sitemap-%s.xml", category)
}

// FormatPriority renders a priority with exactly one decimal digit, the
// way the sitemaps protocol examples write it.
func FormatPriority(priority float64) string {
	return strconv.FormatFloat(priority, 'f', 1, 64)
}

// Encode serializes a document as indented UTF-8 XML with a declaration.
func Encode(doc interface{}) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, []byte(xml.Header)...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}
