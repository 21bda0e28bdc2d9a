package sitemap

import (
	"strings"
	"testing"
)

func newTestBuilder() *Builder {
	return NewBuilder(BuilderConfig{
		BaseURL:           "https://dapsiwow.com",
		DefaultChangeFreq: Weekly,
		DefaultPriority:   0.8,
	})
}

func TestBuildURLSet_EntryFields(t *testing.T) {
	b := newTestBuilder()

	doc := b.BuildURLSet([]URLRecord{
		{Path: "/tools/bmi-calculator", Name: "BMI Calculator", LastMod: "2026-08-24", ChangeFreq: Weekly, Priority: 0.8, HasPriority: true},
	})

	if doc.Xmlns != Namespace {
		t.Errorf("Expected namespace %q, got %q", Namespace, doc.Xmlns)
	}
	if len(doc.URLs) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(doc.URLs))
	}

	entry := doc.URLs[0]
	if entry.Loc != "https://dapsiwow.com/tools/bmi-calculator" {
		t.Errorf("Unexpected loc: %q", entry.Loc)
	}
	if entry.LastMod != "2026-08-24" {
		t.Errorf("Unexpected lastmod: %q", entry.LastMod)
	}
	if entry.ChangeFreq != "weekly" {
		t.Errorf("Unexpected changefreq: %q", entry.ChangeFreq)
	}
	if entry.Priority != "0.8" {
		t.Errorf("Unexpected priority: %q", entry.Priority)
	}
}

func TestBuildURLSet_ExplicitZeroPriority(t *testing.T) {
	b := newTestBuilder()

	// 0.0 is a valid priority; it must not be mistaken for an absent
	// value and rewritten to the default.
	doc := b.BuildURLSet([]URLRecord{
		{Path: "/tools/retired-tool", Priority: 0.0, HasPriority: true},
	})

	if doc.URLs[0].Priority != "0.0" {
		t.Errorf("Expected explicit priority 0.0 preserved, got %q", doc.URLs[0].Priority)
	}
}

func TestBuildURLSet_Defaults(t *testing.T) {
	b := newTestBuilder()

	doc := b.BuildURLSet([]URLRecord{
		{Path: "/tools/word-counter", LastMod: "2026-08-24"},
	})

	entry := doc.URLs[0]
	if entry.ChangeFreq != "weekly" {
		t.Errorf("Expected default changefreq weekly, got %q", entry.ChangeFreq)
	}
	if entry.Priority != "0.8" {
		t.Errorf("Expected default priority 0.8, got %q", entry.Priority)
	}
}

func TestBuildURLSet_RootPath(t *testing.T) {
	b := newTestBuilder()

	doc := b.BuildURLSet([]URLRecord{{Path: "/", Priority: 1.0, HasPriority: true}})
	if doc.URLs[0].Loc != "https://dapsiwow.com/" {
		t.Errorf("Expected root loc with trailing slash, got %q", doc.URLs[0].Loc)
	}
	if doc.URLs[0].Priority != "1.0" {
		t.Errorf("Expected priority 1.0, got %q", doc.URLs[0].Priority)
	}
}

func TestBuildURLSet_SortedByName(t *testing.T) {
	b := newTestBuilder()

	doc := b.BuildURLSet([]URLRecord{
		{Path: "/tools/word-counter", Name: "Word Counter"},
		{Path: "/tools/bmi-calculator", Name: "BMI Calculator"},
		{Path: "/tools/case-converter", Name: "Case Converter"},
	})

	expected := []string{
		"https://dapsiwow.com/tools/bmi-calculator",
		"https://dapsiwow.com/tools/case-converter",
		"https://dapsiwow.com/tools/word-counter",
	}
	for i, want := range expected {
		if doc.URLs[i].Loc != want {
			t.Errorf("Position %d: expected %q, got %q", i, want, doc.URLs[i].Loc)
		}
	}
}

func TestBuildURLSet_SortIndependentOfSourceOrder(t *testing.T) {
	b := newTestBuilder()

	records := []URLRecord{
		{Path: "/tools/a-tool", Name: "Alpha"},
		{Path: "/tools/b-tool", Name: "Beta"},
	}
	reversed := []URLRecord{records[1], records[0]}

	first := b.BuildURLSet(records)
	second := b.BuildURLSet(reversed)
	for i := range first.URLs {
		if first.URLs[i].Loc != second.URLs[i].Loc {
			t.Errorf("Output order depends on source order at position %d", i)
		}
	}
}

func TestBuildIndex_MainFirstThenAlphabetical(t *testing.T) {
	b := newTestBuilder()

	doc := b.BuildIndex("main", []string{"text", "finance", "health"}, "2026-08-24")

	expected := []string{
		"https://dapsiwow.com/sitemap-main.xml",
		"https://dapsiwow.com/sitemap-finance.xml",
		"https://dapsiwow.com/sitemap-health.xml",
		"https://dapsiwow.com/sitemap-text.xml",
	}
	if len(doc.Sitemaps) != len(expected) {
		t.Fatalf("Expected %d entries, got %d", len(expected), len(doc.Sitemaps))
	}
	for i, want := range expected {
		if doc.Sitemaps[i].Loc != want {
			t.Errorf("Position %d: expected %q, got %q", i, want, doc.Sitemaps[i].Loc)
		}
		if doc.Sitemaps[i].LastMod != "2026-08-24" {
			t.Errorf("Position %d: expected run date stamp, got %q", i, doc.Sitemaps[i].LastMod)
		}
	}
}

func TestBuildIndex_MainNotDuplicated(t *testing.T) {
	b := newTestBuilder()

	doc := b.BuildIndex("main", []string{"main", "finance"}, "2026-08-24")
	count := 0
	for _, entry := range doc.Sitemaps {
		if strings.HasSuffix(entry.Loc, "sitemap-main.xml") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected exactly one main entry, got %d", count)
	}
}

func TestEncode_Declaration(t *testing.T) {
	b := newTestBuilder()
	doc := b.BuildURLSet([]URLRecord{{Path: "/tools/word-counter"}})

	data, err := Encode(doc)
	if err != nil {
		t.Fatalf("Expected encode to succeed, got: %v", err)
	}

	text := string(data)
	if !strings.HasPrefix(text, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Error("Expected XML declaration with UTF-8 encoding")
	}
	if !strings.Contains(text, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`) {
		t.Error("Expected urlset root with sitemaps.org namespace")
	}
	if !strings.Contains(text, "  <url>") {
		t.Error("Expected indented output")
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	b := newTestBuilder()

	records := []URLRecord{
		{Path: "/tools/bmi-calculator", Name: "BMI Calculator", LastMod: "2026-08-24", ChangeFreq: Weekly, Priority: 0.8, HasPriority: true},
		{Path: "/tools/retired-tool", Name: "Retired Tool", LastMod: "2026-08-20", ChangeFreq: Never, Priority: 0.0, HasPriority: true},
		{Path: "/tools/loan-calculator", Name: "Zzz Loan Calculator", LastMod: "2026-08-23", ChangeFreq: Daily, Priority: 0.9, HasPriority: true},
	}
	data, err := Encode(b.BuildURLSet(records))
	if err != nil {
		t.Fatalf("Expected encode to succeed, got: %v", err)
	}

	parsed, err := ParseURLSet(data)
	if err != nil {
		t.Fatalf("Expected generated document to parse back, got: %v", err)
	}
	if len(parsed.URLs) != len(records) {
		t.Fatalf("Expected %d entries after round trip, got %d", len(records), len(parsed.URLs))
	}

	// BuildURLSet sorts by name, so the parsed entries line up with the
	// name-sorted records.
	for i, record := range records {
		entry := parsed.URLs[i]
		if entry.Loc != "https://dapsiwow.com"+record.Path {
			t.Errorf("Entry %d: unexpected loc %q", i, entry.Loc)
		}
		if entry.LastMod != record.LastMod {
			t.Errorf("Entry %d: lastmod %q != %q", i, entry.LastMod, record.LastMod)
		}
		if entry.ChangeFreq != string(record.ChangeFreq) {
			t.Errorf("Entry %d: changefreq %q != %q", i, entry.ChangeFreq, record.ChangeFreq)
		}
		if entry.Priority != FormatPriority(record.Priority) {
			t.Errorf("Entry %d: priority %q != %q", i, entry.Priority, FormatPriority(record.Priority))
		}
	}
}

func TestFormatPriority(t *testing.T) {
	tests := []struct {
		priority float64
		expected string
	}{
		{0.8, "0.8"},
		{1.0, "1.0"},
		{0.5, "0.5"},
		{0.75, "0.8"},
	}
	for _, tt := range tests {
		if got := FormatPriority(tt.priority); got != tt.expected {
			t.Errorf("FormatPriority(%v) = %q, want %q", tt.priority, got, tt.expected)
		}
	}
}
