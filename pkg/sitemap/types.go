package sitemap

import "encoding/xml"

// Namespace is the sitemaps.org protocol namespace carried by every
// generated document.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq is the sitemaps.org change frequency hint.
type ChangeFreq string

const (
	Always  ChangeFreq = "always"
	Hourly  ChangeFreq = "hourly"
	Daily   ChangeFreq = "daily"
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
	Yearly  ChangeFreq = "yearly"
	Never   ChangeFreq = "never"
)

func (f ChangeFreq) Valid() bool {
	switch f {
	case Always, Hourly, Daily, Weekly, Monthly, Yearly, Never:
		return true
	}
	return false
}

// URLRecord is one page as the source adapters hand it to the pipeline.
// Records are immutable once produced; missing optional fields have been
// filled with the configured defaults by the adapter. HasPriority marks a
// priority that was actually set, so an explicit 0.0 survives instead of
// being mistaken for an absent value.
type URLRecord struct {
	URL         string
	Path        string
	Name        string
	LastMod     string // YYYY-MM-DD
	ChangeFreq  ChangeFreq
	Priority    float64
	HasPriority bool
}

// Entry is one <url> element of a urlset document.
type Entry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// URLSet is a sitemap document.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []Entry  `xml:"url"`
}

// IndexEntry is one <sitemap> element of a sitemapindex document.
type IndexEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Index is a sitemap-index document.
type Index struct {
	XMLName  xml.Name     `xml:"sitemapindex"`
	Xmlns    string       `xml:"xmlns,attr"`
	Sitemaps []IndexEntry `xml:"sitemap"`
}
