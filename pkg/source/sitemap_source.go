package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"sitemap-split/pkg/logger"
	"sitemap-split/pkg/sitemap"
)

// SitemapSource yields URL records from an existing sitemap document, read
// from a local file or an http(s) URL. Every failure mode degrades to the
// built-in example dataset: the splitter run itself never fails because
// its input was missing or malformed.
type SitemapSource struct {
	Input      string
	BaseURL    string
	Defaults   Defaults
	httpClient *HTTPClient
	log        *logger.Logger
}

// Defaults fills optional sitemap fields a parsed record is missing.
type Defaults struct {
	LastMod    string
	ChangeFreq sitemap.ChangeFreq
	Priority   float64
}

func NewSitemapSource(input, baseURL string, defaults Defaults) *SitemapSource {
	return &SitemapSource{
		Input:      input,
		BaseURL:    baseURL,
		Defaults:   defaults,
		httpClient: NewHTTPClient(),
		log:        logger.GetLogger().WithField("component", "sitemap_source"),
	}
}

// Fetch returns the records of the input document, or the example dataset
// when the input is missing or unparseable.
func (s *SitemapSource) Fetch(ctx context.Context) []sitemap.URLRecord {
	data, err := s.read(ctx)
	if err != nil {
		s.log.WithError(err).WithField("input", s.Input).Warn("Input sitemap unavailable, using example dataset")
		return ExampleRecords(s.BaseURL, s.Defaults.LastMod)
	}

	records, err := s.decode(data)
	if err != nil {
		s.log.WithError(err).Warn("Input sitemap unparseable, using example dataset")
		return ExampleRecords(s.BaseURL, s.Defaults.LastMod)
	}
	if len(records) == 0 {
		s.log.Warn("Input sitemap contains no URLs, using example dataset")
		return ExampleRecords(s.BaseURL, s.Defaults.LastMod)
	}

	s.log.WithFields(map[string]interface{}{
		"input": s.Input,
		"count": len(records),
	}).Info("Parsed existing sitemap")
	return records
}

func (s *SitemapSource) read(ctx context.Context) ([]byte, error) {
	if strings.HasPrefix(s.Input, "http://") || strings.HasPrefix(s.Input, "https://") {
		return s.httpClient.Download(ctx, s.Input)
	}
	return os.ReadFile(s.Input)
}

func (s *SitemapSource) decode(data []byte) ([]sitemap.URLRecord, error) {
	data = toUTF8(data)

	// A sitemapindex and a urlset are both plausible inputs; probe for the
	// index first since a urlset decodes into it as zero entries.
	if index, err := sitemap.ParseIndex(data); err == nil && len(index.Sitemaps) > 0 {
		return nil, fmt.Errorf("input is a sitemap index with %d entries, expected a urlset", len(index.Sitemaps))
	}

	doc, err := sitemap.ParseURLSet(data)
	if err != nil {
		return nil, err
	}

	records := make([]sitemap.URLRecord, 0, len(doc.URLs))
	for _, entry := range doc.URLs {
		if entry.Loc == "" {
			continue
		}
		records = append(records, s.toRecord(entry))
	}
	return records, nil
}

func (s *SitemapSource) toRecord(entry sitemap.Entry) sitemap.URLRecord {
	record := sitemap.URLRecord{
		URL:         strings.TrimSpace(entry.Loc),
		LastMod:     entry.LastMod,
		ChangeFreq:  sitemap.ChangeFreq(entry.ChangeFreq),
		Priority:    s.Defaults.Priority,
		HasPriority: true,
	}
	if record.LastMod == "" {
		record.LastMod = s.Defaults.LastMod
	}
	if !record.ChangeFreq.Valid() {
		record.ChangeFreq = s.Defaults.ChangeFreq
	}
	if entry.Priority != "" {
		if parsed, err := strconv.ParseFloat(entry.Priority, 64); err == nil && parsed >= 0 && parsed <= 1 {
			record.Priority = parsed
		}
	}
	return record
}

// toUTF8 converts legacy-encoded documents to UTF-8 so the XML decoder
// never chokes on a declared charset. BOM detection first, then a
// Windows-1252 transform for content that is not valid UTF-8.
func toUTF8(data []byte) []byte {
	if enc := detectEncoding(data); enc != nil {
		reader := transform.NewReader(bytes.NewReader(data), enc.NewDecoder())
		if converted, err := io.ReadAll(reader); err == nil {
			return converted
		}
	}
	if utf8.Valid(data) {
		return data
	}
	reader := transform.NewReader(bytes.NewReader(data), charmap.Windows1252.NewDecoder())
	if converted, err := io.ReadAll(reader); err == nil {
		return converted
	}
	return data
}

func detectEncoding(data []byte) encoding.Encoding {
	if len(data) >= 3 && bytes.Equal(data[:3], []byte{0xEF, 0xBB, 0xBF}) {
		return unicode.UTF8BOM
	}
	if len(data) >= 2 && bytes.Equal(data[:2], []byte{0xFF, 0xFE}) {
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
	}
	if len(data) >= 2 && bytes.Equal(data[:2], []byte{0xFE, 0xFF}) {
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	}
	return nil
}
