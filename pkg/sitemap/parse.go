package sitemap

import (
	"encoding/xml"
	"fmt"
)

// ParseURLSet decodes a urlset document.
func ParseURLSet(data []byte) (*URLSet, error) {
	var doc URLSet
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse urlset: %w", err)
	}
	return &doc, nil
}

// ParseIndex decodes a sitemapindex document. An XML document that is not
// a sitemapindex decodes to zero entries rather than an error, so callers
// probe with ParseIndex first and fall through to ParseURLSet.
func ParseIndex(data []byte) (*Index, error) {
	var doc Index
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse sitemapindex: %w", err)
	}
	return &doc, nil
}
