package source

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"sitemap-split/pkg/logger"
)

// Tool is one catalogue entry as the site's data file declares it. The
// declared category is informational only; the pipeline re-derives the
// category from the normalized path so both input modes agree.
type Tool struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Href        string `json:"href"`
}

var (
	toolsArrayPattern = regexp.MustCompile(`(?s)const toolsData\s*=\s*\[(.*?)\];`)
	toolEntryPattern  = regexp.MustCompile(`(?s)\{\s*id:\s*['"]([^'"]+)['"],\s*name:\s*['"]([^'"]+)['"],\s*description:\s*['"]([^'"]*)['"],\s*category:\s*['"]([^'"]+)['"].*?href:\s*['"]([^'"]+)['"]`)
)

// CatalogueSource reads tool entries from the site's data file. Both the
// JSON export and the raw TypeScript module (a `const toolsData = [...]`
// array) are accepted; the TypeScript form is scraped with the same
// field layout the site has always used.
type CatalogueSource struct {
	Path string
	log  *logger.Logger
}

func NewCatalogueSource(path string) *CatalogueSource {
	return &CatalogueSource{
		Path: path,
		log:  logger.GetLogger().WithField("component", "catalogue_source"),
	}
}

// Fetch returns the catalogue entries. A missing or empty file is an
// error the orchestrator turns into a zero-output run, never a crash.
func (c *CatalogueSource) Fetch() ([]Tool, error) {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue %s: %w", c.Path, err)
	}

	var tools []Tool
	if strings.HasSuffix(strings.ToLower(c.Path), ".json") {
		tools, err = parseJSONCatalogue(data)
	} else {
		tools, err = parseTypeScriptCatalogue(data)
	}
	if err != nil {
		return nil, err
	}
	if len(tools) == 0 {
		return nil, fmt.Errorf("no tools found in %s", c.Path)
	}

	c.log.WithFields(map[string]interface{}{
		"path":  c.Path,
		"count": len(tools),
	}).Info("Parsed tool catalogue")
	return tools, nil
}

func parseJSONCatalogue(data []byte) ([]Tool, error) {
	var tools []Tool
	if err := json.Unmarshal(data, &tools); err != nil {
		return nil, fmt.Errorf("failed to parse JSON catalogue: %w", err)
	}
	return tools, nil
}

func parseTypeScriptCatalogue(data []byte) ([]Tool, error) {
	match := toolsArrayPattern.FindSubmatch(data)
	if match == nil {
		return nil, fmt.Errorf("could not find toolsData array")
	}

	var tools []Tool
	for _, entry := range toolEntryPattern.FindAllSubmatch(match[1], -1) {
		tools = append(tools, Tool{
			ID:          string(entry[1]),
			Name:        string(entry[2]),
			Description: string(entry[3]),
			Category:    string(entry[4]),
			Href:        string(entry[5]),
		})
	}
	return tools, nil
}
