package categorizer

import (
	"net/url"
	"regexp"
	"strings"
)

var multiSlash = regexp.MustCompile(`/{2,}`)

// Normalize canonicalizes a URL or path into the form used for pattern
// matching and grouping: path component only, lowercase, runs of slashes
// collapsed, no trailing slash except for the root itself. Normalize is
// idempotent.
func Normalize(raw string) string {
	path := raw
	if strings.Contains(raw, "://") {
		if parsed, err := url.Parse(raw); err == nil {
			path = parsed.Path
		}
	}

	path = strings.ToLower(path)
	path = multiSlash.ReplaceAllString(path, "/")
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	if path == "" {
		path = "/"
	}
	return path
}

// NormalizeHref normalizes a catalogue href, synthesizing the canonical
// tool path from the entry identifier when the href does not live under
// the tool prefix. An empty id leaves an off-prefix href as-is.
func NormalizeHref(href, id, toolPrefix string) string {
	path := Normalize(href)
	prefix := Normalize(toolPrefix)
	if prefix != "/" && id != "" && !underPrefix(path, prefix) {
		path = Normalize(prefix + "/" + id)
	}
	return path
}

func underPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
