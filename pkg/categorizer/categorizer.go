package categorizer

import (
	"fmt"
	"regexp"
)

// Rule declares one category and its ordered match patterns. Patterns are
// unanchored regular expressions matched anywhere in the normalized path;
// a pattern that needs anchoring carries its own ^ or $.
type Rule struct {
	Name     string
	Patterns []string
}

type compiledPattern struct {
	category string
	re       *regexp.Regexp
}

// Categorizer assigns every normalized path to exactly one category.
//
// The rule table is an explicit decision list: non-fallback categories are
// scanned in declared order, patterns within a category in declared order,
// and the first match wins. The fallback category's own patterns are only
// consulted after every other category has failed, and a path nothing
// matches still lands in the fallback. Declaration order is therefore the
// only tie-breaker between categories that could both match a path.
type Categorizer struct {
	patterns     []compiledPattern
	fallback     []compiledPattern
	fallbackName string
}

// New compiles the rule table. The fallback name must appear among the
// rules; its position in the list does not matter since it is always
// scanned last.
func New(rules []Rule, fallbackName string) (*Categorizer, error) {
	c := &Categorizer{fallbackName: fallbackName}

	fallbackSeen := false
	for _, rule := range rules {
		if rule.Name == fallbackName {
			fallbackSeen = true
		}
		for _, pattern := range rule.Patterns {
			// Case-insensitive even though paths arrive lowercased.
			re, err := regexp.Compile("(?i)" + pattern)
			if err != nil {
				return nil, fmt.Errorf("category %s: invalid pattern %q: %w", rule.Name, pattern, err)
			}
			compiled := compiledPattern{category: rule.Name, re: re}
			if rule.Name == fallbackName {
				c.fallback = append(c.fallback, compiled)
			} else {
				c.patterns = append(c.patterns, compiled)
			}
		}
	}
	if !fallbackSeen {
		return nil, fmt.Errorf("fallback category %q is not declared", fallbackName)
	}

	return c, nil
}

// Categorize returns the category for a normalized path. It is total:
// every input maps to exactly one configured category name.
func (c *Categorizer) Categorize(normalizedPath string) string {
	for _, p := range c.patterns {
		if p.re.MatchString(normalizedPath) {
			return p.category
		}
	}

	for _, p := range c.fallback {
		if p.re.MatchString(normalizedPath) {
			return c.fallbackName
		}
	}

	return c.fallbackName
}

// Fallback returns the configured fallback category name.
func (c *Categorizer) Fallback() string {
	return c.fallbackName
}
