package generator

import (
	"fmt"
	"sort"
	"strings"
)

// Report summarizes one generation run: how many records each category
// received and which files were written.
type Report struct {
	Total      int
	Categories map[string]int
	Files      []string
	DateStamp  string
}

func newReport(dateStamp string) *Report {
	return &Report{
		Categories: make(map[string]int),
		DateStamp:  dateStamp,
	}
}

// Summary renders the human-readable run summary printed at the end of
// every invocation.
func (r *Report) Summary() string {
	var b strings.Builder
	b.WriteString("Categorization summary:\n")

	names := make([]string, 0, len(r.Categories))
	for name := range r.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "  %s: %d\n", name, r.Categories[name])
	}
	fmt.Fprintf(&b, "  total: %d\n", r.Total)

	if len(r.Files) == 0 {
		b.WriteString("No files written.\n")
		return b.String()
	}
	b.WriteString("Generated files:\n")
	for _, file := range r.Files {
		fmt.Fprintf(&b, "  - %s\n", file)
	}
	return b.String()
}
