package source

import "sitemap-split/pkg/sitemap"

// ExampleRecords is the fallback dataset used when no input sitemap can
// be read. It mirrors the site's structure closely enough that a degraded
// run still produces a representative set of files.
func ExampleRecords(baseURL, dateStamp string) []sitemap.URLRecord {
	pages := []struct {
		path       string
		changeFreq sitemap.ChangeFreq
		priority   float64
	}{
		{"/", sitemap.Daily, 1.0},
		{"/about", sitemap.Monthly, 0.8},
		{"/contact", sitemap.Monthly, 0.8},
		{"/privacy", sitemap.Yearly, 0.5},
		{"/terms", sitemap.Yearly, 0.5},
		{"/help", sitemap.Monthly, 0.7},
		{"/tools", sitemap.Weekly, 0.9},

		{"/tools/loan-calculator", sitemap.Weekly, 0.8},
		{"/tools/mortgage-calculator", sitemap.Weekly, 0.8},
		{"/tools/emi-calculator", sitemap.Weekly, 0.8},
		{"/tools/compound-interest-calculator", sitemap.Weekly, 0.8},
		{"/tools/tax-calculator", sitemap.Weekly, 0.8},
		{"/tools/paypal-fee-calculator", sitemap.Weekly, 0.8},

		{"/tools/bmi-calculator", sitemap.Weekly, 0.8},
		{"/tools/bmr-calculator", sitemap.Weekly, 0.8},
		{"/tools/calorie-calculator", sitemap.Weekly, 0.8},
		{"/tools/body-fat-calculator", sitemap.Weekly, 0.8},

		{"/tools/word-counter", sitemap.Weekly, 0.8},
		{"/tools/character-counter", sitemap.Weekly, 0.8},
		{"/tools/case-converter", sitemap.Weekly, 0.8},
		{"/tools/password-generator", sitemap.Weekly, 0.8},

		{"/tools/merge-pdf", sitemap.Weekly, 0.8},
		{"/tools/split-pdf", sitemap.Weekly, 0.8},
		{"/tools/compress-pdf", sitemap.Weekly, 0.8},
	}

	records := make([]sitemap.URLRecord, 0, len(pages))
	for _, page := range pages {
		records = append(records, sitemap.URLRecord{
			URL:         baseURL + page.path,
			LastMod:     dateStamp,
			ChangeFreq:  page.changeFreq,
			Priority:    page.priority,
			HasPriority: true,
		})
	}
	return records
}
