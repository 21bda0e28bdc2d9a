package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"sitemap-split/internal/config"
	"sitemap-split/internal/server"
	"sitemap-split/pkg/generator"
	"sitemap-split/pkg/logger"
	"sitemap-split/pkg/sitemap"
	"sitemap-split/pkg/source"
)

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault returns environment variable as int or default
func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func main() {
	// Environment variable defaults (CI friendly)
	defaultMode := getEnvOrDefault("SITEMAP_MODE", "split")
	defaultInput := getEnvOrDefault("SITEMAP_INPUT", "sitemap.xml")
	defaultTools := getEnvOrDefault("SITEMAP_TOOLS_FILE", "client/src/data/tools.ts")
	defaultBaseURL := getEnvOrDefault("SITEMAP_BASE_URL", "")
	defaultOutput := getEnvOrDefault("SITEMAP_OUTPUT_DIR", "")
	defaultPort := getEnvIntOrDefault("SITEMAP_PORT", 8080)

	var (
		mode       = flag.String("mode", defaultMode, "Pipeline mode: split (existing sitemap) or tools (catalogue file) (env: SITEMAP_MODE)")
		input      = flag.String("input", defaultInput, "Existing sitemap path or URL for split mode (env: SITEMAP_INPUT)")
		toolsFile  = flag.String("tools", defaultTools, "Tool catalogue file for tools mode (env: SITEMAP_TOOLS_FILE)")
		baseURL    = flag.String("base-url", defaultBaseURL, "Site base URL, overrides config (env: SITEMAP_BASE_URL)")
		outputDir  = flag.String("output", defaultOutput, "Output directory, overrides config (env: SITEMAP_OUTPUT_DIR)")
		configPath = flag.String("config", "sitemap.yaml", "Optional YAML config file")
		serve      = flag.Bool("serve", false, "Serve the output directory after generation")
		port       = flag.Int("port", defaultPort, "Preview server port (env: SITEMAP_PORT)")
		debug      = flag.Bool("debug", false, "Enable debug logging")
		help       = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		printUsage()
		return
	}

	// Positional arguments keep the historical invocation working:
	// sitemap-split [input-sitemap] [base-url]
	if flag.NArg() > 0 {
		*input = flag.Arg(0)
	}
	if flag.NArg() > 1 {
		*baseURL = flag.Arg(1)
	}

	manager := config.NewManager()
	if _, err := manager.Load(*configPath); err != nil {
		logger.WithError(err).Error("Failed to load configuration")
		return
	}
	cfg := manager.GetConfig()

	logCfg := logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		TimeFormat: cfg.Logger.TimeFormat,
	}
	if *debug {
		logCfg.Level = "debug"
	}
	logger.SetLogger(logger.New(logCfg))
	log := logger.GetLogger().WithField("component", "main")
	if *baseURL != "" {
		cfg.Site.BaseURL = *baseURL
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}

	gen, err := generator.New(cfg)
	if err != nil {
		log.WithError(err).Error("Failed to initialize generator")
		return
	}

	fmt.Printf("sitemap-split\n")
	fmt.Printf("Base URL: %s\n", cfg.Site.BaseURL)
	fmt.Printf("Date stamp: %s\n\n", gen.DateStamp())

	var report *generator.Report
	switch *mode {
	case "tools":
		report = gen.RunTools(source.NewCatalogueSource(*toolsFile))
	default:
		src := source.NewSitemapSource(*input, cfg.Site.BaseURL, source.Defaults{
			LastMod:    gen.DateStamp(),
			ChangeFreq: sitemap.ChangeFreq(cfg.Defaults.ChangeFreq),
			Priority:   cfg.Defaults.Priority,
		})
		report = gen.RunSplit(context.Background(), src)
	}

	fmt.Println(report.Summary())

	if *serve {
		if err := server.New(cfg.Output.Dir).Listen(*port); err != nil {
			log.WithError(err).Error("Preview server stopped")
		}
	}
}

func printUsage() {
	fmt.Println("sitemap-split - categorized sitemap generator")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  sitemap-split [flags] [input-sitemap] [base-url]")
	fmt.Println()
	fmt.Println("Modes:")
	fmt.Println("  split   Read an existing sitemap.xml and split it into category sitemaps")
	fmt.Println("  tools   Read the tool catalogue file and generate category sitemaps")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}
