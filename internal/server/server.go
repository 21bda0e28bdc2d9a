package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"sitemap-split/pkg/logger"
)

// PreviewServer serves the generated output directory over HTTP so the
// operator can check the sitemaps in a browser or point a validator at
// them before deploying.
type PreviewServer struct {
	app *fiber.App
	dir string
	log *logger.Logger
}

func New(outputDir string) *PreviewServer {
	app := fiber.New(fiber.Config{
		AppName:               "sitemap-split preview",
		DisableStartupMessage: true,
	})
	app.Static("/", outputDir, fiber.Static{
		Browse: true,
	})

	return &PreviewServer{
		app: app,
		dir: outputDir,
		log: logger.GetLogger().WithField("component", "preview_server"),
	}
}

// Listen blocks serving the output directory until the process is
// interrupted.
func (s *PreviewServer) Listen(port int) error {
	s.log.WithFields(map[string]interface{}{
		"dir":  s.dir,
		"port": port,
	}).Info("Serving generated sitemaps")
	if err := s.app.Listen(fmt.Sprintf(":%d", port)); err != nil {
		return fmt.Errorf("preview server failed: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *PreviewServer) Shutdown() error {
	return s.app.Shutdown()
}
