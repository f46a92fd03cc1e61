package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/vbonduro/amblitz/internal/catalog/loader"
	"github.com/vbonduro/amblitz/internal/catalog/watch"
	"github.com/vbonduro/amblitz/internal/config"
	"github.com/vbonduro/amblitz/internal/contact"
	"github.com/vbonduro/amblitz/internal/contact/demo"
	"github.com/vbonduro/amblitz/internal/contact/emailjs"
	"github.com/vbonduro/amblitz/internal/logging"
	"github.com/vbonduro/amblitz/internal/media"
	"github.com/vbonduro/amblitz/internal/media/local"
	"github.com/vbonduro/amblitz/internal/service"
	"github.com/vbonduro/amblitz/internal/site"
	"github.com/vbonduro/amblitz/internal/web"
	"github.com/vbonduro/amblitz/internal/web/templates"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	if err := run(cfg, logger); err != nil {
		logger.Error("fatal error", "error", err)
		cleanup()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	siteContent, err := site.Load(cfg.SiteConfig)
	if err != nil {
		return err
	}

	src := loader.NewSource(cfg.CatalogSource)
	initial, err := loader.Load(ctx, src)
	if err != nil {
		return err
	}
	logger.Info("catalog loaded", "source", src.Location(), "projects", initial.Len())
	holder := watch.NewHolder(initial)

	projectService := service.NewProjectService(holder, siteContent, logger)
	contactService := service.NewContactService(newSender(cfg, logger), logger)
	server := web.NewServer(projectService, contactService, siteContent,
		newMediaStore(cfg, logger), templates.FS, cfg.CORSAllowedOrigins, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gctx, cfg.ListenAddr)
	})
	if fileSrc, ok := src.(*loader.FileSource); ok && cfg.CatalogWatch {
		watcher := watch.NewWatcher(fileSrc.Path, holder, logger)
		g.Go(func() error {
			return watcher.Run(gctx)
		})
	}
	return g.Wait()
}

func newSender(cfg *config.Config, logger *slog.Logger) contact.Sender {
	if cfg.DemoMode() {
		logger.Warn("EMAILJS_PUBLIC_KEY not set, contact form running in demo mode")
		return demo.NewSender(cfg.ContactDemoDelay, logger)
	}
	logger.Info("using EmailJS contact sender", "service_id", cfg.EmailJSServiceID)
	client := emailjs.NewClient(cfg.EmailJSPublicKey, cfg.EmailJSPrivateKey, cfg.EmailJSServiceID, cfg.EmailJSTemplateID)
	if cfg.EmailJSAPIURL != "" {
		client = client.WithBaseURL(cfg.EmailJSAPIURL)
	}
	return client
}

// newMediaStore returns nil when the media directory is unusable so the
// site still serves pages that reference external images.
func newMediaStore(cfg *config.Config, logger *slog.Logger) media.Store {
	store, err := local.NewMediaStore(cfg.MediaPath)
	if err != nil {
		logger.Warn("media store disabled", "path", cfg.MediaPath, "error", err)
		return nil
	}
	return store
}
