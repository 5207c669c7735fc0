package main

import (
	"fmt"
	"log"

	"renova/internal/config"
	"renova/internal/email/noop"
	"renova/internal/email/ses"
	"renova/internal/handler"
	"renova/internal/port"
	"renova/internal/repository/postgres"
	"renova/internal/router"
	"renova/internal/service"
	s3storage "renova/internal/storage/s3"
	"renova/internal/upload"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	portfolioRepo := postgres.NewPortfolioRepo(db)
	prestationRepo := postgres.NewPrestationRepo(db)

	// Initialize the image uploader
	uploader, err := newUploader(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize uploader: %w", err)
	}

	// Initialize the contact-form sender
	sender, err := newSender(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.Session)
	proxySvc := service.NewImageProxyService(cfg.Proxy)
	portfolioSvc := service.NewPortfolioService(portfolioRepo, uploader, proxySvc, &cfg.Upload)
	prestationSvc := service.NewPrestationService(prestationRepo, uploader, proxySvc, &cfg.Upload)
	contactSvc := service.NewContactService(sender, cfg.Contact)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc, cfg.Session)
	portfolioH := handler.NewPortfolioHandler(portfolioSvc)
	prestationH := handler.NewPrestationHandler(prestationSvc)
	proxyH := handler.NewProxyHandler(proxySvc)
	contactH := handler.NewContactHandler(contactSvc)
	exportH := handler.NewExportHandler(portfolioSvc, prestationSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc, authH, portfolioH, prestationH, proxyH, contactH, exportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// newUploader selects the image upload backend: "relay" forwards to the
// external hosting API, "s3" writes straight to object storage.
func newUploader(cfg *config.Config) (port.ImageUploader, error) {
	switch cfg.Upload.Provider {
	case "s3":
		storage, err := s3storage.NewS3Client(&cfg.Storage)
		if err != nil {
			return nil, err
		}
		return upload.NewS3Uploader(storage, &cfg.Upload), nil
	default:
		return upload.NewRelay(&cfg.Upload), nil
	}
}

func newSender(cfg *config.Config) (port.EmailSender, error) {
	switch cfg.Contact.Provider {
	case "ses":
		return ses.NewSESSender(cfg.Contact.Region, cfg.Contact.FromAddress)
	default:
		return noop.NewNoopSender(), nil
	}
}
