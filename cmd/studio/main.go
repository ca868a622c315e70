package main

import (
	"studio/internal/admin"
	adminhandler "studio/internal/admin/handler"
	"studio/internal/assets"
	assethandler "studio/internal/assets/handler"
	bookinghandler "studio/internal/bookings/handler"
	bookingrepo "studio/internal/bookings/repository"
	bookingservice "studio/internal/bookings/service"
	bookingvalidator "studio/internal/bookings/validator"
	"studio/internal/catalog"
	cataloghandler "studio/internal/catalog/handler"
	contenthandler "studio/internal/content/handler"
	contentrepo "studio/internal/content/repository"
	contentservice "studio/internal/content/service"
	contentvalidator "studio/internal/content/validator"
	"studio/internal/events"
	"studio/internal/invoices"
	invoicehandler "studio/internal/invoices/handler"
	"studio/internal/payments"
	paymenthandler "studio/internal/payments/handler"
	"studio/pkg/app"
	"studio/pkg/cache"
	"studio/pkg/config"
	"studio/pkg/contracts"
	"studio/pkg/model"
)

const ServiceName = "studio"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	cfg.SetRedis()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting studio service")

	publisher, err := events.NewPublisher(cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to create event publisher", "broker", cfg.EventBroker, "error", err)
	}

	serverApp := app.NewApplication(cfg)
	serverApp.OnShutdown(func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	})
	serverApp.SetApp(initHandlers(cfg, publisher)...)
	serverApp.Run()
}

func initHandlers(cfg *config.Config, publisher events.Publisher) []contracts.Handler {
	provider := catalog.Default()

	bookingService := bookingservice.NewBookingService(
		bookingrepo.NewMongoBookingRepository(cfg),
		provider,
		bookingvalidator.NewBookingValidator(cfg.Log),
		publisher,
		cfg,
	)

	issuer := model.InvoiceIssuer{
		Name:    cfg.StudioName,
		Address: cfg.StudioAddress,
		Phone:   cfg.StudioPhone,
	}
	invoiceService := invoices.NewInvoiceService(bookingService, issuer, cfg.Location)
	adminService := admin.NewAdminService(bookingService, cfg)

	contentCache := newCache(cfg)
	assetStore := assets.NewGridFSStore(cfg)
	contentValidator := contentvalidator.NewContentValidator(cfg.Log)
	galleryService := contentservice.NewGalleryService(
		contentrepo.NewMongoStore[model.GalleryImage](cfg, contentrepo.GalleryCollection),
		assetStore, contentCache, contentValidator, cfg,
	)
	frameService := contentservice.NewFrameService(
		contentrepo.NewMongoStore[model.Frame](cfg, contentrepo.FrameCollection),
		contentCache, contentValidator, cfg,
	)
	reviewService := contentservice.NewReviewService(
		contentrepo.NewMongoStore[model.Review](cfg, contentrepo.ReviewCollection),
		contentCache, contentValidator, cfg,
	)

	handlers := []contracts.Handler{
		cataloghandler.NewCatalogHandler(provider, cfg.Log),
		bookinghandler.NewBookingHandler(bookingService, cfg.PublicBaseURL, cfg.Log),
		invoicehandler.NewInvoiceHandler(invoiceService, cfg.Log),
		adminhandler.NewAdminHandler(adminService, cfg.Log),
		contenthandler.NewGalleryHandler(galleryService, cfg.Log),
		contenthandler.NewFrameHandler(frameService, cfg.Log),
		contenthandler.NewReviewHandler(reviewService, cfg.Log),
		assethandler.NewAssetHandler(assetStore, cfg.Log),
	}

	if cfg.PaymentMode == config.PaymentModeWebhook {
		paymentService := payments.NewPaymentService(bookingService, payments.NewVerifier(cfg), cfg)
		handlers = append(handlers, paymenthandler.NewWebhookHandler(paymentService, cfg.PaymentWebhookSecret, cfg.Log))
		cfg.Log.Info("Payment webhook enabled", "gateway_verification", cfg.PaymentGatewayURL != "")
	}

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName, "packages", len(provider.ListPackages()))
	return handlers
}

func newCache(cfg *config.Config) cache.Cache {
	if cfg.Client.Redis != nil {
		return cache.NewRedis(cfg.Client.Redis, ServiceName)
	}
	return cache.NewMemory()
}
