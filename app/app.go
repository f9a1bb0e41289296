package app

import (
	"fmt"
	"log"
	"os"

	"storemerch/app/controller"
	"storemerch/app/router"
	"storemerch/app/view"
	"storemerch/cart"
	"storemerch/checkout"
	"storemerch/db"
	"storemerch/repository"
	"storemerch/service"
)

// Initialize initializes the application
func Initialize() error {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Parse page templates
	renderer, err := view.NewRenderer("templates")
	if err != nil {
		return fmt.Errorf("failed to initialize templates: %w", err)
	}

	// Initialize repositories
	catalogRepo := repository.NewCatalogRepository()
	imageRepo := repository.NewProductImageRepository()

	// Cart persistence: Redis when configured, otherwise the on-disk slot.
	// An unreachable Redis degrades to the file slot with a warning instead
	// of blocking startup.
	var persister cart.Persister
	if os.Getenv("CART_BACKEND") == "redis" {
		redisPersister, err := cart.NewRedisPersister(os.Getenv("REDIS_ADDR"), cart.DefaultStorageKey)
		if err != nil {
			log.Printf("⚠️  Redis cart storage unavailable, falling back to file storage: %v", err)
		} else {
			persister = redisPersister
		}
	}
	if persister == nil {
		persister = cart.NewFilePersister(os.Getenv("CART_STORAGE_PATH"))
	}
	cartStore := cart.NewStore(persister)

	// Checkout formatter; without a destination number the checkout action
	// stays disabled and the cart page shows a configuration banner
	formatter := checkout.NewFormatter(os.Getenv("WHATSAPP_BASE_URL"), os.Getenv("WHATSAPP_NUMBER"))
	if !formatter.Configured() {
		log.Printf("⚠️  WHATSAPP_NUMBER is not set: checkout is disabled")
	}

	// Image optimizer with on-disk cache
	optimizer := service.NewImageOptimizer(os.Getenv("IMAGE_CACHE_DIR"))

	// Base URL headless Chrome uses to reach the catalog render endpoint
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		baseURL = "http://localhost:" + port
	}
	exportService := service.NewCatalogExportService(catalogRepo, optimizer, baseURL)

	// Drive image sync is optional: without credentials the admin endpoint
	// reports a configuration error instead of failing startup
	var syncService *service.SyncService
	if credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credentialsPath != "" {
		driveService, err := service.NewDriveService(credentialsPath)
		if err != nil {
			log.Printf("⚠️  Drive service unavailable, image sync disabled: %v", err)
		} else {
			syncService = service.NewSyncService(driveService, catalogRepo, imageRepo)
		}
	} else {
		log.Printf("⚠️  GOOGLE_APPLICATION_CREDENTIALS not set, image sync disabled")
	}

	// Create controllers
	controllers := &router.Controllers{
		Home:     controller.NewHomeController(catalogRepo, cartStore, renderer),
		Category: controller.NewCategoryController(catalogRepo, cartStore, renderer),
		Product:  controller.NewProductController(catalogRepo, cartStore, renderer),
		Cart:     controller.NewCartController(catalogRepo, cartStore, formatter, renderer),
		Checkout: controller.NewCheckoutController(cartStore, formatter),
		Image:    controller.NewImageController(imageRepo, optimizer),
		Admin:    controller.NewAdminController(syncService, exportService),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
