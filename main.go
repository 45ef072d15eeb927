package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotel-checkin/config"
	"hotel-checkin/controllers"
	"hotel-checkin/i18n"
	"hotel-checkin/routes"
	"hotel-checkin/services"
	"hotel-checkin/storage"
	"hotel-checkin/templates"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ config: %v", err)
	}

	st, closeStorage, err := storage.Open(cfg)
	if err != nil {
		log.Fatalf("❌ storage (%s): %v", cfg.StorageDriver, err)
	}
	defer func() {
		if err := closeStorage(); err != nil {
			log.Printf("⚠️ close storage: %v", err)
		}
	}()
	log.Printf("✅ storage driver %s ready", cfg.StorageDriver)

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), 15*time.Second)
	store := services.NewRecordStore(st, cfg.StorageKey)
	if err := store.Load(bootCtx); err != nil {
		log.Printf("⚠️ history not loaded, starting empty: %v", err)
	}
	cancelBoot()
	log.Printf("✅ %d stored registrations loaded", store.Len())

	var extractor services.Extractor
	if ex := services.NewHTTPExtractor(cfg); ex != nil {
		extractor = ex
		log.Printf("✅ ID extraction via %s", cfg.ExtractionModel)
	} else {
		log.Println("ℹ️ EXTRACTION_ENDPOINT not set; ID capture attaches the photo only")
	}

	loc := cfg.Location()
	hotel := cfg.Hotel()
	lang := i18n.Normalize(cfg.DefaultLanguage, "")

	wizard := services.NewWizardService(store, cfg.IDCaptureEnabled)
	capture := services.NewIDCaptureService(extractor)
	receipts := services.NewReceiptService(store, hotel, loc, cfg.PublicBaseURL, templates.Must())
	exports := services.NewExportService(store, loc)

	pageController := controllers.NewPageController(wizard, receipts, hotel, lang)
	wizardController := controllers.NewWizardController(wizard, capture)
	historyController := controllers.NewHistoryController(store, wizard, receipts, exports, lang)

	router := routes.SetupRouter(cfg.CorsOrigins, pageController, wizardController, historyController)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		// extraction calls run inside the id-capture request
		WriteTimeout: cfg.ExtractionTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
		return
	}
	log.Println("✅ Server stopped gracefully")
}
