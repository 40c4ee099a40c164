package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/undivisible/gizzmoelectronics.com/config"
	"github.com/undivisible/gizzmoelectronics.com/controllers"
	"github.com/undivisible/gizzmoelectronics.com/database"
	"github.com/undivisible/gizzmoelectronics.com/logger"
	"github.com/undivisible/gizzmoelectronics.com/manuals"
	"github.com/undivisible/gizzmoelectronics.com/middleware"
	"github.com/undivisible/gizzmoelectronics.com/routes"
	"github.com/undivisible/gizzmoelectronics.com/services"
	"github.com/undivisible/gizzmoelectronics.com/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	zlog, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer zlog.Sync()

	// Webhook dedup ledger: Redis when configured, in-process otherwise.
	// 72h covers Stripe's redelivery window.
	const ledgerTTL = 72 * time.Hour
	var ledger database.Ledger
	if cfg.RedisURL != "" {
		redisClient := database.NewRedisClient(cfg.RedisURL)
		defer redisClient.Close()
		ledger = database.NewRedisLedger(redisClient, ledgerTTL)
	} else {
		zlog.Warn("REDIS_URL not set, webhook dedup is per-process only")
		ledger = database.NewMemoryLedger(ledgerTTL)
	}

	stripeSvc := services.NewStripeService(cfg.StripeSecretKey)
	checkoutSvc := services.NewCheckoutService(stripeSvc, cfg.PublicBaseURL, zlog)
	webhookSvc := services.NewWebhookService(cfg.StripeWebhookSecret, ledger, zlog)
	if cfg.StripeWebhookSecret == "" {
		zlog.Warn("STRIPE_WEBHOOK_SECRET not set, webhook deliveries will be rejected")
	}

	cartManager := store.NewManager(cfg.CartTTL)
	catalog := manuals.NewCatalog(cfg.ManualsDir, zlog)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins, cfg.PublicBaseURL))
	r.Use(middleware.RateLimitMiddleware())

	routes.Register(r,
		controllers.NewCartController(cartManager, zlog),
		controllers.NewCheckoutController(checkoutSvc, zlog),
		controllers.NewWebhookController(webhookSvc, zlog),
		controllers.NewManualsController(catalog),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zlog.Info("Storefront service running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zlog.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown error: %v", err)
	}
	zlog.Info("Server shutdown complete")
}
