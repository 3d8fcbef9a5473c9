package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"car-shop-service/controllers"
	"car-shop-service/database"
	"car-shop-service/middleware"
	"car-shop-service/repository"
	"car-shop-service/routes"
	"car-shop-service/services"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	// --- Database ---
	if err := database.Connect(cfg.SQLitePath, logger); err != nil {
		logger.Fatal("DB connection failed", zap.Error(err))
	}

	// --- HTTP router ---
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.PrometheusMiddleware())

	// The storefront is a static page served elsewhere.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "X-Request-ID"},
		MaxAge:          12 * time.Hour,
	}))

	// --- Dependency injection ---
	catalogRepo := repository.NewInMemoryCatalogRepository(repository.SeedCars())
	orderRepo := repository.NewGormOrderRepository(database.DB)
	orderService := services.NewOrderService(orderRepo, catalogRepo, cfg.ShipmentFee, logger)
	adminService := services.NewAdminService(orderRepo, catalogRepo, cfg.AdminPassword, cfg.ShipmentFee, logger)
	orderController := controllers.NewOrderController(orderService)
	adminController := controllers.NewAdminController(adminService)

	routes.RegisterRoutes(r, orderController, adminController)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "service": "car-shop-service"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// --- HTTP server ---
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Info("Car Shop Service started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Initiating graceful shutdown...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	if err := database.Close(); err != nil {
		logger.Error("Database close error", zap.Error(err))
	}

	log.Println("Car Shop Service stopped gracefully")
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
