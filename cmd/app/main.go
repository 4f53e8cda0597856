package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"takeout/cmd"
	"takeout/internal/adapters/out/postgres/cartrepo"
	"takeout/internal/adapters/out/postgres/catalogrepo"
	"takeout/internal/adapters/out/postgres/orderrepo"
	"takeout/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config := getConfig()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := openDatabase(config)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	root, err := cmd.NewCompositionRoot(config, db, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	jobManager := root.CreateJobManager(logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, config.HTTPPort, logger)
}

func getConfig() cmd.Config {
	// Missing .env is fine in environments configured through real env vars.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:   envOr("HTTP_PORT", "8080"),
		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     envOr("DB_USER", "postgres"),
		DBPassword: envOr("DB_PASSWORD", "postgres"),
		DBName:     envOr("DB_NAME", "takeout"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),

		ShopAddress:          envOr("SHOP_ADDRESS", ""),
		DeliveryRadiusMeters: envIntOr("DELIVERY_RADIUS_METERS", 5000),

		PendingPaymentTimeout: envDurationOr("PENDING_PAYMENT_TIMEOUT", 15*time.Minute),
		StaleDeliveryAge:      envDurationOr("STALE_DELIVERY_AGE", time.Hour),
		MenuCacheTTL:          envDurationOr("MENU_CACHE_TTL", 30*time.Minute),

		BaiduAPIURL: envOr("BAIDU_API_URL", ""),
		BaiduAPIKey: envOr("BAIDU_API_KEY", ""),

		WechatAPIURL:     envOr("WECHAT_API_URL", ""),
		WechatMerchantID: envOr("WECHAT_MERCHANT_ID", ""),
		WechatAPIKey:     envOr("WECHAT_API_KEY", ""),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		config.DBHost, config.DBUser, config.DBPassword,
		config.DBName, config.DBPort, config.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&userrepo.UserDTO{},
		&userrepo.AddressDTO{},
		&catalogrepo.CategoryDTO{},
		&catalogrepo.DishDTO{},
		&catalogrepo.ComboDTO{},
		&catalogrepo.ComboDishDTO{},
		&cartrepo.CartItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderDetailDTO{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func startWebServer(root *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/ws/merchant", root.Hub().HandleConnection)

	root.CreateServer().RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
}
