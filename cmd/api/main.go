package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"linha-viva/internal/config"
	"linha-viva/internal/handler"
	"linha-viva/internal/middleware"
	"linha-viva/internal/repository"
	"linha-viva/internal/service"
	"linha-viva/internal/sheets"
	"linha-viva/internal/ws"
	"linha-viva/pkg/database"
	"linha-viva/pkg/jwt"
	"linha-viva/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// 1. Load config (.env + environment)
	cfg, err := config.Load()
	if err != nil {
		logger.New("prod").Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	appLog := logger.New(cfg.App.Env)
	loc := cfg.Location()

	// 2. Setup Database
	db, err := database.Connect(database.Options{
		Driver:     cfg.DB.Driver,
		URL:        cfg.DB.URL,
		Host:       cfg.DB.Host,
		User:       cfg.DB.User,
		Password:   cfg.DB.Password,
		Name:       cfg.DB.Name,
		Port:       cfg.DB.Port,
		SQLitePath: cfg.DB.SQLitePath,
		Debug:      cfg.App.Env == "dev",
	})
	if err != nil {
		appLog.Error("database connection failed", "driver", cfg.DB.Driver, "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		appLog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// 3. Seed the initial inventory on an empty cache
	if seeded, err := database.SeedInventory(db); err != nil {
		appLog.Warn("inventory seed failed", "error", err)
	} else if seeded {
		appLog.Info("initial inventory seeded")
	}

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub(appLog)
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	itemRepo := repository.NewInventoryRepo(db)
	requestRepo := repository.NewRequestRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	settingRepo := repository.NewSettingRepo(db)

	endpoint := service.NewEndpointStore(settingRepo, cfg.Sheets.URL)
	sheetsClient := sheets.NewClient(endpoint.URL, cfg.Sheets.Timeout)

	invService := service.NewInventoryService(service.InventoryDeps{
		DB:           db,
		Items:        itemRepo,
		Requests:     requestRepo,
		Transactions: txRepo,
		Endpoint:     endpoint,
		Remote:       sheetsClient,
		Notifier:     wsHub,
		Logger:       appLog,
		Location:     loc,
		MergePolicy:  cfg.MergePolicy(),
		RefreshDelay: cfg.Sheets.RefreshDelay,
	})
	dashService := service.NewDashboardService(itemRepo, requestRepo, txRepo, invService, loc)
	reportService := service.NewReportService(itemRepo, requestRepo, loc)
	authService, err := service.NewAuthService(settingRepo, jwt.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL), cfg.Auth.AdminPassword, wsHub, appLog)
	if err != nil {
		appLog.Error("auth setup failed", "error", err)
		os.Exit(1)
	}

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: sheets.AppName,
	})

	// Middleware
	app.Use(fiberlogger.New()) // Logging request
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New())        // CORS

	if cfg.Metrics.Enabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	// 7. Routes
	handler.SetupRoutes(app, handler.Handlers{
		Inventory: handler.NewInventoryHandler(invService),
		Sync:      handler.NewSyncHandler(invService),
		Dashboard: handler.NewDashboardHandler(dashService),
		Report:    handler.NewReportHandler(reportService),
		Auth:      handler.NewAuthHandler(authService),
	}, middleware.RequireAdmin(authService))

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		if !wsHub.Join(c) {
			return
		}
		defer wsHub.Leave(c)

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Initial pull and periodic sync
	ctx, stop := context.WithCancel(context.Background())
	go func() {
		rctx, cancel := context.WithTimeout(ctx, cfg.Sheets.Timeout+10*time.Second)
		defer cancel()
		if err := invService.Refresh(rctx); err != nil && !errors.Is(err, service.ErrRefreshInProgress) {
			appLog.Warn("initial refresh failed, serving local cache", "error", err)
		}
	}()
	invService.StartPolling(ctx, cfg.Sheets.SyncInterval)

	// 9. Graceful Shutdown
	go func() {
		appLog.Info("listening", "port", cfg.HTTP.Port, "db", cfg.DB.Driver)
		if err := app.Listen(":" + cfg.HTTP.Port); err != nil {
			appLog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info("shutting down server")
	stop()
	invService.Close()
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		appLog.Error("server forced to shutdown", "error", err)
	}
	wsHub.Stop()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	appLog.Info("server exited")
}
