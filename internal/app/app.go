package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"todayrates/internal/adapters/cache"
	"todayrates/internal/adapters/httpclient"
	"todayrates/internal/adapters/kvfile"
	"todayrates/internal/adapters/postgres"
	"todayrates/internal/api"
	"todayrates/internal/api/handler"
	"todayrates/internal/auth"
	"todayrates/internal/config"
	"todayrates/internal/gold"
	"todayrates/internal/platform/db"
	httpserver "todayrates/internal/platform/http"
	"todayrates/internal/rate"
	"todayrates/internal/settings"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, migrations)
	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// Migrations first, then the pool
	if err = db.Migrate(startupCtx, appCfg.DbServer.GetConnectionStr()); err != nil {
		logrus.WithError(err).Error("Error applying migrations")
		return err
	}
	logrus.Info("✅ Migrations applied")

	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	// Settings store on the local data dir
	kv, err := kvfile.New(appCfg.Settings.DataDir)
	if err != nil {
		logrus.WithError(err).Error("Error preparing settings data dir")
		return err
	}
	settingsStore := settings.NewStore(kv)

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// External feed clients
	fxFeed := httpclient.NewMoneyConvertClient(baseHTTPClient, strings.TrimSuffix(appCfg.Feeds.FXURL, "/"))
	goldFeed := httpclient.NewGoldAPIClient(baseHTTPClient, strings.TrimSuffix(appCfg.Feeds.GoldURL, "/"))

	// Repositories
	rateRepo := postgres.NewExchangeRateRepository(pool)
	goldRepo := postgres.NewGoldPriceRepository(pool)
	userRepo := postgres.NewAdminUserRepository(pool)

	// Board cache
	boardCache, err := cache.NewBoardCache(appCfg.Cache.MaxItems, time.Duration(appCfg.Cache.TTLSeconds)*time.Second)
	if err != nil {
		logrus.WithError(err).Error("Error creating board cache")
		return err
	}
	defer boardCache.Close()

	// Services
	engine := rate.NewEngine()
	rateService := rate.NewService(rateRepo, boardCache)
	goldService := gold.NewService(goldRepo, boardCache)
	generator := rate.NewGenerator(fxFeed, goldFeed, settingsStore, engine, rateRepo, goldRepo, boardCache)
	authService := auth.NewService(userRepo, appCfg.Auth.JWTSecret, time.Duration(appCfg.Auth.TokenTTLMinutes)*time.Minute)

	// Daily generation scheduler, tied to the root context
	if appCfg.Scheduler.Enabled {
		scheduler := rate.NewScheduler(generator, appCfg.Scheduler.At)
		defer func() {
			if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
				logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
			}
		}()
		if startErr := scheduler.Start(ctx); startErr != nil {
			logrus.WithError(startErr).Error("Failed to start scheduler")
			return startErr
		}
		logrus.Infof("✅ Scheduler activation successful, daily at %s", appCfg.Scheduler.At)
	}

	// Handlers and router
	h := handler.New(rateService, goldService, settingsStore, generator, authService)
	router := api.NewRouter(h, authService)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
