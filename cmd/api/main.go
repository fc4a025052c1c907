package main

import (
	"context"
	"log"
	"time"

	"greenboard/internal/core/cache"
	"greenboard/internal/core/config"
	"greenboard/internal/core/logger"
	"greenboard/internal/core/server"
	emissionadapter "greenboard/internal/features/emissions/adapters"
	emissionconfig "greenboard/internal/features/emissions/config"
	emissionhandler "greenboard/internal/features/emissions/handler"
	emissionports "greenboard/internal/features/emissions/ports"
	emissionservice "greenboard/internal/features/emissions/service"
	pkgadapter "greenboard/internal/features/packages/adapters"
	pkgdomain "greenboard/internal/features/packages/domain"
	pkghandler "greenboard/internal/features/packages/handler"
	pkgports "greenboard/internal/features/packages/ports"
	pkgservice "greenboard/internal/features/packages/service"

	"go.uber.org/zap"
)

// @title Greenboard API
// @version 1.0
// @description Carbon-emission estimates for package shipments across UPS, FedEx, USPS and DHL.
// @contact.name API Support
// @contact.email support@greenboard.dev
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	emissionsCfg := emissionconfig.Default()
	if err := emissionsCfg.Validate(); err != nil {
		l.Fatal("Emissions configuration invalid", zap.Error(err))
	}

	// Redis when configured, in-process cache otherwise.
	var cacheAdapter cache.Cache
	if cfg.RedisURL != "" {
		redisAdapter, err := cache.NewRedisAdapter(cfg.RedisURL)
		if err != nil {
			l.Fatal("Failed to create Redis adapter", zap.Error(err))
		}
		if err := redisAdapter.Ping(context.Background()); err != nil {
			l.Fatal("Redis connection failed", zap.Error(err))
		}
		l.Info("Redis connection verified")
		cacheAdapter = redisAdapter
	} else {
		l.Info("No Redis URL configured, using in-memory cache")
		cacheAdapter = cache.NewMemoryAdapter()
	}
	defer cacheAdapter.Close()

	// Carrier providers and credentials.
	upsAdapter := pkgadapter.NewUPSAdapter(cfg.UPS.BaseURL)
	packageService := pkgservice.NewPackageService(
		[]pkgports.CarrierProvider{upsAdapter},
		map[pkgdomain.CarrierID]pkgports.Credentials{
			pkgdomain.CarrierUPS: {
				ClientID:     cfg.UPS.ClientID,
				ClientSecret: cfg.UPS.ClientSecret,
			},
		},
	)
	packageHandler := pkghandler.NewPackageHandler(packageService)

	// Emissions engine and collaborators. The geocoder keeps its own
	// per-run query cache; the shared cache adapter only backs computed
	// results.
	geocoder := emissionadapter.NewNominatimAdapter(emissionadapter.NominatimConfig{
		BaseURL:   cfg.Geocoder.BaseURL,
		UserAgent: cfg.Geocoder.UserAgent,
		Timeout:   time.Duration(cfg.Geocoder.TimeoutSeconds) * time.Second,
		Retry: emissionports.RetryPolicy{
			MaxAttempts: cfg.Geocoder.MaxRetries,
			Delay:       time.Duration(cfg.Geocoder.RetryDelayMs) * time.Millisecond,
		},
	})

	engine := emissionservice.NewEngine(emissionsCfg, geocoder)
	batchRunner := emissionservice.NewBatchRunner(engine, cfg.BatchConcurrency)
	resultRepo := emissionadapter.NewRedisResultRepository(
		cacheAdapter,
		time.Duration(cfg.ResultTTLSeconds)*time.Second,
	)
	emissionsHandler := emissionhandler.NewEmissionsHandler(engine, batchRunner, resultRepo, packageService)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/packages/:carrier/:number", packageHandler.GetPackage)
	srv.App.Post("/emissions/calculate", emissionsHandler.Calculate)
	srv.App.Post("/emissions/batch", emissionsHandler.CalculateBatch)
	srv.App.Get("/emissions/:carrier/:number", emissionsHandler.GetShipmentEmissions)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
