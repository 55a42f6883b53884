package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"skyward/aerodrome/internal/api"
	"skyward/aerodrome/internal/common"
	"skyward/aerodrome/internal/db"
	"skyward/aerodrome/internal/logging"
	"skyward/aerodrome/internal/metrics"
	"skyward/aerodrome/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}

	if err := logging.Init(appEnv); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Aerodrome starting up",
		"environment", appEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Connect to DB with sqlx
	if err := db.InitPostgres(); err != nil {
		logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
		log.Fatalf("failed to connect to Postgres (sqlx): %v", err)
	}
	logging.Info("Connected to Postgres (sqlx)")

	// Connect to DB with GORM; this also migrates the schema, which is
	// what puts the seat uniqueness index in place.
	if _, err := db.InitPostgresORM(db.Dsn()); err != nil {
		logging.Error("Failed to connect to Postgres (GORM)", "error", err.Error())
		log.Fatalf("failed to connect to Postgres (GORM): %v", err)
	}
	logging.Info("Connected to Postgres (GORM), schema migrated")

	// Cache backend: Redis when configured, in-memory otherwise.
	var cache common.CacheStore
	var cachePing func() error
	if os.Getenv("REDIS_HOST") != "" {
		redisCache, err := common.NewRedisCacheService()
		if err != nil {
			logging.Error("Failed to connect to Redis", "error", err.Error())
			log.Fatalf("failed to connect to Redis: %v", err)
		}
		cache = redisCache
		cachePing = redisCache.Ping
		logging.Info("Connected to Redis cache")
	} else {
		cache = common.NewMemoryCacheService(5*time.Minute, 10*time.Minute)
		logging.Info("Using in-memory cache")
	}
	defer cache.Close()

	metricsReg := metrics.NewMetricsRegistry()
	deps := api.InitDependencies(cache, metricsReg)

	upSince := time.Now()
	router := routes.RegisterRoutes(deps, jwtSecret, cachePing, upSince)

	// Metrics endpoint lives outside the chi router so it skips the
	// auth and rate-limit middleware.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logging.Info("Server starting", "port", port, "environment", appEnv)
	log.Fatal(http.ListenAndServe(":"+port, mux))
}
