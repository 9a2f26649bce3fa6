package main

import (
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"ShopLite/internal/static"
	"ShopLite/pkg/kit"
)

const version = "1.0.0"

func main() {
	service := "static"
	env := getenv("APP_ENV", "development")

	log := kit.NewLogger(service, env)
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "3000")
	publicDir := getenv("PUBLIC_DIR", "./public")

	deployment := "local"
	if os.Getenv("RENDER") != "" {
		deployment = "render"
	}

	s := static.NewServer(publicDir, version, env, deployment, log)

	// A handler panic lands here and takes the whole server down.
	faults := make(chan error, 1)

	deps := static.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: os.Getenv("METRICS_TOKEN") != "",
		MetricsToken:   os.Getenv("METRICS_TOKEN"),
		Faults:         faults,
	}

	if limit := getenvInt("RATE_LIMIT", 0); limit > 0 {
		window := getenvInt("RATE_WINDOW_SECONDS", 60)
		deps.RateLimiter = kit.NewIPRateLimiter(limit, window)
		log.Info("rate limiting enabled", zap.Int("limit", limit), zap.Int("window_seconds", window))
	}

	log.Info("serving",
		zap.String("public_dir", publicDir),
		zap.String("url", "http://localhost:"+port),
		zap.String("environment", env),
		zap.String("deployment", deployment),
	)

	if err := kit.RunHTTPServer(":"+port, static.NewHandler(s, deps), log, faults); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
