// Command levdist-server provides an HTTP REST API for edit distance.
//
// Usage:
//
//	levdist-server -p 8080
//	PORT=9000 levdist-server
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/Alfex4936/levdist/levdist"
)

func main() {
	port := flag.String("p", envOr("PORT", "8080"), "port to listen on")
	flag.Parse()

	logger := zap.Must(zap.NewProduction())
	defer logger.Sync() //nolint:errcheck // stderr sync failure is harmless on exit

	http.HandleFunc("/v1/distance", levdist.DistanceHandler)
	http.HandleFunc("/health", levdist.HealthHandler)
	http.Handle("/metrics", levdist.MetricsHandler())
	http.HandleFunc("/openapi.json", levdist.OpenAPIHandler)
	http.HandleFunc("/", levdist.DocsHandler)

	addr := fmt.Sprintf(":%s", *port)
	logger.Info("levdist server listening",
		zap.String("addr", addr),
		zap.String("distance", "POST /v1/distance"),
		zap.String("health", "GET /health"),
		zap.String("metrics", "GET /metrics"),
		zap.String("docs", "GET / (Redoc UI)"),
	)
	logger.Fatal("server stopped", zap.Error(http.ListenAndServe(addr, nil)))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
