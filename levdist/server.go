package levdist

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Alfex4936/levdist/internal/model"
	"github.com/Alfex4936/levdist/internal/util"
)

// Compute runs Distance and wraps the outcome in a serialisable Result.
// ALen/BLen are element counts in the selected mode, so byte counts in
// fast mode and rune counts otherwise.
func Compute(a, b string, fast bool) *model.Result {
	res := &model.Result{
		A:        a,
		B:        b,
		Fast:     fast,
		Distance: Distance(a, b, fast),
	}
	if fast {
		res.ALen, res.BLen = len(a), len(b)
	} else {
		res.ALen = utf8.RuneCountInString(a)
		res.BLen = utf8.RuneCountInString(b)
	}
	return res
}

// DistanceRequest is the HTTP request body for /v1/distance
type DistanceRequest struct {
	A    string `json:"a"`              // first text
	B    string `json:"b"`              // second text
	Fast bool   `json:"fast,omitempty"` // byte mode when true (optional)
}

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "levdist",
			Name:      "requests_total",
			Help:      "Distance requests handled, by comparison mode.",
		},
		[]string{"mode"},
	)
	requestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "levdist",
			Name:      "request_duration_seconds",
			Help:      "Time spent computing one distance request.",
		},
	)
)

func init() {
	prometheus.DefaultRegisterer.MustRegister(requestsTotal, requestDuration)
}

// DistanceHandler handles POST /v1/distance requests
func DistanceHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req DistanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	mode := "runes"
	if req.Fast {
		mode = "bytes"
	}
	start := time.Now()
	res := Compute(req.A, req.B, req.Fast)
	requestDuration.Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(mode).Inc()

	// HTML escaping off so inputs round-trip verbatim
	w.Header().Set("Content-Type", "application/json")
	out, _ := util.MarshalIndent(res)
	fmt.Fprint(w, string(out))
}

// HealthHandler handles GET /health requests
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "levdist",
	})
}

// MetricsHandler serves Prometheus metrics at GET /metrics
func MetricsHandler() http.Handler {
	return promhttp.InstrumentMetricHandler(
		prometheus.DefaultRegisterer,
		promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
			ErrorHandling: promhttp.ContinueOnError,
		}),
	)
}

// OpenAPIHandler serves the OpenAPI 3.0 spec at GET /openapi.json
func OpenAPIHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, openAPISpec)
}

// DocsHandler serves the Redoc UI at GET /
func DocsHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, redocHTML)
}

const openAPISpec = `{
  "openapi": "3.0.3",
  "info": {
    "title": "levdist API",
    "description": "Levenshtein edit distance REST API",
    "version": "1.0.0"
  },
  "paths": {
    "/v1/distance": {
      "post": {
        "summary": "Distance",
        "description": "Computes the edit distance between two texts. Set fast=true for byte-wise comparison (accurate for single-byte text only).",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/DistanceRequest" },
              "examples": {
                "runes": {
                  "value": { "a": "kitten", "b": "sitting" }
                },
                "bytes": {
                  "value": { "a": "kitten", "b": "sitting", "fast": true }
                },
                "unicode": {
                  "value": { "a": "شاهنامه", "b": "شهنامه" }
                }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Distance result",
            "content": {
              "application/json": {
                "schema": { "$ref": "#/components/schemas/Result" },
                "example": {
                  "a": "kitten",
                  "b": "sitting",
                  "fast": false,
                  "distance": 3,
                  "aLen": 6,
                  "bLen": 7
                }
              }
            }
          },
          "400": { "description": "Invalid request (JSON decode error)" }
        }
      }
    },
    "/health": {
      "get": {
        "summary": "Health",
        "responses": {
          "200": {
            "description": "Service up",
            "content": {
              "application/json": {
                "example": { "status": "ok", "service": "levdist" }
              }
            }
          }
        }
      }
    },
    "/metrics": {
      "get": {
        "summary": "Prometheus metrics",
        "responses": {
          "200": { "description": "Metrics in Prometheus text format" }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "DistanceRequest": {
        "type": "object",
        "required": ["a", "b"],
        "properties": {
          "a": { "type": "string", "description": "First text" },
          "b": { "type": "string", "description": "Second text" },
          "fast": { "type": "boolean", "description": "Byte-wise comparison; overcounts multi-byte characters", "default": false }
        }
      },
      "Result": {
        "type": "object",
        "properties": {
          "a": { "type": "string" },
          "b": { "type": "string" },
          "fast": { "type": "boolean" },
          "distance": { "type": "integer", "minimum": 0 },
          "aLen": { "type": "integer", "description": "Element count of a in the selected mode" },
          "bLen": { "type": "integer", "description": "Element count of b in the selected mode" }
        }
      }
    }
  }
}`

const redocHTML = `<!DOCTYPE html>
<html>
  <head>
    <title>levdist API</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>body { margin: 0; padding: 0; }</style>
  </head>
  <body>
    <redoc spec-url="/openapi.json"></redoc>
    <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
  </body>
</html>`
