package main

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/ergmcore/metrics"
)

// startMetricsServer registers a fresh Collector against its own
// registry and serves it on addr in a background goroutine, returning
// the Collector for the caller to pass to the estimator as a Recorder.
// Serving nothing (addr == "") still returns a usable Collector whose
// gauges are simply never scraped. Registration against a fresh,
// just-constructed registry cannot fail in practice (no duplicate
// metric names are possible here), so a failure indicates a programming
// error in this package rather than bad user input; log.Fatalf is kept
// for that one case instead of threading an error return through every
// caller.
func startMetricsServer(addr string) *metrics.Collector {
	coll := metrics.NewCollector()
	if addr == "" {
		return coll
	}

	reg := prometheus.NewRegistry()
	if err := coll.Register(reg); err != nil {
		log.Fatalf("ergmcore: registering metrics: %v", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	go func() {
		log.Printf("ergmcore: serving /metrics on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("ergmcore: metrics server stopped: %v", err)
		}
	}()
	return coll
}
