// Package metrics registers the Prometheus instrumentation for the
// connectivity engine via promauto: package-level collectors, grouped by
// subsystem, registered once at import time. conexus itself runs no
// HTTP server — callers that want to scrape these metrics wire
// prometheus.DefaultRegisterer into their own /metrics endpoint.
package metrics
