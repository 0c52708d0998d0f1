// Package pkgmetric exposes the application's Prometheus metrics.
//
// Metrics are registered on an explicit prometheus.Registerer so that tests
// can use a fresh registry instead of the process-wide default one.
package pkgmetric
