// Package metrics defines the Prometheus collectors of the service.
//
// All recorders accept a nil receiver so callers can run without metrics.
package metrics
