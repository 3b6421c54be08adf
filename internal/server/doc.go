// Package server runs the record-store transports: the REST API over HTTP
// and, when an address is configured, the gRPC health service. Both run as
// workers until a shutdown signal arrives and are then stopped gracefully.
package server
