// Package http implements the REST transport of the record store.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as authentication, container checks, request tracing, access
// logging and response compression are handled here before requests are
// delegated to the service layer.
package http
