package models

// Headers shared by the record-store client and server.
const (
	// HeaderContainerID carries the container identifier on every request.
	HeaderContainerID = "X-Container-ID"
	// HeaderTraceID correlates client and server log entries of one request.
	HeaderTraceID = "X-Trace-ID"
	// HeaderAuthorization carries the bearer token.
	HeaderAuthorization = "Authorization"
)
