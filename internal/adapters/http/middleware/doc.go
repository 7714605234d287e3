// Package middleware holds the inbound HTTP pipeline of the campaign search
// API. cmd/server installs it in this order:
//
//	Recovery → RequestID → CorrelationID → Session → OpenTelemetry → Logging → Timeout → handler
//
// Session must precede Logging so request logs name the caller, and RequestID
// must precede CorrelationID, which falls back to the request ID.
package middleware
