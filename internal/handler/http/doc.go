// Package http implements the HTTP transport layer of the relay.
//
// It exposes route wiring, request handlers, and middleware used by the
// browser-facing API. Cross-cutting concerns such as CORS headers, request
// tracing, access logging, body limits and response compression are handled
// in this package before requests are delegated to the service layer. Every
// failure leaves through writeError as a uniform JSON error body.
package http
