// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. The request pipeline (request ID, timing, recovery, access logging)
// is composed explicitly in Init; authentication and rate limiting are
// attached per route before requests are delegated to the service layer.
package http
