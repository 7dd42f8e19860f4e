// Package server runs the blog API transports: the chi HTTP router and the
// gRPC health service. Listeners are bound when the server is built so that
// address conflicts fail startup instead of the first request.
package server
