package http

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/rs/zerolog"
)

const (
	requestIDHeader   = "X-Request-ID"
	processTimeHeader = "X-Process-Time"
)

// Middleware wraps a handler with one pipeline stage.
type Middleware func(http.Handler) http.Handler

// Chain wraps h with stages so that stages[0] is the outermost: its entry
// code runs first and its exit code runs last.
func Chain(h http.Handler, stages ...Middleware) http.Handler {
	for i := len(stages) - 1; i >= 0; i-- {
		h = stages[i](h)
	}
	return h
}

// pipeline returns the stages wrapping every request, outermost first.
func (h *Handler) pipeline() []Middleware {
	return []Middleware{
		h.withRequestID,
		h.withTiming,
		h.withRecovery,
		h.withLogging,
	}
}

// withRequestID assigns a fresh UUID to the request. It is stored in the
// context together with the start time and a child logger carrying
// request_id, and sent back as X-Request-ID.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := h.requestIDs.Generate()

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})

		ctx := l.WithContext(r.Context())
		ctx = context.WithValue(ctx, utils.RequestIDCtxKey, requestID)
		ctx = context.WithValue(ctx, utils.StartTimeCtxKey, time.Now())

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withTiming writes X-Process-Time in seconds with millisecond precision.
// The value is taken when the status line is sent, since headers cannot be
// changed afterwards.
func (h *Handler) withTiming(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		stamp := func(header http.Header) {
			header.Set(processTimeHeader, formatProcessTime(time.Since(start)))
		}

		tw := newResponseWriter(w)
		tw.beforeHeader = stamp

		next.ServeHTTP(tw, r)

		if !tw.wroteHeader {
			stamp(w.Header())
		}

		if elapsed := time.Since(start); h.slowRequestThreshold > 0 && elapsed > h.slowRequestThreshold {
			h.requestLogger(r).Warn().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Dur("duration", elapsed).
				Msg("slow request")
		}
	})
}

func formatProcessTime(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}

// withRecovery turns a panic into a 500 envelope and logs the completion
// line withLogging could not write. The panic itself has already been logged
// by withLogging.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := newResponseWriter(w)
		start := time.Now()

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			if !rw.wroteHeader {
				writeError(rw, r, fmt.Errorf("panic: %v", rec))
			}
			logCompletion(h.requestLogger(r), r, rw, time.Since(start))
		}()

		next.ServeHTTP(rw, r)
	})
}

// withLogging writes a "started" line and a completion line whose level
// follows the status: >=500 error, >=400 warn, otherwise info. A panic is
// logged with its stack and re-raised.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := h.requestLogger(r)
		start := time.Now()

		log.Info().
			Str("client", utils.ClientIP(r)).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request started")

		lw := newResponseWriter(w)

		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Str("client", utils.ClientIP(r)).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Dur("duration", time.Since(start)).
					Any("panic", rec).
					Bytes("stack", debug.Stack()).
					Msg("request panicked")
				panic(rec)
			}
		}()

		next.ServeHTTP(lw, r)

		logCompletion(log, r, lw, time.Since(start))
	})
}

// requestLogger returns the logger attached by withRequestID, or the
// handler's own logger when the stage runs without it.
func (h *Handler) requestLogger(r *http.Request) *logger.Logger {
	if l := logger.FromRequest(r); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return h.logger
}

func logCompletion(log *logger.Logger, r *http.Request, rw *responseWriter, elapsed time.Duration) {
	status := rw.Status()

	var event *zerolog.Event
	switch {
	case status >= http.StatusInternalServerError:
		event = log.Error()
	case status >= http.StatusBadRequest:
		event = log.Warn()
	default:
		event = log.Info()
	}

	event.
		Str("client", utils.ClientIP(r)).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Dur("duration", elapsed).
		Int("size", rw.size).
		Msg("request completed")
}
