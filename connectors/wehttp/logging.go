package wehttp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

const RequestIDHeader = "X-Request-Id"

func newRequestID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulid.DefaultEntropy()).String()
}

// withRequestID tags the request with an id, reusing the caller's when present, and
// attaches a logger carrying it to the request context.
func withRequestID(log *zerolog.Logger) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = newRequestID()
			}
			rw.Header().Set(RequestIDHeader, id)

			logger := log.With().Str("request_id", id).Logger()
			h.ServeHTTP(rw, r.WithContext(logger.WithContext(r.Context())))
		})
	}
}

func withLogging(h http.Handler) http.Handler {
	logFn := func(rw http.ResponseWriter, r *http.Request) {
		start := time.Now()

		uri := r.RequestURI
		method := r.Method
		ww := middleware.NewWrapResponseWriter(rw, r.ProtoMajor)
		h.ServeHTTP(ww, r) // serve the original request

		duration := time.Since(start)

		zerolog.Ctx(r.Context()).Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", ww.Status()).
			Dur("duration", duration).
			Msg("request")
	}
	return http.HandlerFunc(logFn)
}
