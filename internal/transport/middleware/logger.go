package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/habitflow-backend/pkg/ctxutil"
)

// Logger writes one "http.request" line per request with method, path,
// status, duration, request_id and, when authenticated, user_id.
func Logger(logger *slog.Logger, clock clockwork.Clock) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := clock.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			seen := &requestUser{}

			next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), requestUserKey{}, seen)))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", clock.Since(start)),
			}
			attrs = append(attrs, ctxutil.LogAttrs(r.Context())...)
			if seen.id != uuid.Nil {
				attrs = append(attrs, slog.String("user_id", seen.id.String()))
			}

			level := slog.LevelInfo
			switch {
			case sw.status >= 500:
				level = slog.LevelError
			case sw.status >= 400:
				level = slog.LevelWarn
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// requestUser is filled in by Auth, which runs inside Logger.
type requestUser struct {
	id uuid.UUID
}

type requestUserKey struct{}

func noteUser(ctx context.Context, id uuid.UUID) {
	if seen, ok := ctx.Value(requestUserKey{}).(*requestUser); ok {
		seen.id = id
	}
}

type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}
