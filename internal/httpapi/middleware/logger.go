package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/cleared-dev/ledgerbook/internal/logger"
)

// errCapture keeps the body of error responses so the error can be logged.
type errCapture struct {
	chimiddleware.WrapResponseWriter
	buf bytes.Buffer
}

func (e *errCapture) Write(b []byte) (int, error) {
	if e.Status() >= 400 {
		e.buf.Write(b)
	}
	return e.WrapResponseWriter.Write(b)
}

func errorMessage(body []byte) string {
	var obj struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &obj) == nil {
		return obj.Error
	}
	return ""
}

// Logger logs one line per request.
func Logger(log *logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := &errCapture{WrapResponseWriter: chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)}
			start := time.Now()

			defer func() {
				status := ww.Status()
				attrs := []any{
					"method", r.Method,
					"path", r.URL.Path,
					"remote_addr", r.RemoteAddr,
					"status", status,
					"bytes", ww.BytesWritten(),
					"duration_ms", time.Since(start).Milliseconds(),
				}
				if reqID := chimiddleware.GetReqID(r.Context()); reqID != "" {
					attrs = append(attrs, "request_id", reqID)
				}
				if status >= 400 {
					if msg := errorMessage(ww.buf.Bytes()); msg != "" {
						attrs = append(attrs, "error", msg)
					}
				}

				switch {
				case status >= 500:
					log.Error("HTTP request", attrs...)
				case status >= 400:
					log.Warn("HTTP request", attrs...)
				default:
					log.Info("HTTP request", attrs...)
				}
			}()

			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}
