package gateway

import (
	"log/slog"
	"net/http"
	"time"
)

// Doer executes one HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DoerFunc adapts a function to Doer.
type DoerFunc func(req *http.Request) (*http.Response, error)

func (f DoerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

// Middleware wraps a Doer with one request/response transform. The
// chain replaces the old interceptor stack: each layer is independently
// testable and applied in declaration order.
type Middleware func(next Doer) Doer

func chain(d Doer, mws ...Middleware) Doer {
	for i := len(mws) - 1; i >= 0; i-- {
		d = mws[i](d)
	}
	return d
}

// Logging logs method, path, status and duration around each call.
func Logging(logger *slog.Logger) Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.Do(req)
			if err != nil {
				logger.Error("api request failed",
					"method", req.Method,
					"path", req.URL.Path,
					"duration_ms", time.Since(start).Milliseconds(),
					"error", err,
				)
				return nil, err
			}
			logger.Info("api request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", resp.StatusCode,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return resp, nil
		})
	}
}

// Header sets a static header on every request.
func Header(key, value string) Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			req.Header.Set(key, value)
			return next.Do(req)
		})
	}
}
