package http

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/svcerrors"
	"log-analyzer/internal/shared/ulid"

	"github.com/go-chi/chi/v5"
)

func setupMiddleware(router *chi.Mux, httpLogger loggers.Logger) {
	router.Use(mwRequestID(httpLogger))
	router.Use(mwAppResponseWriter)
	router.Use(mwPrometheus)
	router.Use(mwRequestCompletionLog)
	router.Use(mwRecoverer)
}

// mwAppResponseWriter initializes the appResponseWriter once and passes it through the middleware chain.
func mwAppResponseWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appWriter := newAppResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(appWriter, r)
	})
}

// mwPrometheus records request counts and durations labelled with the route pattern,
// so /reports/{date} stays a single series.
func mwPrometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		status, errorCode := http.StatusOK, ""
		if appWriter, ok := w.(*appResponseWriter); ok {
			status = appWriter.StatusOrDefault()
			errorCode = appWriter.ErrorCode()
		}
		labels := []string{r.Method, routePattern(r), strconv.Itoa(status), errorCode}

		metricHTTPRequestsTotal.WithLabelValues(labels...).Inc()
		metricHTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
	})
}

// mwRequestID extracts or generates a request ID, echoes it in the response and
// attaches a request-scoped logger to context.
func mwRequestID(httpLogger loggers.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := requestID(r)
			if requestID == "" {
				requestID = ulid.NewULID()
				setRequestID(r, requestID)
			}
			w.Header().Set(headerRequestID, requestID)

			ctxWithReqLogger := httpLogger.With().
				Str(loggers.FieldComponent, "http").
				Str(loggers.FieldRequestID, requestID).
				Logger().WithContext(r.Context())

			next.ServeHTTP(w, r.WithContext(ctxWithReqLogger))
		})
	}
}

func mwRequestCompletionLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			status := http.StatusOK
			if appWriter, ok := w.(*appResponseWriter); ok {
				status = appWriter.StatusOrDefault()
			}
			loggers.Ctx(r.Context()).Info().
				Str(loggers.FieldHttpMethod, r.Method).
				Str(loggers.FieldHttpPath, r.URL.Path).
				Int(loggers.FieldHttpStatus, status).
				Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
				Msg("request completed")
		}()

		next.ServeHTTP(w, r)
	})
}

// mwRecoverer provides panic recovery middleware.
func mwRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				loggers.Ctx(r.Context()).Error().
					Bytes(loggers.FieldErrorStack, debug.Stack()).
					Msgf("http panic recovered: %v", p)

				panicErr, ok := p.(error)
				if !ok {
					panicErr = fmt.Errorf("%v", p)
				}
				writeErrorResponse(w, r, svcerrors.NewInternalErrorPanic(panicErr))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func routePattern(r *http.Request) string {
	if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
		if pattern := routeCtx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
