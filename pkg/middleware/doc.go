// Package middleware provides HTTP middleware for the djed preview server.
//
// # Prometheus Metrics
//
// Prometheus records one counter and one histogram per request, labelled by
// the matched chi route pattern so that path parameters do not explode the
// label space:
//   - djed_http_requests_total{route, method, status}
//   - djed_http_request_duration_seconds{route, method}
//
//	r := chi.NewRouter()
//	r.Use(middleware.Prometheus(
//	    middleware.WithNamespace("djed"),
//	    middleware.WithRegistry(registry),
//	))
//
// # OpenTelemetry
//
// OpenTelemetry starts a server span per request. The span is renamed to
// "METHOD /pattern" once routing has matched, and its status is set to
// Error for 5xx responses.
//
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithTracer(otel.Tracer("djed")),
//	    middleware.WithFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// Both middlewares expect to run inside a chi router. Outside of one the
// route label falls back to "unmatched".
package middleware
