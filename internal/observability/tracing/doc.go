// Package tracing provides OpenTelemetry tracing integration.
//
// The middleware extracts W3C Trace Context from incoming requests, opens a
// server span per request, and echoes the trace ID back in the X-Trace-Id
// response header so clients can correlate their own logs with ours.
//
// Example usage:
//
//	import "tooldex/internal/observability/tracing"
//
//	mux := http.NewServeMux()
//	mux.Handle("/", someHandler)
//	handler := tracing.Middleware(mux)
//
//	func processRequest(ctx context.Context) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "process-request")
//	    defer span.End()
//	    // ... process request ...
//	}
package tracing
