// Package server serves a finished comparison report over HTTP.
//
// # Router
//
// [Router] wraps [http.ServeMux] with a [Middleware] stack. Middleware wraps handlers in reverse order
// (last added executes first), so the first middleware added sees every request and response.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
//
// [ReportHandler] is the only implementation. It renders one [formatter.Report] on every request:
//
//	GET /               HTML report
//	GET /report.csv     CSV export
//	GET /report.md      Markdown export
//	GET /report.txt     plain text export
//	GET /summary.json   headline counts
//	GET /summary.yaml   headline counts
//
// # Lifecycle
//
// [Server.Run] listens until its context is cancelled, then shuts down gracefully.
package server
