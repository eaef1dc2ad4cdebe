// Package telemetry instruments element builds.
//
// Metrics and Tracing return build.Middleware that wrap every top-level
// build:
//
//	c := telemetry.NewCollector(telemetry.WithRegistry(reg))
//	b := build.New(doc,
//	    build.WithMiddleware(c.Middleware(), telemetry.Tracing()),
//	    build.WithReporter(c.Reporter(build.NewLogReporter(nil))),
//	)
//
// Metrics collected:
//   - domkit_builds_total: builds by tag and status (ok or error)
//   - domkit_build_duration_seconds: build duration by tag
//   - domkit_build_errors_total: failed builds by tag and error code
//   - domkit_diagnostics_total: unrecognized keys by tag and key
//
// Tracing uses the global OpenTelemetry tracer provider unless one is
// passed with WithTracerProvider.
package telemetry
