package telemetry

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	domerrors "github.com/vango-dev/domkit/internal/errors"
	"github.com/vango-dev/domkit/pkg/build"
)

const (
	defaultTracerName = "github.com/vango-dev/domkit"

	// SpanName is the name of the span started for each build.
	SpanName = "domkit.build"
)

// TracingConfig configures the tracing middleware.
type TracingConfig struct {
	// TracerName is the instrumentation name of the tracer.
	TracerName string

	// Provider supplies the tracer. Defaults to the global provider.
	Provider trace.TracerProvider

	// AttributeExtractor adds custom attributes for each build.
	AttributeExtractor func(tag string, spec build.Spec) []attribute.KeyValue
}

// TracingOption configures the tracing middleware.
type TracingOption func(*TracingConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracingOption {
	return func(c *TracingConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) TracingOption {
	return func(c *TracingConfig) {
		c.Provider = tp
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(fn func(tag string, spec build.Spec) []attribute.KeyValue) TracingOption {
	return func(c *TracingConfig) {
		c.AttributeExtractor = fn
	}
}

// Tracing creates middleware that starts one span per top-level build.
// Failed builds record the error and set an error status.
func Tracing(opts ...TracingOption) build.Middleware {
	config := TracingConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}

	var tracer trace.Tracer
	if config.Provider != nil {
		tracer = config.Provider.Tracer(config.TracerName)
	} else {
		tracer = otel.Tracer(config.TracerName)
	}

	return func(next build.BuildFunc) build.BuildFunc {
		return func(ctx context.Context, tag string, spec build.Spec) (build.Result, error) {
			attrs := []attribute.KeyValue{
				attribute.String("domkit.tag", strings.ToLower(tag)),
				attribute.Int("domkit.spec_entries", len(spec)),
			}
			if config.AttributeExtractor != nil {
				attrs = append(attrs, config.AttributeExtractor(tag, spec)...)
			}

			ctx, span := tracer.Start(ctx, SpanName, trace.WithAttributes(attrs...))
			defer span.End()

			res, err := next(ctx, tag, spec)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				var de *domerrors.DomError
				if errors.As(err, &de) {
					span.SetAttributes(attribute.String("domkit.error_code", de.Code))
				}
				return res, err
			}

			if _, ok := res.(build.TableHandles); ok {
				span.SetAttributes(attribute.String("domkit.result", "table"))
			} else {
				span.SetAttributes(attribute.String("domkit.result", "node"))
			}
			span.SetStatus(codes.Ok, "")
			return res, nil
		}
	}
}
