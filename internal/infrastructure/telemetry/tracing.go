package telemetry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope used for application spans.
const TracerName = "github.com/tenantbill/backend"

// StartServiceSpan starts an internal span named "<service>.<method>".
// The global provider is resolved on every call so tests can swap it.
func StartServiceSpan(ctx context.Context, service, method string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(TracerName).Start(ctx, fmt.Sprintf("%s.%s", service, method),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			append([]attribute.KeyValue{
				attribute.String("service.layer", "application"),
				attribute.String("service.name", service),
				attribute.String("service.method", method),
			}, attrs...)...,
		),
	)
}

// expectedError is implemented by errors that represent a client mistake
// rather than a fault, such as domain validation failures.
type expectedError interface {
	error
	Expected() bool
}

// EndSpan finishes span, marking it failed when err is a fault. Expected
// errors are attached as an event but leave the status unset.
func EndSpan(span trace.Span, err error) {
	defer span.End()
	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}

	var exp expectedError
	if errors.As(err, &exp) && exp.Expected() {
		span.AddEvent("expected_error", trace.WithAttributes(attribute.String("error.message", err.Error())))
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
