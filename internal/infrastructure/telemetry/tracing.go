package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the tracer used for job and upgrade spans
const TracerName = "stock-usability"

// StartJobSpan starts the root span of one scheduled job run.
// The caller must end the span.
//
//	ctx, span := telemetry.StartJobSpan(ctx, job.Name(), runID)
//	defer span.End()
func StartJobSpan(ctx context.Context, jobName, runID string) (context.Context, trace.Span) {
	return otel.GetTracerProvider().Tracer(TracerName).Start(ctx, "job."+jobName,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("job.name", jobName),
			attribute.String("job.run_id", runID),
		),
	)
}

// StartUpgradeSpan starts the span of one version-gated upgrade step
func StartUpgradeSpan(ctx context.Context, module, version, stage string) (context.Context, trace.Span) {
	return otel.GetTracerProvider().Tracer(TracerName).Start(ctx, "upgrade."+module,
		trace.WithAttributes(
			attribute.String("upgrade.module", module),
			attribute.String("upgrade.version", version),
			attribute.String("upgrade.stage", stage),
		),
	)
}

// RecordError records an error on the span and sets the span status to error.
func RecordError(span trace.Span, err error) {
	if span == nil || err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// SetCount records a counter-like result attribute on the span, such as rows deleted
func SetCount(span trace.Span, key string, n int64) {
	if span == nil {
		return
	}
	span.SetAttributes(attribute.Int64(key, n))
}
