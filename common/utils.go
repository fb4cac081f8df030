package common

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"hotel-booking/common/constant"
	"hotel-booking/common/contract"
	"hotel-booking/common/otel"
	"log/slog"
)

// ExtractTraceIDFromCtx returns the trace id of the active span, or a fresh
// ULID so log lines of untraced calls can still be correlated.
func ExtractTraceIDFromCtx(ctx context.Context) slog.Attr {
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		return slog.String(constant.LogFieldTraceId, sc.TraceID().String())
	}

	return slog.String(constant.LogFieldTraceId, ulid.Make().String())
}

func UtilSpanError(span trace.Span, err error) {
	if err == nil {
		return
	}

	span.SetStatus(codes.Error, err.Error())
	span.RecordError(err)
}

// PublishMessage encodes body as JSON and publishes it on subject.
func PublishMessage(ctx context.Context, publisher contract.Publisher, subject string, body any) error {
	ctx, span := otel.Tracer.Start(ctx, "PublishMessage",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(attribute.String("messaging.destination.name", subject)),
	)
	defer span.End()

	subjectAttr := slog.String("subject", subject)

	data, err := json.Marshal(body)
	if err != nil {
		err = fmt.Errorf("encode %s message: %w", subject, err)
		UtilSpanError(span, err)
		return err
	}

	ack, err := publisher.Publish(ctx, subject, data)
	if err != nil {
		err = fmt.Errorf("publish %s message: %w", subject, err)
		slog.ErrorContext(ctx, "failed to publish message", ExtractTraceIDFromCtx(ctx), subjectAttr, slog.Any(constant.LogFieldErr, err))
		UtilSpanError(span, err)
		return err
	}

	if ack != nil {
		slog.DebugContext(ctx, "message published", subjectAttr, slog.Uint64("sequence", ack.Sequence))
	}

	return nil
}
