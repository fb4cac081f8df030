package cmd

import (
	"context"
	"github.com/aws/aws-lambda-go/lambda"
	"hotel-booking/common/constant"
	"hotel-booking/common/otel"
	inboundLambda "hotel-booking/inbound/lambda"
	"log"
	"log/slog"
	"time"
)

func runLambdaCmd(ctx context.Context) {
	cfg := newCfg("env")

	shutdownTracer, err := otel.InitTracerProvider(ctx, cfg)
	if err != nil {
		log.Fatalln("unable to init tracer provider", err)
	}

	publisher, closePublisher := newPublisher(cfg)

	handler := inboundLambda.BookingLambda{
		Relay: newRelay(cfg, publisher),
		Flush: otel.ForceFlush,
	}

	slog.InfoContext(ctx, "lambda handler started")

	// lambda.StartWithOptions never returns, cleanup runs on SIGTERM.
	lambda.StartWithOptions(handler.Handle,
		lambda.WithContext(ctx),
		lambda.WithEnableSIGTERM(lambdaShutdown(shutdownTracer, closePublisher)),
	)
}

func lambdaShutdown(shutdownTracer func(context.Context) error, closePublisher func()) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := shutdownTracer(ctx); err != nil {
			slog.Error("unable to shutdown tracer provider", slog.Any(constant.LogFieldErr, err))
		}

		closePublisher()

		slog.Info("lambda handler stopped")
	}
}
