package cmd

import (
	"context"
	"fmt"
	"hotel-booking/common/otel"
	inboundHttp "hotel-booking/inbound/http"
	"log"
	"log/slog"
	"net/http"
	"time"
)

func runHttpServerCmd(ctx context.Context) {
	cfg := newCfg("env")

	shutdownTracer, err := otel.InitTracerProvider(ctx, cfg)
	if err != nil {
		log.Fatalln("unable to init tracer provider", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			slog.Error("unable to shutdown tracer provider", slog.Any("error", err))
		}
	}()

	publisher, closePublisher := newPublisher(cfg)
	defer closePublisher()

	relay := newRelay(cfg, publisher)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		slog.DebugContext(r.Context(), "health check")
		w.WriteHeader(http.StatusOK)
	})

	inboundHttp.RegisterBookingHttp(mux, relay)

	requestTimeout := cfg.GetDuration("server.request_timeout")
	timeoutMiddleware := inboundHttp.TimeoutMiddleware(requestTimeout)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.GetInt("server.port")),
		Handler:           timeoutMiddleware(inboundHttp.CorsMiddleware(mux)),
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      requestTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalln("unable to start server", err)
		}
	}()

	slog.Info("http server started", slog.String("addr", srv.Addr))

	<-ctx.Done()

	ctxShutDown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutDown); err != nil {
		log.Fatalln("unable to shutdown server", err)
	}

	slog.Info("http server stopped")
}
