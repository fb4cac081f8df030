package cmd

import (
	"context"
	"errors"
	"github.com/nats-io/nats.go/jetstream"
	"hotel-booking/common/constant"
	commonJetstream "hotel-booking/common/jetstream"
	"hotel-booking/inbound/event"
	emailOutbound "hotel-booking/outbound/email"
	"log"
	"log/slog"
	"time"
)

func runQueueEmailCmd(ctx context.Context) {
	cfg := newCfg("env")

	natsConn := newNats(cfg)
	defer natsConn.Close()

	st, err := commonJetstream.CreateQueueStream(ctx, newJs(natsConn))
	if err != nil {
		log.Fatalln("failed to create stream", err)
	}

	sender := &emailOutbound.EmailOutbound{Cfg: cfg}
	sender.Init()

	emailEvent := event.EmailEvent{
		Sender:     sender,
		Timeout:    cfg.GetDuration("queue.email.timeout"),
		RetryDelay: time.Second,
	}

	cons, err := st.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Durable:       "consumer:email",
		FilterSubject: constant.SubjectSendEmail,
		MaxDeliver:    cfg.GetInt("queue.email.max_deliver"),
		AckWait:       cfg.GetDuration("queue.email.ack_wait"),
	})
	if err != nil {
		log.Fatalln("failed to create consumer", err)
	}

	iter, err := cons.Messages()
	if err != nil {
		log.Fatalln("failed to consume email messages", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		for {
			msg, err := iter.Next()
			if errors.Is(err, jetstream.ErrMsgIteratorClosed) {
				return
			}
			if err != nil {
				slog.ErrorContext(ctx, "failed to fetch email message", slog.Any(constant.LogFieldErr, err))
				continue
			}

			emailEvent.Consume(ctx, msg)
		}
	}()

	slog.InfoContext(ctx, "email queue consumer started", slog.String("subject", constant.SubjectSendEmail))

	<-ctx.Done()

	iter.Stop()
	<-done

	slog.InfoContext(ctx, "email queue consumer stopped")
}
