package event

import (
	"context"
	"encoding/json"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/oklog/ulid/v2"
	"hotel-booking/common/constant"
	"hotel-booking/common/contract"
	"hotel-booking/model"
	"log/slog"
	"time"
)

type EmailEvent struct {
	Sender     contract.EmailSender
	Timeout    time.Duration
	RetryDelay time.Duration
}

// Consume settles one delivery of the email consumer. Messages on other
// subjects are acknowledged without sending.
func (in EmailEvent) Consume(ctx context.Context, msg jetstream.Msg) {
	subjectAttr := slog.String("subject", msg.Subject())

	if msg.Subject() == constant.SubjectSendEmail {
		if err := in.SendEmailHandler(ctx, msg.Data()); err != nil {
			if nakErr := msg.NakWithDelay(in.RetryDelay); nakErr != nil {
				slog.ErrorContext(ctx, "failed to nak email message", slog.Any(constant.LogFieldErr, nakErr), subjectAttr)
			}
			return
		}
	} else {
		slog.WarnContext(ctx, "unexpected subject on email consumer", subjectAttr)
	}

	if err := msg.Ack(); err != nil {
		slog.ErrorContext(ctx, "failed to ack email message",
			slog.Any(constant.LogFieldErr, err),
			slog.Any(constant.LogFieldPayload, string(msg.Data())),
			subjectAttr,
		)
	}
}

// SendEmailHandler delivers one queued email. Undecodable messages are
// dropped, a send failure is returned so the message is redelivered.
func (in EmailEvent) SendEmailHandler(ctx context.Context, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, in.Timeout)
	defer cancel()

	var req model.SendEmailEventMessage
	err := json.Unmarshal(msg, &req)
	if err != nil {
		slog.WarnContext(ctx, "send email event unmarshal error", slog.Any(constant.LogFieldErr, err))
		return nil
	}

	traceIdAttr := slog.String(constant.LogFieldTraceId, ulid.Make().String())
	reqAttr := slog.Any(constant.LogFieldPayload, string(msg))

	if req.To == "" {
		slog.WarnContext(ctx, "send email event without recipient", reqAttr, traceIdAttr)
		return nil
	}

	err = in.Sender.Send([]string{req.To}, req.Subject, req.Body)
	if err != nil {
		slog.ErrorContext(ctx, "send email event error", slog.Any(constant.LogFieldErr, err), reqAttr, traceIdAttr)
		return err
	}

	slog.DebugContext(ctx, "send email event delivered", reqAttr, traceIdAttr)

	return nil
}
