package sendgrid

import (
	"context"
	"fmt"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"hotel-booking/common"
	"hotel-booking/common/config"
	"hotel-booking/common/constant"
	"hotel-booking/common/errs"
	"hotel-booking/common/otel"
	"hotel-booking/model"
	"log/slog"
	"net/http"
)

// SendgridOutbound posts mail to the SendGrid v3 mail send API.
type SendgridOutbound struct {
	apiKey string
	host   string
}

func NewSendgridOutbound(cfg config.Relay) *SendgridOutbound {
	return &SendgridOutbound{
		apiKey: cfg.SendgridAPIKey,
		host:   cfg.SendgridHost,
	}
}

func (out *SendgridOutbound) Send(ctx context.Context, msg model.MailMessage) error {
	ctx, span := otel.Tracer.Start(ctx, "SendgridOutbound.Send")
	defer span.End()

	request := sendgrid.GetRequest(out.apiKey, constant.SendgridMailPath, out.host)
	request.Method = rest.Post
	request.Body = mail.GetRequestBody(newMail(msg))

	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		common.UtilSpanError(span, err)
		return fmt.Errorf("sendgrid request: %w", err)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		err = &errs.ProviderError{StatusCode: response.StatusCode, Body: response.Body}
		slog.WarnContext(ctx, "sendgrid rejected mail", slog.Int(constant.LogFieldStatus, response.StatusCode))
		common.UtilSpanError(span, err)
		return err
	}

	return nil
}

func newMail(msg model.MailMessage) *mail.SGMailV3 {
	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail("", msg.From))
	m.Subject = msg.Subject

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail("", msg.To))
	m.AddPersonalizations(p)

	m.AddContent(mail.NewContent("text/plain", msg.Body))

	return m
}
