package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"hotel-booking/common"
	"hotel-booking/common/config"
	"hotel-booking/common/constant"
	"hotel-booking/common/contract"
	"hotel-booking/common/errs"
	"hotel-booking/common/otel"
	"hotel-booking/model"
	"log/slog"
	"net/http"
)

// Result is what a relay invocation answers, independent of the transport.
type Result struct {
	Status   int
	Response model.BookingResponse
}

type Relay struct {
	Cfg       config.Relay
	Mailer    contract.Mailer
	Publisher contract.Publisher
	Validate  *validator.Validate
	Printer   *message.Printer

	cfgErr error
}

// NewRelay validates cfg once. An unconfigured relay still serves requests
// and answers them with "Server not configured". A nil publisher disables the
// guest acknowledgement.
func NewRelay(cfg config.Relay, mailer contract.Mailer, publisher contract.Publisher, validate *validator.Validate) *Relay {
	r := &Relay{
		Cfg:       cfg,
		Mailer:    mailer,
		Publisher: publisher,
		Validate:  validate,
		Printer:   message.NewPrinter(language.English),
		cfgErr:    cfg.Validate(),
	}

	if r.cfgErr != nil {
		slog.Warn("booking relay is not configured", slog.Any(constant.LogFieldErr, r.cfgErr))
	}

	return r
}

func (r *Relay) Handle(ctx context.Context, method string, body []byte) Result {
	ctx, span := otel.Tracer.Start(ctx, "Relay.Handle")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "booking relay receive request", slog.String("method", method), traceIdAttr)

	req, err := r.relay(ctx, method, body)
	if err != nil {
		result := ResultFromError(err)
		if result.Status >= http.StatusInternalServerError {
			slog.ErrorContext(ctx, "booking relay failed", traceIdAttr,
				slog.Int(constant.LogFieldStatus, result.Status),
				slog.Any(constant.LogFieldErr, err))
			common.UtilSpanError(span, err)
		} else {
			slog.DebugContext(ctx, "booking request rejected", traceIdAttr,
				slog.Int(constant.LogFieldStatus, result.Status),
				slog.Any(constant.LogFieldErr, err))
		}
		return result
	}

	r.acknowledge(ctx, req)

	slog.InfoContext(ctx, "booking request relayed", traceIdAttr, slog.String("checkin", req.Checkin), slog.String("checkout", req.Checkout))

	return Result{
		Status:   http.StatusOK,
		Response: model.BookingResponse{Message: constant.MessageBookingSent},
	}
}

func (r *Relay) relay(ctx context.Context, method string, body []byte) (model.BookingRequest, error) {
	if method != http.MethodPost {
		return model.BookingRequest{}, &errs.HttpError{Code: http.StatusMethodNotAllowed, Message: constant.MessageMethodNotAllowed}
	}

	req, err := Parse(body)
	if err != nil {
		return req, err
	}

	slog.DebugContext(ctx, "booking request parsed", slog.Any(constant.LogFieldPayload, req))

	if err := Validate(r.Validate, req); err != nil {
		return req, err
	}

	if r.cfgErr != nil {
		return req, &errs.HttpError{Code: http.StatusInternalServerError, Message: constant.MessageNotConfigured, Err: r.cfgErr}
	}

	err = r.Mailer.Send(ctx, model.MailMessage{
		To:      r.Cfg.ToEmail,
		From:    r.Cfg.FromEmail,
		Subject: Subject(req),
		Body:    Body(req),
	})
	if err != nil {
		return req, err
	}

	return req, nil
}

// Parse decodes a submission. An empty body is an empty object.
func Parse(body []byte) (model.BookingRequest, error) {
	req := model.NewBookingRequest()
	if len(bytes.TrimSpace(body)) == 0 {
		return req, nil
	}

	if err := json.Unmarshal(body, &req); err != nil {
		return req, fmt.Errorf("parse booking request: %w", err)
	}

	return req, nil
}

// ResultFromError maps a failed relay step to its response. A field of the
// wrong JSON type counts as missing.
func ResultFromError(err error) Result {
	var (
		httpErr       *errs.HttpError
		providerErr   *errs.ProviderError
		validationErr validator.ValidationErrors
		typeErr       *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &httpErr):
		return Result{
			Status:   httpErr.Code,
			Response: model.BookingResponse{Message: httpErr.Message, Detail: httpErr.Detail},
		}
	case errors.As(err, &validationErr), errors.As(err, &typeErr):
		return badRequest(constant.MessageMissingFields)
	case errors.Is(err, ErrInvalidDate):
		return badRequest(constant.MessageInvalidDate)
	case errors.Is(err, ErrCheckoutOrder):
		return badRequest(constant.MessageCheckoutOrder)
	case errors.As(err, &providerErr):
		detail := providerErr.Body
		if detail == "" {
			detail = constant.ProviderEmptyBodyDetail
		}
		return Result{
			Status:   http.StatusBadGateway,
			Response: model.BookingResponse{Message: constant.MessageSendFailed, Detail: detail},
		}
	default:
		return Result{
			Status:   http.StatusInternalServerError,
			Response: model.BookingResponse{Message: constant.MessageServerError, Error: err.Error()},
		}
	}
}

func badRequest(msg string) Result {
	return Result{Status: http.StatusBadRequest, Response: model.BookingResponse{Message: msg}}
}

func (r *Relay) acknowledge(ctx context.Context, req model.BookingRequest) {
	if r.Publisher == nil {
		return
	}

	err := common.PublishMessage(ctx, r.Publisher, constant.SubjectSendEmail, model.SendEmailEventMessage{
		To:      req.Email,
		Subject: constant.EmailGuestAcknowledgementSubject,
		Body:    r.buildAcknowledgementBody(req, ulid.Make().String()),
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to publish guest acknowledgement", slog.Any(constant.LogFieldErr, err))
	}
}

func (r *Relay) buildAcknowledgementBody(req model.BookingRequest, reference string) string {
	nights := Nights(req.Checkin, req.Checkout)
	stay := r.Printer.Sprintf("%d nights", nights)
	if nights == 1 {
		stay = r.Printer.Sprintf("%d night", nights)
	}

	return fmt.Sprintf(constant.EmailGuestAcknowledgementTemplate,
		req.Name,
		reference,
		req.Checkin,
		req.Checkout,
		stay,
		r.Printer.Sprintf("%d", int(req.Guests)),
	)
}
