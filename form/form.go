// Package form turns booking form input into a submission and reduces the
// submission lifecycle into what the form displays.
package form

import (
	"context"
	"github.com/go-playground/validator/v10"
	"hotel-booking/booking"
	"hotel-booking/model"
	"hotel-booking/outbound/relay"
	"net/url"
	"strings"
)

const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldCheckin  = "checkin"
	FieldCheckout = "checkout"
	FieldRoomType = "roomType"
	FieldGuests   = "guests"
	FieldMessage  = "message"
)

const (
	MessageRequired  = "Please fill in required fields (name, email, check-in and check-out)."
	MessageDateOrder = "Check-out date must be after check-in date."
)

// InvalidError is a local validation failure shown to the user as is.
type InvalidError struct {
	Message string
}

func (e *InvalidError) Error() string {
	return e.Message
}

type Submitter interface {
	Submit(ctx context.Context, req model.BookingRequest) relay.Outcome
}

// Collect reads the form fields. Free text fields are trimmed, dates and the
// room type are taken as entered.
func Collect(values url.Values) model.BookingRequest {
	return model.BookingRequest{
		Name:     strings.TrimSpace(values.Get(FieldName)),
		Email:    strings.TrimSpace(values.Get(FieldEmail)),
		Phone:    strings.TrimSpace(values.Get(FieldPhone)),
		Checkin:  values.Get(FieldCheckin),
		Checkout: values.Get(FieldCheckout),
		RoomType: values.Get(FieldRoomType),
		Guests:   model.ParseGuests(values.Get(FieldGuests)),
		Message:  strings.TrimSpace(values.Get(FieldMessage)),
	}
}

// Validate applies the local checks. An unparseable date fails the date
// order check.
func Validate(validate *validator.Validate, req model.BookingRequest) error {
	if err := validate.Struct(req); err != nil {
		return &InvalidError{Message: MessageRequired}
	}

	if err := booking.CheckDates(req.Checkin, req.Checkout); err != nil {
		return &InvalidError{Message: MessageDateOrder}
	}

	return nil
}

// Process runs one submission of the form and reports every intermediate
// display state to onChange. It returns the final state.
func Process(ctx context.Context, validate *validator.Validate, submitter Submitter, values url.Values, state State, onChange func(State)) State {
	step := func(ev Event) {
		state = Reduce(state, ev)
		if onChange != nil {
			onChange(state)
		}
	}

	step(Event{Kind: EventSubmit})

	req := Collect(values)
	if err := Validate(validate, req); err != nil {
		step(Event{Kind: EventInvalid, Message: err.Error()})
		return state
	}

	step(Event{Kind: EventSending})
	step(Event{Kind: EventDelivered, Outcome: submitter.Submit(ctx, req)})

	return state
}
