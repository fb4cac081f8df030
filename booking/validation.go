package booking

import (
	"errors"
	"github.com/go-playground/validator/v10"
	"hotel-booking/model"
	"time"
)

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrCheckoutOrder = errors.New("checkout not after checkin")
)

// ParseDate reads a calendar date. Full RFC 3339 timestamps are accepted
// and reduced to their date so comparisons stay at day granularity.
func ParseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// CheckDates requires checkin to fall on a strictly earlier day than checkout.
func CheckDates(checkin, checkout string) error {
	in, err := ParseDate(checkin)
	if err != nil {
		return err
	}

	out, err := ParseDate(checkout)
	if err != nil {
		return err
	}

	if !in.Before(out) {
		return ErrCheckoutOrder
	}

	return nil
}

// Nights is the number of nights between two valid dates.
func Nights(checkin, checkout string) int {
	in, err := ParseDate(checkin)
	if err != nil {
		return 0
	}

	out, err := ParseDate(checkout)
	if err != nil {
		return 0
	}

	return int(out.Sub(in).Hours() / 24)
}

// Validate runs the presence rules of the struct tags and then the date order.
func Validate(validate *validator.Validate, req model.BookingRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}

	return CheckDates(req.Checkin, req.Checkout)
}
