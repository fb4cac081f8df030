package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

const DefaultGuests Guests = 1

type BookingRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Phone    string `json:"phone"`
	Checkin  string `json:"checkin" validate:"required"`
	Checkout string `json:"checkout" validate:"required"`
	RoomType string `json:"roomType"`
	Guests   Guests `json:"guests"`
	Message  string `json:"message"`
}

// NewBookingRequest returns an empty request with the guest count defaulted.
func NewBookingRequest() BookingRequest {
	return BookingRequest{Guests: DefaultGuests}
}

// Guests accepts a JSON number or a numeric string. Anything else,
// including null, falls back to DefaultGuests.
type Guests int

func (g *Guests) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*g = ParseGuests(n.String())
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*g = ParseGuests(s)
		return nil
	}

	*g = DefaultGuests
	return nil
}

// ParseGuests parses a guest count, defaulting to DefaultGuests on empty or
// non-numeric input and on counts that do not fit an int. Fractional
// numbers are truncated.
func ParseGuests(raw string) Guests {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultGuests
	}

	n, err := strconv.Atoi(raw)
	if err == nil {
		return Guests(n)
	}
	if errors.Is(err, strconv.ErrRange) {
		return DefaultGuests
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || f < math.MinInt || f >= math.MaxInt {
		return DefaultGuests
	}

	return Guests(int(f))
}
