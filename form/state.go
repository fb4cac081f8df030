package form

import (
	"encoding/json"
	"hotel-booking/outbound/relay"
)

const (
	ColorError   = "#d9534f"
	ColorSuccess = "#28a745"

	LabelIdle    = "Request booking"
	LabelSending = "Sending..."

	MessageSent         = "Booking request sent. We will contact you shortly."
	MessageSubmitFailed = "Failed to submit booking. "
	MessageRejected     = "Submission failed."
	MessageUnknownError = "Unknown error"
)

type EventKind int

const (
	EventSubmit EventKind = iota
	EventInvalid
	EventSending
	EventDelivered
)

type Event struct {
	Kind    EventKind
	Message string
	Outcome relay.Outcome
}

// State is everything the form renders. Reset asks the view to clear the
// inputs.
type State struct {
	Message        string
	Color          string
	ButtonDisabled bool
	ButtonLabel    string
	Reset          bool
}

func InitialState() State {
	return State{ButtonLabel: LabelIdle}
}

func (s State) IsError() bool {
	return s.Color == ColorError
}

func Reduce(s State, ev Event) State {
	s.Reset = false

	switch ev.Kind {
	case EventSubmit:
		s.Message = ""
		s.Color = ""
	case EventInvalid:
		s.Message, s.Color = ev.Message, ColorError
	case EventSending:
		s.ButtonDisabled = true
		s.ButtonLabel = LabelSending
	case EventDelivered:
		s.ButtonDisabled = false
		s.ButtonLabel = LabelIdle
		s.Message, s.Color, s.Reset = report(ev.Outcome)
	}

	return s
}

func report(outcome relay.Outcome) (message string, color string, reset bool) {
	if outcome.Response == nil {
		return MessageSubmitFailed + outcome.LastErr, ColorError, false
	}

	if outcome.Response.OK() {
		return MessageSent, ColorSuccess, true
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(outcome.Response.Body, &body); err != nil {
		return MessageUnknownError, ColorError, false
	}

	if body.Message == "" {
		return MessageRejected, ColorError, false
	}

	return body.Message, ColorError, false
}
