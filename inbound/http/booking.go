package http

import (
	"fmt"
	"hotel-booking/booking"
	"hotel-booking/common/constant"
	"io"
	"net/http"
)

const maxBookingBodyBytes = 1 << 20

type BookingHttp struct {
	Relay *booking.Relay
}

// RegisterBookingHttp mounts the relay on every submission endpoint. Routes
// are registered without a method so the relay answers non-POST requests
// with its own JSON 405.
func RegisterBookingHttp(mux *http.ServeMux, relay *booking.Relay) *BookingHttp {
	in := &BookingHttp{Relay: relay}

	for _, endpoint := range constant.BookingEndpoints {
		mux.HandleFunc(endpoint, in.create)
	}

	return in
}

func (in BookingHttp) create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBookingBodyBytes))
	if err != nil {
		writeErrorResponse(w, fmt.Errorf("read request body: %w", err))
		return
	}

	result := in.Relay.Handle(r.Context(), r.Method, body)
	writeJSONResponse(w, result.Status, result.Response)
}
