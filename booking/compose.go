package booking

import (
	"fmt"
	"hotel-booking/common/constant"
	"hotel-booking/model"
)

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func Subject(req model.BookingRequest) string {
	return fmt.Sprintf(constant.EmailBookingSubjectTemplate, req.Name, req.Checkin, req.Checkout)
}

func Body(req model.BookingRequest) string {
	return fmt.Sprintf(constant.EmailBookingRequestTemplate,
		req.Name,
		req.Email,
		orNA(req.Phone),
		req.Checkin,
		req.Checkout,
		req.RoomType,
		req.Guests,
		orNA(req.Message),
	)
}
