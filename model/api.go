package model

// BookingResponse is the body of every relay response.
type BookingResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Detail  string `json:"detail,omitempty"`
}
