package constant

const (
	DefaultFromEmail    = "no-reply@examplehotel.com"
	DefaultSendgridHost = "https://api.sendgrid.com"
	SendgridMailPath    = "/v3/mail/send"
)

// Submission endpoints in the order the form client tries them.
var BookingEndpoints = []string{
	"/api/booking",
	"/.netlify/functions/booking",
}

const (
	MessageMethodNotAllowed = "Method not allowed"
	MessageMissingFields    = "Missing required fields"
	MessageInvalidDate      = "Invalid check-in or check-out date"
	MessageCheckoutOrder    = "Check-out must be after check-in"
	MessageNotConfigured    = "Server not configured"
	MessageSendFailed       = "Failed to send email"
	MessageServerError      = "Server error"
	MessageBookingSent      = "Booking request sent"
	ProviderEmptyBodyDetail = "<no body>"
)
