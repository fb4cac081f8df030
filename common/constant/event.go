package constant

const (
	QueueStreamName = "hotel_booking_queue_stream"
)

const (
	AllWildcard = "events.>"

	SubjectSendEmail = "events.email.send"
)
