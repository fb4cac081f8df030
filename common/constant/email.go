package constant

const EmailBookingSubjectTemplate = "Booking request: %s (%s → %s)"

const EmailBookingRequestTemplate = `
New booking request

Name: %s
Email: %s
Phone: %s
Check-in: %s
Check-out: %s
Room: %s
Guests: %d
Message: %s
`

const EmailGuestAcknowledgementSubject = "We received your booking request"

const EmailGuestAcknowledgementTemplate = `
Dear %s,

Thank you for your booking request. Our reservations team will contact you shortly to confirm availability.

Request Details:
------------------------------------------
Reference: %s
Check-in: %s
Check-out: %s
Stay: %s
Guests: %s
------------------------------------------

This is not a confirmation of your reservation.

Best regards,
Example Hotel Reservations

Note: This is an automated message, please do not reply to this email.
`
