package model

// MailMessage is a provider independent plaintext email.
type MailMessage struct {
	To      string
	From    string
	Subject string
	Body    string
}

type SendEmailEventMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
