package email

import (
	"fmt"
	"github.com/spf13/viper"
	"net/smtp"
	"strings"
)

// EmailOutbound sends the guest acknowledgement over SMTP.
type EmailOutbound struct {
	Cfg   *viper.Viper
	auth  smtp.Auth
	addr  string
	from  string
	sendF func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func (out *EmailOutbound) Init() {
	host := out.Cfg.GetString("smtp.host")

	out.from = out.Cfg.GetString("email.from")
	out.addr = fmt.Sprintf("%s:%d", host, out.Cfg.GetInt("smtp.port"))
	out.auth = smtp.PlainAuth("", out.Cfg.GetString("smtp.user"), out.Cfg.GetString("smtp.password"), host)

	if out.sendF == nil {
		out.sendF = smtp.SendMail
	}
}

func (out *EmailOutbound) Send(to []string, subject string, body string) error {
	message := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		out.from,
		strings.Join(to, ","),
		subject,
		body,
	))

	if err := out.sendF(out.addr, out.auth, out.from, to, message); err != nil {
		return fmt.Errorf("smtp send to %s: %w", out.addr, err)
	}

	return nil
}
