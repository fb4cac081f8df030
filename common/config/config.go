package config

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
	"hotel-booking/common/constant"
	"strings"
	"time"
)

var ErrNotConfigured = errors.New("server not configured")

var envBindings = map[string]string{
	"sendgrid.api_key":        "SENDGRID_API_KEY",
	"sendgrid.host":           "SENDGRID_HOST",
	"email.to":                "TO_EMAIL",
	"email.from":              "FROM_EMAIL",
	"server.port":             "PORT",
	"server.timezone":         "TZ",
	"server.request_timeout":  "REQUEST_TIMEOUT",
	"log.level":               "LOG_LEVEL",
	"otel.endpoint":           "OTEL_EXPORTER_OTLP_ENDPOINT",
	"nats.addr":               "NATS_ADDR",
	"smtp.host":               "SMTP_HOST",
	"smtp.port":               "SMTP_PORT",
	"smtp.user":               "SMTP_USER",
	"smtp.password":           "SMTP_PASSWORD",
	"queue.email.timeout":     "QUEUE_EMAIL_TIMEOUT",
	"queue.email.max_deliver": "QUEUE_EMAIL_MAX_DELIVER",
	"queue.email.ack_wait":    "QUEUE_EMAIL_ACK_WAIT",
	"client.base_url":         "CLIENT_BASE_URL",
}

// Bind registers defaults and the environment variable names of every key.
func Bind(cfg *viper.Viper) {
	cfg.SetDefault("sendgrid.host", constant.DefaultSendgridHost)
	cfg.SetDefault("email.from", constant.DefaultFromEmail)
	cfg.SetDefault("server.port", 8080)
	cfg.SetDefault("server.request_timeout", 20*time.Second)
	cfg.SetDefault("log.level", 0)
	cfg.SetDefault("smtp.port", 587)
	cfg.SetDefault("queue.email.timeout", 10*time.Second)
	cfg.SetDefault("queue.email.max_deliver", 5)
	cfg.SetDefault("queue.email.ack_wait", 30*time.Second)
	cfg.SetDefault("client.base_url", "http://localhost:8080")

	for key, env := range envBindings {
		_ = cfg.BindEnv(key, env)
	}
}

// Relay is the provider configuration of the booking relay.
type Relay struct {
	SendgridAPIKey string
	SendgridHost   string
	ToEmail        string
	FromEmail      string
}

func NewRelay(cfg *viper.Viper) Relay {
	relay := Relay{
		SendgridAPIKey: strings.TrimSpace(cfg.GetString("sendgrid.api_key")),
		SendgridHost:   strings.TrimRight(strings.TrimSpace(cfg.GetString("sendgrid.host")), "/"),
		ToEmail:        strings.TrimSpace(cfg.GetString("email.to")),
		FromEmail:      strings.TrimSpace(cfg.GetString("email.from")),
	}

	if relay.SendgridHost == "" {
		relay.SendgridHost = constant.DefaultSendgridHost
	}
	if relay.FromEmail == "" {
		relay.FromEmail = constant.DefaultFromEmail
	}

	return relay
}

// Validate reports which required provider settings are missing.
func (r Relay) Validate() error {
	var missing []string
	if r.SendgridAPIKey == "" {
		missing = append(missing, "SENDGRID_API_KEY")
	}
	if r.ToEmail == "" {
		missing = append(missing, "TO_EMAIL")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrNotConfigured, strings.Join(missing, ", "))
	}

	return nil
}
