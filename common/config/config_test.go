package config

import (
	"errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hotel-booking/common/constant"
	"testing"
	"time"
)

func TestBind(t *testing.T) {
	t.Setenv("SENDGRID_API_KEY", "SG.key")
	t.Setenv("TO_EMAIL", "frontdesk@examplehotel.com")
	t.Setenv("REQUEST_TIMEOUT", "5s")

	cfg := viper.New()
	Bind(cfg)

	assert.Equal(t, "SG.key", cfg.GetString("sendgrid.api_key"))
	assert.Equal(t, "frontdesk@examplehotel.com", cfg.GetString("email.to"))
	assert.Equal(t, constant.DefaultFromEmail, cfg.GetString("email.from"))
	assert.Equal(t, 8080, cfg.GetInt("server.port"))
	assert.Equal(t, 5*time.Second, cfg.GetDuration("server.request_timeout"))
	assert.Equal(t, 30*time.Second, cfg.GetDuration("queue.email.ack_wait"))
}

func TestNewRelay(t *testing.T) {
	tests := []struct {
		name     string
		values   map[string]any
		expected Relay
		wantErr  string
	}{
		{
			name: "fully configured",
			values: map[string]any{
				"sendgrid.api_key": "SG.key",
				"sendgrid.host":    "http://localhost:9999/",
				"email.to":         "frontdesk@examplehotel.com",
				"email.from":       "bookings@examplehotel.com",
			},
			expected: Relay{
				SendgridAPIKey: "SG.key",
				SendgridHost:   "http://localhost:9999",
				ToEmail:        "frontdesk@examplehotel.com",
				FromEmail:      "bookings@examplehotel.com",
			},
		},
		{
			name: "default sender",
			values: map[string]any{
				"sendgrid.api_key": "SG.key",
				"email.to":         "frontdesk@examplehotel.com",
			},
			expected: Relay{
				SendgridAPIKey: "SG.key",
				SendgridHost:   constant.DefaultSendgridHost,
				ToEmail:        "frontdesk@examplehotel.com",
				FromEmail:      constant.DefaultFromEmail,
			},
		},
		{
			name: "missing recipient",
			values: map[string]any{
				"sendgrid.api_key": "SG.key",
			},
			expected: Relay{
				SendgridAPIKey: "SG.key",
				SendgridHost:   constant.DefaultSendgridHost,
				FromEmail:      constant.DefaultFromEmail,
			},
			wantErr: "server not configured: missing TO_EMAIL",
		},
		{
			name:   "nothing configured",
			values: map[string]any{},
			expected: Relay{
				SendgridHost: constant.DefaultSendgridHost,
				FromEmail:    constant.DefaultFromEmail,
			},
			wantErr: "server not configured: missing SENDGRID_API_KEY, TO_EMAIL",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := viper.New()
			for k, v := range tc.values {
				cfg.Set(k, v)
			}

			relay := NewRelay(cfg)
			assert.Equal(t, tc.expected, relay)

			err := relay.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNotConfigured))
			assert.Equal(t, tc.wantErr, err.Error())
		})
	}
}
