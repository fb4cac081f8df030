package cmd

import (
	"context"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"hotel-booking/form"
	"hotel-booking/outbound/relay"
	"log/slog"
	"net/url"
	"os"
)

func newSubmitCmd(ctx context.Context) *cobra.Command {
	values := url.Values{}
	var baseURL string

	fields := []struct {
		name  string
		usage string
	}{
		{form.FieldName, "guest name"},
		{form.FieldEmail, "guest email"},
		{form.FieldPhone, "guest phone"},
		{form.FieldCheckin, "check-in date (YYYY-MM-DD)"},
		{form.FieldCheckout, "check-out date (YYYY-MM-DD)"},
		{form.FieldRoomType, "room type"},
		{form.FieldGuests, "number of guests"},
		{form.FieldMessage, "message to the hotel"},
	}
	flagValues := make(map[string]*string, len(fields))

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a booking request to the relay",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := newCfg("env")
			if !cmd.Flags().Changed("base-url") {
				baseURL = cfg.GetString("client.base_url")
			}

			for name, v := range flagValues {
				if cmd.Flags().Changed(name) {
					values.Set(name, *v)
				}
			}

			final := form.Process(ctx, validator.New(), relay.NewSubmitter(baseURL), values, form.InitialState(), func(s form.State) {
				slog.DebugContext(ctx, "form state", slog.Any("state", s))
			})

			fmt.Fprintln(cmd.OutOrStdout(), final.Message)
			if final.IsError() {
				os.Exit(1)
			}
		},
	}

	for _, f := range fields {
		flagValues[f.name] = cmd.Flags().String(f.name, "", f.usage)
	}
	cmd.Flags().StringVar(&baseURL, "base-url", "", "relay base URL, defaults to client.base_url")

	return cmd
}
