package cmd

import (
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/spf13/viper"
	"hotel-booking/booking"
	"hotel-booking/common/config"
	"hotel-booking/common/contract"
	sendgridOutbound "hotel-booking/outbound/sendgrid"
	"io/fs"
	"log"
	"log/slog"
	"os"
)

func newCfg(name string) *viper.Viper {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalln(err)
	}

	cfg := viper.New()

	cfg.SetConfigName(name)
	cfg.SetConfigType("yaml")
	cfg.AddConfigPath(".")

	err := cfg.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatalln(err)
		}
	}

	config.Bind(cfg)

	if tz := cfg.GetString("server.timezone"); tz != "" {
		err = os.Setenv("TZ", tz)
		if err != nil {
			log.Fatalln(err)
		}
	}

	return cfg
}

func newNats(cfg *viper.Viper) *nats.Conn {
	conn, err := nats.Connect(cfg.GetString("nats.addr"))
	if err != nil {
		log.Fatalln(err)
	}

	return conn
}

func newJs(conn *nats.Conn) jetstream.JetStream {
	js, err := jetstream.New(conn)
	if err != nil {
		log.Fatalln(err)
	}

	return js
}

// newPublisher connects to NATS when nats.addr is set. The returned close
// func is always safe to call.
func newPublisher(cfg *viper.Viper) (contract.Publisher, func()) {
	if cfg.GetString("nats.addr") == "" {
		slog.Info("nats.addr is empty, guest acknowledgement disabled")
		return nil, func() {}
	}

	conn := newNats(cfg)
	js := newJs(conn)

	return js, conn.Close
}

func newRelay(cfg *viper.Viper, publisher contract.Publisher) *booking.Relay {
	relayCfg := config.NewRelay(cfg)

	return booking.NewRelay(relayCfg, sendgridOutbound.NewSendgridOutbound(relayCfg), publisher, validator.New())
}
