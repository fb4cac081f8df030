package jetstream

import (
	"context"
	"github.com/nats-io/nats.go/jetstream"
	"hotel-booking/common/constant"
)

func CreateQueueStream(ctx context.Context, js jetstream.JetStream) (jetstream.Stream, error) {
	cfg := jetstream.StreamConfig{
		Name:      constant.QueueStreamName,
		Retention: jetstream.WorkQueuePolicy,
		Subjects:  []string{constant.AllWildcard},
		MaxBytes:  5 * 1024 * 1024,
	}

	return js.CreateOrUpdateStream(ctx, cfg)
}
