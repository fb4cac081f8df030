package common

import (
	"context"
	"errors"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
	"hotel-booking/common/constant"
	"hotel-booking/common/contract/mocks"
	"hotel-booking/model"
	"testing"
)

func TestExtractTraceIDFromCtx(t *testing.T) {
	attr := ExtractTraceIDFromCtx(context.Background())

	assert.Equal(t, constant.LogFieldTraceId, attr.Key)
	assert.Len(t, attr.Value.String(), 26)
}

func TestExtractTraceIDFromSpanContext(t *testing.T) {
	traceID := trace.TraceID{0x4b, 0xf9, 0x2f, 0x35, 0x77, 0xb3, 0x4d, 0xa6, 0xa3, 0xce, 0x92, 0x9d, 0x0e, 0x0e, 0x47, 0x36}
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  trace.SpanID{0x00, 0xf0, 0x67, 0xaa, 0x0b, 0xa9, 0x02, 0xb7},
	}))

	attr := ExtractTraceIDFromCtx(ctx)

	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", attr.Value.String())
}

func TestPublishMessage(t *testing.T) {
	errNatsDown := errors.New("nats down")
	msg := model.SendEmailEventMessage{To: "ada@example.com", Subject: "Hi", Body: "Hello"}
	expected := []byte(`{"to":"ada@example.com","subject":"Hi","body":"Hello"}`)

	tests := []struct {
		name      string
		body      any
		publisher func(p *mocks.MockPublisher)
		expectErr bool
		cause     error
	}{
		{
			name: "success",
			body: msg,
			publisher: func(p *mocks.MockPublisher) {
				p.EXPECT().Publish(gomock.Any(), constant.SubjectSendEmail, expected).Return(&jetstream.PubAck{Stream: constant.QueueStreamName, Sequence: 7}, nil)
			},
		},
		{
			name: "publish error",
			body: msg,
			publisher: func(p *mocks.MockPublisher) {
				p.EXPECT().Publish(gomock.Any(), constant.SubjectSendEmail, expected).Return(nil, errNatsDown)
			},
			expectErr: true,
			cause:     errNatsDown,
		},
		{
			name:      "unmarshalable body",
			body:      make(chan int),
			publisher: func(p *mocks.MockPublisher) {},
			expectErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			publisher := mocks.NewMockPublisher(ctrl)
			tc.publisher(publisher)

			err := PublishMessage(context.Background(), publisher, constant.SubjectSendEmail, tc.body)
			if tc.cause != nil {
				assert.ErrorIs(t, err, tc.cause)
			}
			if tc.expectErr {
				assert.ErrorContains(t, err, constant.SubjectSendEmail)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
