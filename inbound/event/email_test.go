package event

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"hotel-booking/common/constant"
	"hotel-booking/common/contract/mocks"
	"hotel-booking/model"
	"log/slog"
	"testing"
	"time"
)

type EmailEventTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	sender     *mocks.MockEmailSender
	emailEvent EmailEvent
}

func (s *EmailEventTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sender = mocks.NewMockEmailSender(s.ctrl)
	s.emailEvent = EmailEvent{
		Sender:     s.sender,
		Timeout:    10 * time.Second,
		RetryDelay: time.Second,
	}
	slog.SetLogLoggerLevel(slog.LevelDebug)
}

func (s *EmailEventTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestEmailEventTestSuite(t *testing.T) {
	suite.Run(t, new(EmailEventTestSuite))
}

func (s *EmailEventTestSuite) TestSendEmailHandler() {
	valid := model.SendEmailEventMessage{
		To:      "ada@example.com",
		Subject: "We received your booking request",
		Body:    "Hello Ada",
	}

	testCases := []struct {
		name        string
		input       func() []byte
		setupMock   func()
		expectError bool
	}{
		{
			name:        "undecodable message is dropped",
			input:       func() []byte { return []byte("{not json") },
			setupMock:   func() {},
			expectError: false,
		},
		{
			name: "message without recipient is dropped",
			input: func() []byte {
				msg := valid
				msg.To = ""
				data, _ := json.Marshal(msg)
				return data
			},
			setupMock:   func() {},
			expectError: false,
		},
		{
			name: "send error is returned for redelivery",
			input: func() []byte {
				data, _ := json.Marshal(valid)
				return data
			},
			setupMock: func() {
				s.sender.EXPECT().Send([]string{valid.To}, valid.Subject, valid.Body).Return(errors.New("smtp down"))
			},
			expectError: true,
		},
		{
			name: "success",
			input: func() []byte {
				data, _ := json.Marshal(valid)
				return data
			},
			setupMock: func() {
				s.sender.EXPECT().Send([]string{valid.To}, valid.Subject, valid.Body).Return(nil)
			},
			expectError: false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMock()

			err := s.emailEvent.SendEmailHandler(context.Background(), tc.input())
			if tc.expectError {
				s.Error(err)
			} else {
				s.NoError(err)
			}
		})
	}
}

type fakeMsg struct {
	jetstream.Msg

	subject  string
	data     []byte
	acked    int
	naked    int
	nakDelay time.Duration
	ackErr   error
	nakErr   error
}

func (m *fakeMsg) Subject() string { return m.subject }

func (m *fakeMsg) Data() []byte { return m.data }

func (m *fakeMsg) Ack() error {
	m.acked++
	return m.ackErr
}

func (m *fakeMsg) NakWithDelay(delay time.Duration) error {
	m.naked++
	m.nakDelay = delay
	return m.nakErr
}

func (s *EmailEventTestSuite) TestConsume() {
	data, _ := json.Marshal(model.SendEmailEventMessage{To: "ada@example.com", Subject: "Hi", Body: "Hello"})

	testCases := []struct {
		name         string
		msg          *fakeMsg
		setupMock    func()
		expectedAcks int
		expectedNaks int
	}{
		{
			name: "delivered message is acked",
			msg:  &fakeMsg{subject: constant.SubjectSendEmail, data: data},
			setupMock: func() {
				s.sender.EXPECT().Send([]string{"ada@example.com"}, "Hi", "Hello").Return(nil)
			},
			expectedAcks: 1,
		},
		{
			name: "failed send is naked with delay",
			msg:  &fakeMsg{subject: constant.SubjectSendEmail, data: data},
			setupMock: func() {
				s.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
			},
			expectedNaks: 1,
		},
		{
			name: "nak error does not ack",
			msg:  &fakeMsg{subject: constant.SubjectSendEmail, data: data, nakErr: errors.New("connection closed")},
			setupMock: func() {
				s.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
			},
			expectedNaks: 1,
		},
		{
			name:         "undecodable message is acked",
			msg:          &fakeMsg{subject: constant.SubjectSendEmail, data: []byte("{")},
			setupMock:    func() {},
			expectedAcks: 1,
		},
		{
			name:         "other subject is acked without sending",
			msg:          &fakeMsg{subject: "events.email.other", data: data},
			setupMock:    func() {},
			expectedAcks: 1,
		},
		{
			name:         "ack error is tolerated",
			msg:          &fakeMsg{subject: "events.email.other", data: data, ackErr: errors.New("connection closed")},
			setupMock:    func() {},
			expectedAcks: 1,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMock()

			s.emailEvent.Consume(context.Background(), tc.msg)

			s.Equal(tc.expectedAcks, tc.msg.acked)
			s.Equal(tc.expectedNaks, tc.msg.naked)
			if tc.expectedNaks > 0 {
				s.Equal(time.Second, tc.msg.nakDelay)
			}
		})
	}
}
