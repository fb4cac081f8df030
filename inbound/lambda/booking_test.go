package lambda

import (
	"context"
	"encoding/base64"
	"errors"
	"github.com/aws/aws-lambda-go/events"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"hotel-booking/booking"
	"hotel-booking/common/config"
	"hotel-booking/common/contract/mocks"
	"net/http"
	"testing"
)

const payload = `{"name":"A","email":"a@x.com","checkin":"2024-01-10","checkout":"2024-01-12"}`

type BookingLambdaTestSuite struct {
	suite.Suite

	Mailer *mocks.MockMailer
	Lambda BookingLambda
}

func (s *BookingLambdaTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.Mailer = mocks.NewMockMailer(ctrl)

	cfg := config.Relay{SendgridAPIKey: "SG.test", ToEmail: "frontdesk@examplehotel.com", FromEmail: "no-reply@examplehotel.com"}
	s.Lambda = BookingLambda{Relay: booking.NewRelay(cfg, s.Mailer, nil, validator.New())}
}

func TestBookingLambdaTestSuite(t *testing.T) {
	suite.Run(t, new(BookingLambdaTestSuite))
}

func (s *BookingLambdaTestSuite) TestHandle() {
	tests := []struct {
		name           string
		req            events.APIGatewayProxyRequest
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "method not allowed",
			req:            events.APIGatewayProxyRequest{HTTPMethod: http.MethodPut},
			setupMock:      func() {},
			expectedStatus: http.StatusMethodNotAllowed,
			expectedBody:   `{"message":"Method not allowed"}`,
		},
		{
			name:           "missing body",
			req:            events.APIGatewayProxyRequest{HTTPMethod: http.MethodPost},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"Missing required fields"}`,
		},
		{
			name: "plain body",
			req:  events.APIGatewayProxyRequest{HTTPMethod: http.MethodPost, Body: payload},
			setupMock: func() {
				s.Mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"Booking request sent"}`,
		},
		{
			name: "base64 body",
			req: events.APIGatewayProxyRequest{
				HTTPMethod:      http.MethodPost,
				Body:            base64.StdEncoding.EncodeToString([]byte(payload)),
				IsBase64Encoded: true,
			},
			setupMock: func() {
				s.Mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"Booking request sent"}`,
		},
		{
			name: "broken base64 body",
			req: events.APIGatewayProxyRequest{
				HTTPMethod:      http.MethodPost,
				Body:            "%%%",
				IsBase64Encoded: true,
			},
			setupMock:      func() {},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMock()

			resp, err := s.Lambda.Handle(context.Background(), tc.req)

			s.NoError(err)
			s.Equal(tc.expectedStatus, resp.StatusCode)
			s.Equal("application/json", resp.Headers["Content-Type"])
			if tc.expectedBody != "" {
				s.JSONEq(tc.expectedBody, resp.Body)
			}
		})
	}
}

func (s *BookingLambdaTestSuite) TestHandleFlushesEveryInvocation() {
	flushes := 0
	s.Lambda.Flush = func(ctx context.Context) error {
		flushes++
		if flushes == 2 {
			return errors.New("collector unreachable")
		}
		return nil
	}

	first, err := s.Lambda.Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet})
	s.NoError(err)
	s.Equal(http.StatusMethodNotAllowed, first.StatusCode)

	second, err := s.Lambda.Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodPost})
	s.NoError(err)
	s.Equal(http.StatusBadRequest, second.StatusCode)

	s.Equal(2, flushes)
}
