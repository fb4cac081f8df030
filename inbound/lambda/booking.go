package lambda

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"github.com/aws/aws-lambda-go/events"
	"hotel-booking/booking"
	"hotel-booking/common/constant"
	"log/slog"
	"net/http"
)

// BookingLambda serves the relay behind API Gateway or a Netlify function.
// Flush, when set, runs after every invocation before the response is
// returned.
type BookingLambda struct {
	Relay *booking.Relay
	Flush func(ctx context.Context) error
}

func (in BookingLambda) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return response(booking.ResultFromError(fmt.Errorf("decode request body: %w", err)))
		}
		body = decoded
	}

	result := in.Relay.Handle(ctx, req.HTTPMethod, body)
	in.flush(ctx)

	return response(result)
}

func (in BookingLambda) flush(ctx context.Context) {
	if in.Flush == nil {
		return
	}

	if err := in.Flush(ctx); err != nil {
		slog.WarnContext(ctx, "failed to flush telemetry", slog.Any(constant.LogFieldErr, err))
	}
}

func response(result booking.Result) (events.APIGatewayProxyResponse, error) {
	data, err := json.Marshal(result.Response)
	if err != nil {
		slog.Error("failed to marshal booking response", slog.Any(constant.LogFieldErr, err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, err
	}

	return events.APIGatewayProxyResponse{
		StatusCode: result.Status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(data),
	}, nil
}
