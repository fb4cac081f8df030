package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"hotel-booking/common"
	"hotel-booking/common/constant"
	"hotel-booking/model"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

type Response struct {
	StatusCode int
	Body       []byte
}

func (r *Response) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Outcome of a submission. Response is the last response received from any
// endpoint, nil when every attempt failed at the transport level.
type Outcome struct {
	Response *Response
	LastErr  string
}

// Submitter posts a booking to each endpoint in order until one answers 2xx.
type Submitter struct {
	BaseURL   string
	Endpoints []string
	Client    *http.Client
}

func NewSubmitter(baseURL string) *Submitter {
	return &Submitter{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		Endpoints: constant.BookingEndpoints,
		Client:    &http.Client{},
	}
}

func (s *Submitter) Submit(ctx context.Context, req model.BookingRequest) Outcome {
	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	var outcome Outcome

	payload, err := json.Marshal(req)
	if err != nil {
		outcome.LastErr = err.Error()
		return outcome
	}

	for _, endpoint := range s.Endpoints {
		resp, err := s.post(ctx, s.BaseURL+endpoint, payload)
		if err != nil {
			outcome.LastErr = fmt.Sprintf("Network error to %s: %v", endpoint, err)
			slog.WarnContext(ctx, "booking endpoint unreachable", traceIdAttr, slog.String("endpoint", endpoint), slog.Any(constant.LogFieldErr, err))
			continue
		}

		outcome.Response = resp
		if resp.OK() {
			slog.InfoContext(ctx, "booking submitted", traceIdAttr, slog.String("endpoint", endpoint))
			break
		}

		outcome.LastErr = fmt.Sprintf("Endpoint %s returned %d", endpoint, resp.StatusCode)
		if len(resp.Body) > 0 {
			outcome.LastErr += ": " + string(resp.Body)
		}
		slog.WarnContext(ctx, "booking endpoint rejected submission", traceIdAttr, slog.String("endpoint", endpoint), slog.Int(constant.LogFieldStatus, resp.StatusCode))
	}

	return outcome
}

func (s *Submitter) post(ctx context.Context, url string, payload []byte) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// An unreadable body still counts as a received response.
	body, _ := io.ReadAll(resp.Body)

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}
