package errs

import "fmt"

// HttpError carries the status and body a failed relay step maps to.
type HttpError struct {
	Code    int
	Message string
	Detail  string
	Err     error
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("code %d: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("code %d: %s", e.Code, e.Message)
}

func (e *HttpError) Unwrap() error {
	return e.Err
}

// ProviderError is a non-success answer from the email provider.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}
