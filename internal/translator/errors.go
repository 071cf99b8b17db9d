package translator

import "fmt"

// TransportError covers everything between sending the request and receiving
// a 2xx response: DNS, connection and timeout failures, and non-2xx statuses.
// StatusCode is zero when no response arrived.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		if e.Body != "" {
			return fmt.Sprintf("translation service returned status %d: %s", e.StatusCode, e.Body)
		}
		return fmt.Sprintf("translation service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ResponseFormatError means the body arrived but did not have the expected
// nested-array shape.
type ResponseFormatError struct {
	Reason string
	Err    error
}

func (e *ResponseFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unexpected response format: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("unexpected response format: %s", e.Reason)
}

func (e *ResponseFormatError) Unwrap() error { return e.Err }
