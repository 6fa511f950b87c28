package catalog

import "fmt"

// RequestError is returned when a catalog call fails at the transport level or
// the server answers with a non-2xx status.
type RequestError struct {
	Method string
	URL    string
	// StatusCode is 0 when no response was received.
	StatusCode int
	Body       string
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s %s: status %d: %v", e.Method, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s returned %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

func (e *RequestError) Unwrap() error { return e.Err }
