package dispatch

import "fmt"

// StatusError reports a response other than 200 OK.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error [%d] %s", e.StatusCode, e.URL)
}
