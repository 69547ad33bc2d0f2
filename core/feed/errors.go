package feed

import "fmt"

// NetworkError reports a transport-level failure (connection, timeout, or a
// non-2xx response) while fetching a feed.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("feed request %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ParseError reports malformed JSON in a feed response body.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("feed response from %s is not valid JSON: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
