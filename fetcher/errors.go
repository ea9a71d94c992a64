package fetcher

import "fmt"

// StatusError reports that the target site answered with a non-success
// HTTP status. The status is propagated to API clients as-is.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("target responded with status %d for %s", e.Code, e.URL)
}

// UnreachableError reports that no response arrived within the timeout.
// It covers transport failures and headless navigation timeouts alike,
// and is reported to API clients as a gateway timeout.
type UnreachableError struct {
	URL string
	Err error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("no response from %s: %v", e.URL, e.Err)
}

func (e *UnreachableError) Unwrap() error { return e.Err }
