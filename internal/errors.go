package internal

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrNoSessionID   = errors.New("SAP login response is missing SessionId")
)

// AuthError is a failed login against the SAP Service Layer.
type AuthError struct {
	StatusCode int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("failed to log in to SAP: status code %d", e.StatusCode)
}

// SubmitError is a rejected document. Payload keeps the exact JSON that was
// sent so a rejected order can be diagnosed without re-running the fetch.
type SubmitError struct {
	StatusCode int
	Response   string
	Payload    string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("failed to send order to SAP: status code %d, response: %s, json sent: %s", e.StatusCode, e.Response, e.Payload)
}

// DocNumError means SAP answered 2xx but returned no DocNum. The call must
// not be treated as a confirmed insert.
type DocNumError struct {
	Payload string
}

func (e *DocNumError) Error() string {
	return fmt.Sprintf("failed to retrieve DocNum from SAP, json sent: %s", e.Payload)
}

// UnknownOriginError is a sales-origin label outside the closed mapping
// table. SAP rejects undefined codes, so the order never leaves the process.
type UnknownOriginError struct {
	Origin string
}

func (e *UnknownOriginError) Error() string {
	return fmt.Sprintf("unknown sales origin: %q", e.Origin)
}
