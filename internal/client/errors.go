package client

import (
	"encoding/json"
	"fmt"
)

// ValidationError reports that the backend rejected the request shape
// (HTTP 422). The user-facing message is fixed; Detail carries whatever
// the backend said for logs.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return "There was a problem with the request data."
}

// TransportError covers network failures and any other non-2xx response.
// Message is the backend's structured error detail when one was returned,
// else a generic fallback. StatusCode is zero when the request never
// reached the backend.
type TransportError struct {
	StatusCode int
	Message    string
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("agent backend returned %d: %s", e.StatusCode, e.Message)
	}
	return e.Message
}

// errorBody matches the structured error shapes the backend emits:
// FastAPI-style {"detail": ...} or the generic {"error": ...}.
type errorBody struct {
	Detail string `json:"detail"`
	Err    string `json:"error"`
}

func transportError(status int, body []byte) *TransportError {
	msg := "API Error"
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		switch {
		case parsed.Detail != "":
			msg = parsed.Detail
		case parsed.Err != "":
			msg = parsed.Err
		}
	}
	return &TransportError{StatusCode: status, Message: msg}
}
