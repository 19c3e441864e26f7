package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Error is the single failure kind the client distinguishes: a request that
// did not complete with a 2xx status, whether the transport failed or the
// server rejected it. Status is 0 when no response arrived.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("api: %s: %v", e.Message, e.Err)
	}
	return "api: " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Unauthorized reports whether the server rejected the request's credentials.
func (e *Error) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// AsError unwraps err into *Error when possible.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// errorBody is the shape the server uses for error payloads. Some endpoints
// use "message", others "error".
type errorBody struct {
	Message string `json:"message"`
	ErrMsg  string `json:"error"`
}

func decodeError(resp *http.Response) *Error {
	apiErr := &Error{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil || len(body) == 0 {
		return apiErr
	}
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return apiErr
	}
	switch {
	case parsed.Message != "":
		apiErr.Message = parsed.Message
	case parsed.ErrMsg != "":
		apiErr.Message = parsed.ErrMsg
	}
	return apiErr
}
