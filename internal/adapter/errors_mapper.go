// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/onda-planner/onda-sync/models"
)

// HTTPError is returned for every non-2xx response. It unwraps to the
// sentinel error matching StatusCode.
type HTTPError struct {
	StatusCode int
	Message    string
	RetryAfter int

	sentinel error
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.sentinel)
	}
	return fmt.Sprintf("http %d: %s: %s", e.StatusCode, e.sentinel, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.sentinel
}

var statusErrors = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusNotFound:              ErrNotFound,
	http.StatusRequestEntityTooLarge: ErrRequestTooLarge,
	http.StatusTooManyRequests:       ErrTooManyRequests,
	http.StatusInternalServerError:   ErrInternalServerError,
	http.StatusServiceUnavailable:    ErrServiceUnavailable,
}

// NewHTTPError builds the error for a response with the given status.
func NewHTTPError(statusCode int, message string) *HTTPError {
	httpErr := &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		sentinel:   ErrUnexpectedStatus,
	}
	if sentinel, ok := statusErrors[statusCode]; ok {
		httpErr.sentinel = sentinel
	}
	return httpErr
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	httpErr := NewHTTPError(resp.StatusCode(), "")

	body := strings.TrimSpace(string(resp.Body()))
	var errResp models.ErrorResponse
	if err := json.Unmarshal([]byte(body), &errResp); err == nil && errResp.Error != "" {
		httpErr.Message = errResp.Error
		httpErr.RetryAfter = errResp.RetryAfter
	} else {
		httpErr.Message = body
	}

	return httpErr
}
