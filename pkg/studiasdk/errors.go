package studiasdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// StatusError is an HTTP response with a non-2xx status. The raw body is
// kept so the message-extraction chain can inspect it.
type StatusError struct {
	Code int
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Code, http.StatusText(e.Code))
}

// IsAuth reports whether the response was an authentication failure.
func (e *StatusError) IsAuth() bool { return e.Code == http.StatusUnauthorized }

// APIError is the only error type domain endpoints return. Error() yields a
// short localized message fit for direct display; the underlying cause stays
// reachable through Unwrap for logging.
type APIError struct {
	Message string
	Err     error
}

func (e *APIError) Error() string { return e.Message }
func (e *APIError) Unwrap() error { return e.Err }

// newAPIError normalizes any request failure into an APIError with a
// user-facing message.
func newAPIError(err error, fallback string) *APIError {
	return &APIError{Message: ExtractMessage(err, fallback), Err: err}
}

// ExtractMessage resolves the user-facing message for a failed request.
// Backend payloads are inspected in fixed priority: structured field errors
// (preferring non_field_errors), then message, error and detail fields, then
// a raw string body. The fallback is used when nothing matches, including
// transport errors that produced no response at all.
func ExtractMessage(err error, fallback string) string {
	var se *StatusError
	if errors.As(err, &se) {
		if msg := messageFromBody(se.Body); msg != "" {
			return msg
		}
	}
	return fallback
}

func messageFromBody(body []byte) string {
	body = []byte(strings.TrimSpace(string(body)))
	if len(body) == 0 {
		return ""
	}

	var payload struct {
		Errors  map[string]json.RawMessage `json:"errors"`
		Message string                     `json:"message"`
		Error   string                     `json:"error"`
		Detail  string                     `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg := firstFieldError(payload.Errors); msg != "" {
			return msg
		}
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Detail != "" {
			return payload.Detail
		}
		return ""
	}

	// A JSON-encoded bare string.
	var s string
	if err := json.Unmarshal(body, &s); err == nil {
		return strings.TrimSpace(s)
	}

	// Some error paths return plain text.
	if !json.Valid(body) {
		return string(body)
	}
	return ""
}

// firstFieldError picks the first entry of the first populated field in a
// DRF-style errors map, preferring non_field_errors.
func firstFieldError(fields map[string]json.RawMessage) string {
	if len(fields) == 0 {
		return ""
	}

	if raw, ok := fields["non_field_errors"]; ok {
		if msg := firstEntry(raw); msg != "" {
			return msg
		}
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k != "non_field_errors" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		if msg := firstEntry(fields[k]); msg != "" {
			return msg
		}
	}
	return ""
}

func firstEntry(raw json.RawMessage) string {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return list[0]
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return ""
}
