// Package response provides shared JSON response helpers for HTTP handlers.
package response

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Status is the outcome vocabulary carried by every envelope.
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailure Status = "FAILURE"
	StatusError   Status = "ERROR"
)

// Content types used when streaming stored objects back to the caller.
const (
	ContentTypePDF           = "application/pdf; charset=UTF-8"
	ContentTypeForceDownload = "application/force-download; charset=UTF-8"
)

// Envelope is the standard API response envelope. Status decides which of
// the other fields are meaningful.
type Envelope struct {
	Status       Status      `json:"status"`
	Message      string      `json:"message,omitempty"`
	DevMessage   string      `json:"devMessage,omitempty"`
	ListMap      interface{} `json:"listMap,omitempty"`
	TotalResults *int        `json:"totalResults,omitempty"`
	EntityID     *int64      `json:"entityId,omitempty"`
	Entity       interface{} `json:"entity,omitempty"`
}

// JSON writes a JSON-encoded payload with the given HTTP status code.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// OK writes a 200 response with a fully built SUCCESS envelope.
func OK(w http.ResponseWriter, env Envelope) {
	env.Status = StatusSuccess
	JSON(w, http.StatusOK, env)
}

// Success writes a 200 SUCCESS envelope carrying only a message.
func Success(w http.ResponseWriter, message string) {
	OK(w, Envelope{Message: message})
}

// Failure writes a FAILURE envelope for caller mistakes.
func Failure(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Status: StatusFailure, Message: message})
}

// BadRequest writes a 400 FAILURE envelope.
func BadRequest(w http.ResponseWriter, message string) {
	Failure(w, http.StatusBadRequest, message)
}

// Unauthorized writes a 401 FAILURE envelope.
func Unauthorized(w http.ResponseWriter, message string) {
	Failure(w, http.StatusUnauthorized, message)
}

// Error writes an ERROR envelope with err's text as the developer message.
func Error(w http.ResponseWriter, status int, message string, err error) {
	env := Envelope{Status: StatusError, Message: message}
	if err != nil {
		env.DevMessage = err.Error()
	}
	JSON(w, status, env)
}

// InternalError writes a 500 ERROR envelope.
func InternalError(w http.ResponseWriter, message string, err error) {
	Error(w, http.StatusInternalServerError, message, err)
}

// Attachment streams body as a file download named name.
func Attachment(w http.ResponseWriter, contentType, name string, body io.Reader) error {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment;filename=%s", url.QueryEscape(name)))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, body); err != nil {
		return fmt.Errorf("stream %q: %w", name, err)
	}
	return nil
}
