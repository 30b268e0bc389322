// Package request holds small helpers for reading handler parameters.
package request

import (
	"errors"
	"net/http"
)

// Blank reports whether any of values is empty.
func Blank(values ...string) bool {
	for _, v := range values {
		if v == "" {
			return true
		}
	}
	return false
}

// ParseMultipart parses a multipart body keeping up to maxMemory bytes in
// memory. Requests that are not multipart are accepted so their query
// parameters can still be validated.
func ParseMultipart(r *http.Request, maxMemory int64) error {
	err := r.ParseMultipartForm(maxMemory)
	if err == nil || errors.Is(err, http.ErrNotMultipart) {
		return nil
	}
	return err
}

// TooLarge reports whether err was caused by http.MaxBytesReader.
func TooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
