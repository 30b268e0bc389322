package storage

import (
	"errors"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestTranslateMissingKey(t *testing.T) {
	for _, code := range []string{"NoSuchKey", "NoSuchObject"} {
		t.Run(code, func(t *testing.T) {
			err := translate("expense/3/7/a.txt", "stat object", minio.ErrorResponse{Code: code, StatusCode: 404})

			assert.ErrorIs(t, err, ErrNotFound)
			assert.Contains(t, err.Error(), `stat object "expense/3/7/a.txt"`)
		})
	}
}

func TestTranslateOtherErrors(t *testing.T) {
	denied := minio.ErrorResponse{Code: "AccessDenied", StatusCode: 403, Message: "Access Denied."}
	err := translate("expense/3/7/a.txt", "get object", denied)

	assert.NotErrorIs(t, err, ErrNotFound)
	var resp minio.ErrorResponse
	assert.True(t, errors.As(err, &resp))
	assert.Equal(t, "AccessDenied", resp.Code)

	plain := errors.New("connection reset")
	assert.ErrorIs(t, translate("k", "get object", plain), plain)
}
