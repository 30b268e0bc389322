package request

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlank(t *testing.T) {
	assert.False(t, Blank("expense", "7", "3"))
	assert.True(t, Blank("expense", "", "3"))
	assert.True(t, Blank(""))
	assert.False(t, Blank())
}

func TestParseMultipartAcceptsPlainRequests(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/s3?entity=expense", nil)
	require.NoError(t, ParseMultipart(req, 1<<20))
	assert.Equal(t, "expense", req.FormValue("entity"))
}

func TestParseMultipartReadsFields(t *testing.T) {
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("user_id", "3"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/s3", body)
	req.Header.Set("Content-Type", w.FormDataContentType())

	require.NoError(t, ParseMultipart(req, 1<<20))
	assert.Equal(t, "3", req.FormValue("user_id"))
}

func TestTooLarge(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123456789"))
	req.Body = http.MaxBytesReader(rr, req.Body, 4)

	buf := make([]byte, 16)
	_, err := req.Body.Read(buf)
	for err == nil {
		_, err = req.Body.Read(buf)
	}

	assert.True(t, TooLarge(fmt.Errorf("parse: %w", err)))
	assert.False(t, TooLarge(fmt.Errorf("other")))
}
