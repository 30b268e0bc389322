package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestSuccess(t *testing.T) {
	rr := httptest.NewRecorder()
	Success(rr, "Files deleted successfully.")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	body := decode(t, rr)
	assert.Equal(t, "SUCCESS", body["status"])
	assert.Equal(t, "Files deleted successfully.", body["message"])
	assert.NotContains(t, body, "devMessage")
	assert.NotContains(t, body, "listMap")
}

func TestOKKeepsEmptyListing(t *testing.T) {
	total := 0
	id := int64(7)
	rr := httptest.NewRecorder()
	OK(rr, Envelope{ListMap: []string{}, TotalResults: &total, EntityID: &id})

	body := decode(t, rr)
	assert.Equal(t, []interface{}{}, body["listMap"])
	assert.Equal(t, float64(0), body["totalResults"])
	assert.Equal(t, float64(7), body["entityId"])
}

func TestFailure(t *testing.T) {
	rr := httptest.NewRecorder()
	BadRequest(rr, "Mandatory parameters missing.(candidate_id)")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	body := decode(t, rr)
	assert.Equal(t, "FAILURE", body["status"])
	assert.Equal(t, "Mandatory parameters missing.(candidate_id)", body["message"])
}

func TestError(t *testing.T) {
	rr := httptest.NewRecorder()
	InternalError(rr, "File listing error.", errors.New("connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decode(t, rr)
	assert.Equal(t, "ERROR", body["status"])
	assert.Equal(t, "File listing error.", body["message"])
	assert.Equal(t, "connection refused", body["devMessage"])
}

func TestAttachment(t *testing.T) {
	rr := httptest.NewRecorder()
	err := Attachment(rr, ContentTypePDF, "q1 report.pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, ContentTypePDF, rr.Header().Get("Content-Type"))
	assert.Equal(t, "attachment;filename=q1+report.pdf", rr.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.4", rr.Body.String())
}
