package resume

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xblinx/attachments/internal/attachment"
	"github.com/xblinx/attachments/internal/notify"
	"github.com/xblinx/attachments/internal/response"
	"github.com/xblinx/attachments/internal/storage/storagetest"
)

type fakeCandidates struct {
	rows  int64
	err   error
	calls []int64
}

func (f *fakeCandidates) DeleteCandidate(_ context.Context, id int64) (int64, error) {
	f.calls = append(f.calls, id)
	return f.rows, f.err
}

func setup(t *testing.T, candidates *fakeCandidates) (*Handler, *storagetest.Spy) {
	t.Helper()
	spy := storagetest.NewSpy()
	nop := notify.Func(func(*http.Request, error) {})
	return NewHandler(attachment.NewService(spy), candidates, nop, 1<<20), spy
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), rr.Body.String())
	return env
}

func seed(t *testing.T, spy *storagetest.Spy, key, body string) {
	t.Helper()
	_, err := spy.Storage.Put(context.Background(), key, strings.NewReader(body), int64(len(body)), "application/pdf")
	require.NoError(t, err)
}

func TestUpload(t *testing.T) {
	h, spy := setup(t, &fakeCandidates{})

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("file", "jane doe cv.pdf")
	require.NoError(t, err)
	_, err = io.WriteString(part, "%PDF-1.7")
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/s3/resume?candidate_id=42", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	h.Upload(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "File jane_doe_cv.pdf uploaded successfully.", decode(t, rr).Message)

	_, _, err = spy.Storage.Get(context.Background(), "resume/42/jane_doe_cv.pdf")
	assert.NoError(t, err)
}

func TestUploadMissingCandidate(t *testing.T) {
	h, spy := setup(t, &fakeCandidates{})
	rr := httptest.NewRecorder()

	h.Upload(rr, httptest.NewRequest(http.MethodPost, "/s3/resume", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, msgMissing, decode(t, rr).Message)
	assert.Zero(t, spy.Total())
}

func TestDownload(t *testing.T) {
	h, spy := setup(t, &fakeCandidates{})
	seed(t, spy, "resume/42/cv.pdf", "%PDF-1.7")

	rr := httptest.NewRecorder()
	h.Download(rr, httptest.NewRequest(http.MethodGet, "/s3/resume/download?candidate_id=42&file_name=cv.pdf", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, response.ContentTypeForceDownload, rr.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF-1.7", rr.Body.String())
}

func TestDeleteMissingParameters(t *testing.T) {
	candidates := &fakeCandidates{rows: 1}
	h, spy := setup(t, candidates)
	rr := httptest.NewRecorder()

	h.Delete(rr, httptest.NewRequest(http.MethodDelete, "/s3/resume?candidate_id=42", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	env := decode(t, rr)
	assert.Equal(t, response.StatusFailure, env.Status)
	assert.Equal(t, msgMissingFile, env.Message)
	assert.Empty(t, candidates.calls)
	assert.Zero(t, spy.Total())
}

func TestDeleteRemovesFileWhenRowDeleted(t *testing.T) {
	candidates := &fakeCandidates{rows: 1}
	h, spy := setup(t, candidates)
	seed(t, spy, "resume/42/cv.pdf", "%PDF-1.7")

	rr := httptest.NewRecorder()
	h.Delete(rr, httptest.NewRequest(http.MethodDelete, "/s3/resume?candidate_id=42&file_name=cv.pdf", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	env := decode(t, rr)
	assert.Equal(t, response.StatusSuccess, env.Status)
	assert.Equal(t, "cv.pdf deleted successfully.", env.Message)
	assert.Equal(t, []int64{42}, candidates.calls)
	assert.Equal(t, 1, spy.Calls("Delete"))
}

func TestDeleteNothingDeleted(t *testing.T) {
	candidates := &fakeCandidates{rows: 0}
	h, spy := setup(t, candidates)

	rr := httptest.NewRecorder()
	h.Delete(rr, httptest.NewRequest(http.MethodDelete, "/s3/resume?candidate_id=42&file_name=cv.pdf", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	env := decode(t, rr)
	assert.Equal(t, response.StatusFailure, env.Status)
	assert.Equal(t, msgNothing, env.Message)
	assert.Zero(t, spy.Total())
}

func TestDeleteDatabaseError(t *testing.T) {
	candidates := &fakeCandidates{err: errors.New("connection refused")}
	h, spy := setup(t, candidates)

	rr := httptest.NewRecorder()
	h.Delete(rr, httptest.NewRequest(http.MethodDelete, "/s3/resume?candidate_id=42&file_name=cv.pdf", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	env := decode(t, rr)
	assert.Equal(t, response.StatusError, env.Status)
	assert.Contains(t, env.DevMessage, "connection refused")
	assert.Zero(t, spy.Total())
}

func TestDeleteNonNumericCandidate(t *testing.T) {
	candidates := &fakeCandidates{rows: 1}
	h, spy := setup(t, candidates)

	rr := httptest.NewRecorder()
	h.Delete(rr, httptest.NewRequest(http.MethodDelete, "/s3/resume?candidate_id=abc&file_name=cv.pdf", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, response.StatusError, decode(t, rr).Status)
	assert.Empty(t, candidates.calls)
	assert.Zero(t, spy.Total())
}
