package resume

import (
	"net/http"
	"strconv"

	"github.com/xblinx/attachments/internal/attachment"
	"github.com/xblinx/attachments/internal/logging"
	"github.com/xblinx/attachments/internal/notify"
	"github.com/xblinx/attachments/internal/request"
	"github.com/xblinx/attachments/internal/response"
)

// Entity is the key namespace resumes are stored under.
const Entity = "resume"

const (
	msgMissing     = "Mandatory parameters missing.(candidate_id)"
	msgMissingFile = "Mandatory parameters missing.(candidate_id/file_name)"
	msgNothing     = "No file deleted."
)

// Handler holds HTTP handlers for candidate resumes.
type Handler struct {
	svc        *attachment.Service
	candidates CandidateStore
	notifier   notify.Notifier
	maxMemory  int64
}

// NewHandler creates a new resume Handler.
func NewHandler(svc *attachment.Service, candidates CandidateStore, notifier notify.Notifier, maxMemory int64) *Handler {
	return &Handler{svc: svc, candidates: candidates, notifier: notifier, maxMemory: maxMemory}
}

// Resumes have no owning user, so the key is resume/<candidate_id>/<file>.
func refFor(candidateID string) attachment.Ref {
	return attachment.Ref{Entity: Entity, EntityID: candidateID}
}

// Upload godoc
//
//	@Summary		Upload a candidate resume
//	@Tags			resumes
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			candidate_id	query		string	true	"Candidate id"
//	@Param			file			formData	file	true	"Resume file(s)"
//	@Success		200				{object}	response.Envelope
//	@Failure		400				{object}	response.Envelope
//	@Failure		500				{object}	response.Envelope
//	@Router			/s3/resume [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if !attachment.ParseUpload(w, r, h.notifier, h.maxMemory) {
		return
	}
	candidateID := r.FormValue("candidate_id")
	if request.Blank(candidateID) {
		response.BadRequest(w, msgMissing)
		return
	}
	attachment.HandleUpload(w, r, h.svc, h.notifier, refFor(candidateID))
}

// Download godoc
//
//	@Summary	Download a candidate resume
//	@Tags		resumes
//	@Produce	octet-stream
//	@Param		candidate_id	query		string	true	"Candidate id"
//	@Param		file_name		query		string	true	"File name"
//	@Success	200				{file}		binary
//	@Failure	400				{object}	response.Envelope
//	@Failure	404				{object}	response.Envelope
//	@Failure	500				{object}	response.Envelope
//	@Router		/s3/resume/download [get]
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	candidateID := r.FormValue("candidate_id")
	fileName := r.FormValue("file_name")
	if request.Blank(candidateID, fileName) {
		response.BadRequest(w, msgMissingFile)
		return
	}
	attachment.Stream(w, r, h.svc, h.notifier, refFor(candidateID), fileName)
}

// Delete godoc
//
//	@Summary		Delete a candidate and their resume
//	@Description	The candidate row is deleted first. The stored file is removed only when a row was deleted; the two deletes are not transactional.
//	@Tags			resumes
//	@Produce		json
//	@Param			candidate_id	query		string	true	"Candidate id"
//	@Param			file_name		query		string	true	"File name"
//	@Success		200				{object}	response.Envelope
//	@Failure		400				{object}	response.Envelope
//	@Failure		404				{object}	response.Envelope
//	@Failure		500				{object}	response.Envelope
//	@Router			/s3/resume [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	candidateID := r.FormValue("candidate_id")
	fileName := r.FormValue("file_name")
	if request.Blank(candidateID, fileName) {
		response.BadRequest(w, msgMissingFile)
		return
	}

	id, err := strconv.ParseInt(candidateID, 10, 64)
	if err != nil {
		h.notifier.Notify(r, err)
		response.InternalError(w, attachment.DeleteErrorMessage(fileName), err)
		return
	}

	n, err := h.candidates.DeleteCandidate(r.Context(), id)
	if err != nil {
		h.notifier.Notify(r, err)
		response.InternalError(w, attachment.DeleteErrorMessage(fileName), err)
		return
	}
	if n == 0 {
		response.Failure(w, http.StatusNotFound, msgNothing)
		return
	}

	logging.Info("candidate deleted", "candidate_id", id, "rows", n)
	attachment.Remove(w, r, h.svc, h.notifier, refFor(candidateID), fileName)
}
