package attachment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/xblinx/attachments/internal/logging"
	"github.com/xblinx/attachments/internal/notify"
	"github.com/xblinx/attachments/internal/preview"
	"github.com/xblinx/attachments/internal/request"
	"github.com/xblinx/attachments/internal/response"
	"github.com/xblinx/attachments/internal/storage"
)

const (
	msgMissingEntity     = "Mandatory parameters missing.(entity/entity_id/user_id)"
	msgMissingEntityFile = "Mandatory parameters missing.(entity/entity_id/user_id/file_name)"
	msgNoFile            = "No file found in request."
	msgTooLarge          = "Uploaded file is too large."
	msgUploadError       = "File uploaded error."
	msgListError         = "File listing error."
	msgDownloadError     = "File download error."
	msgDeleteAllError    = "Error deleting files. Please check all parameter values."
	msgDeletedAll        = "Files deleted successfully."
)

// Handler holds HTTP handlers for entity attachments.
type Handler struct {
	svc       *Service
	notifier  notify.Notifier
	maxMemory int64
}

// NewHandler creates a new attachment Handler. maxMemory bounds how much of
// a multipart body is kept in memory before spilling to temp files.
func NewHandler(svc *Service, notifier notify.Notifier, maxMemory int64) *Handler {
	return &Handler{svc: svc, notifier: notifier, maxMemory: maxMemory}
}

func refFrom(r *http.Request) Ref {
	return Ref{
		Entity:   r.FormValue("entity"),
		EntityID: r.FormValue("entity_id"),
		UserID:   r.FormValue("user_id"),
		GroupID:  r.FormValue("group_id"),
	}
}

// Upload godoc
//
//	@Summary		Upload attachments
//	@Description	Store every multipart file under entity/user_id/entity_id[/group_id]. Spaces in file names become underscores.
//	@Tags			attachments
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			entity		query		string	true	"Entity type"	example(expense)
//	@Param			entity_id	query		string	true	"Entity id"
//	@Param			user_id		query		string	true	"Owner id"
//	@Param			group_id	query		string	false	"Optional grouping id"
//	@Param			file		formData	file	true	"File(s) to upload"
//	@Success		200			{object}	response.Envelope
//	@Failure		400			{object}	response.Envelope
//	@Failure		500			{object}	response.Envelope
//	@Router			/s3 [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if !ParseUpload(w, r, h.notifier, h.maxMemory) {
		return
	}
	ref := refFrom(r)
	if request.Blank(ref.Entity, ref.EntityID, ref.UserID) {
		response.BadRequest(w, msgMissingEntity)
		return
	}
	HandleUpload(w, r, h.svc, h.notifier, ref)
}

// HandleUpload stores the parsed multipart files of r under ref and writes
// the envelope. Parameters must already be validated.
func HandleUpload(w http.ResponseWriter, r *http.Request, svc *Service, notifier notify.Notifier, ref Ref) {
	obj, err := svc.UploadFiles(r.Context(), ref, MultipartFiles(r))
	if errors.Is(err, ErrNoFiles) {
		response.BadRequest(w, msgNoFile)
		return
	}
	if err != nil {
		notifier.Notify(r, err)
		response.InternalError(w, msgUploadError, err)
		return
	}

	logging.Info("file uploaded", "key", obj.Key)
	response.Success(w, "File "+obj.Name()+" uploaded successfully.")
}

// ParseUpload parses the multipart body of r. On failure it writes the
// envelope and returns false.
func ParseUpload(w http.ResponseWriter, r *http.Request, notifier notify.Notifier, maxMemory int64) bool {
	err := request.ParseMultipart(r, maxMemory)
	if err == nil {
		return true
	}
	if request.TooLarge(err) {
		response.Failure(w, http.StatusRequestEntityTooLarge, msgTooLarge)
		return false
	}
	notifier.Notify(r, err)
	response.InternalError(w, msgUploadError, err)
	return false
}

// List godoc
//
//	@Summary		List attachments
//	@Description	List the files of an entity, newest first. Groups are included.
//	@Tags			attachments
//	@Produce		json
//	@Param			entity		query		string	true	"Entity type"
//	@Param			entity_id	query		string	true	"Entity id"
//	@Param			user_id		query		string	true	"Owner id"
//	@Success		200			{object}	response.Envelope{listMap=[]Item}
//	@Failure		400			{object}	response.Envelope
//	@Failure		500			{object}	response.Envelope
//	@Router			/s3 [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ref := refFrom(r)
	if request.Blank(ref.Entity, ref.EntityID, ref.UserID) {
		response.BadRequest(w, msgMissingEntity)
		return
	}

	entityID, err := strconv.ParseInt(ref.EntityID, 10, 64)
	if err != nil {
		h.notifier.Notify(r, err)
		response.InternalError(w, msgListError, err)
		return
	}

	listing, err := h.svc.List(r.Context(), ref)
	if err != nil {
		h.notifier.Notify(r, err)
		response.InternalError(w, msgListError, err)
		return
	}

	logging.Debug("listing documents", "prefix", ref.Prefix(), "count", listing.TotalCount)
	response.OK(w, response.Envelope{
		ListMap:      listing.Items,
		TotalResults: &listing.TotalCount,
		EntityID:     &entityID,
	})
}

// Download godoc
//
//	@Summary		Download an attachment
//	@Description	Stream a stored file as a forced download.
//	@Tags			attachments
//	@Produce		octet-stream
//	@Param			entity		query		string	true	"Entity type"
//	@Param			entity_id	query		string	true	"Entity id"
//	@Param			user_id		query		string	true	"Owner id"
//	@Param			group_id	query		string	false	"Optional grouping id"
//	@Param			file_name	query		string	true	"File name"
//	@Success		200			{file}		binary
//	@Failure		400			{object}	response.Envelope
//	@Failure		404			{object}	response.Envelope
//	@Failure		500			{object}	response.Envelope
//	@Router			/s3/download [get]
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	ref := refFrom(r)
	fileName := r.FormValue("file_name")
	if request.Blank(fileName, ref.Entity, ref.EntityID, ref.UserID) {
		response.BadRequest(w, msgMissingEntityFile)
		return
	}
	Stream(w, r, h.svc, h.notifier, ref, fileName)
}

// Stream writes the stored file name under ref as a forced download.
func Stream(w http.ResponseWriter, r *http.Request, svc *Service, notifier notify.Notifier, ref Ref, fileName string) {
	rc, _, err := svc.Open(r.Context(), ref, fileName)
	if err != nil {
		notifier.Notify(r, err)
		response.Error(w, openStatus(err), msgDownloadError, err)
		return
	}
	defer rc.Close()

	if err := response.Attachment(w, response.ContentTypeForceDownload, fileName, rc); err != nil {
		notifier.Notify(r, err)
		return
	}
	logging.Debug("file downloaded", "file", fileName)
}

// Preview godoc
//
//	@Summary		Preview an attachment
//	@Description	rtf and txt files are returned as text, jpg/jpeg/png/gif as base64 with isImage=true. pdf and every other type are streamed as a download.
//	@Tags			attachments
//	@Produce		json
//	@Produce		octet-stream
//	@Param			entity		query		string	true	"Entity type"
//	@Param			entity_id	query		string	true	"Entity id"
//	@Param			user_id		query		string	true	"Owner id"
//	@Param			group_id	query		string	false	"Optional grouping id"
//	@Param			file_name	query		string	true	"File name"
//	@Success		200			{object}	response.Envelope{entity=preview.Result}
//	@Failure		400			{object}	response.Envelope
//	@Failure		404			{object}	response.Envelope
//	@Failure		500			{object}	response.Envelope
//	@Router			/s3/preview [get]
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	ref := refFrom(r)
	fileName := r.FormValue("file_name")
	if request.Blank(fileName, ref.Entity, ref.EntityID, ref.UserID) {
		response.BadRequest(w, msgMissingEntityFile)
		return
	}

	rc, _, err := h.svc.Open(r.Context(), ref, fileName)
	if err != nil {
		h.notifier.Notify(r, err)
		response.Error(w, openStatus(err), msgDownloadError, err)
		return
	}
	defer rc.Close()

	res, kind, err := preview.Render(fileName, rc)
	if err != nil {
		h.notifier.Notify(r, err)
		response.InternalError(w, msgDownloadError, err)
		return
	}

	switch kind {
	case preview.KindPDF:
		if err := response.Attachment(w, response.ContentTypePDF, fileName, rc); err != nil {
			h.notifier.Notify(r, err)
			return
		}
	case preview.KindBinary:
		if err := response.Attachment(w, response.ContentTypeForceDownload, fileName, rc); err != nil {
			h.notifier.Notify(r, err)
			return
		}
	default:
		response.OK(w, response.Envelope{Entity: res})
	}
	logging.Debug("file previewed", "file", fileName, "kind", kind)
}

// Delete godoc
//
//	@Summary		Delete an attachment
//	@Tags			attachments
//	@Produce		json
//	@Param			entity		query		string	true	"Entity type"
//	@Param			entity_id	query		string	true	"Entity id"
//	@Param			user_id		query		string	true	"Owner id"
//	@Param			group_id	query		string	false	"Optional grouping id"
//	@Param			file_name	query		string	true	"File name"
//	@Success		200			{object}	response.Envelope
//	@Failure		400			{object}	response.Envelope
//	@Failure		500			{object}	response.Envelope
//	@Router			/s3 [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ref := refFrom(r)
	fileName := r.FormValue("file_name")
	if request.Blank(fileName, ref.Entity, ref.EntityID, ref.UserID) {
		response.BadRequest(w, msgMissingEntityFile)
		return
	}
	Remove(w, r, h.svc, h.notifier, ref, fileName)
}

// Remove deletes one stored file and writes the envelope.
func Remove(w http.ResponseWriter, r *http.Request, svc *Service, notifier notify.Notifier, ref Ref, fileName string) {
	if err := svc.Delete(r.Context(), ref, fileName); err != nil {
		notifier.Notify(r, err)
		response.InternalError(w, DeleteErrorMessage(fileName), err)
		return
	}
	response.Success(w, DeletedMessage(fileName))
}

// DeleteAll godoc
//
//	@Summary		Delete all attachments of an entity
//	@Tags			attachments
//	@Produce		json
//	@Param			entity		query		string	true	"Entity type"
//	@Param			entity_id	query		string	true	"Entity id"
//	@Param			user_id		query		string	true	"Owner id"
//	@Success		200			{object}	response.Envelope
//	@Failure		400			{object}	response.Envelope
//	@Failure		500			{object}	response.Envelope
//	@Router			/s3/all [delete]
func (h *Handler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	ref := refFrom(r)
	if request.Blank(ref.Entity, ref.EntityID, ref.UserID) {
		response.BadRequest(w, msgMissingEntity)
		return
	}
	RemoveAll(w, r, h.svc, h.notifier, Ref{Entity: ref.Entity, EntityID: ref.EntityID, UserID: ref.UserID})
}

// RemoveAll deletes every file under ref and writes the envelope.
func RemoveAll(w http.ResponseWriter, r *http.Request, svc *Service, notifier notify.Notifier, ref Ref) {
	n, err := svc.DeleteAll(r.Context(), ref)
	if err != nil {
		notifier.Notify(r, err)
		response.InternalError(w, msgDeleteAllError, err)
		return
	}
	logging.Info("files deleted", "prefix", ref.Prefix(), "count", n)
	response.Success(w, msgDeletedAll)
}

// DeletedMessage is the confirmation for a single-file delete.
func DeletedMessage(fileName string) string {
	return fileName + " deleted successfully."
}

// DeleteErrorMessage is the ERROR message for a failed single-file delete.
func DeleteErrorMessage(fileName string) string {
	return "Error deleting file: " + fileName + ". Please check all parameter values."
}

func openStatus(err error) int {
	if errors.Is(err, storage.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
