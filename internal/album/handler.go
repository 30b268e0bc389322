// Package album exposes the image endpoints of photo albums.
package album

import (
	"net/http"
	"strconv"

	"github.com/xblinx/attachments/internal/attachment"
	"github.com/xblinx/attachments/internal/logging"
	"github.com/xblinx/attachments/internal/notify"
	"github.com/xblinx/attachments/internal/request"
	"github.com/xblinx/attachments/internal/response"
)

// Entity is the key namespace album images are stored under.
const Entity = "album"

const (
	msgMissing     = "Mandatory parameters missing.(album_id/user_id)"
	msgMissingFile = "Mandatory parameters missing.(album_id/user_id/file_name)"
	msgListError   = "File listing error."
)

// Handler holds HTTP handlers for album images.
type Handler struct {
	svc       *attachment.Service
	notifier  notify.Notifier
	maxMemory int64
}

// NewHandler creates a new album Handler.
func NewHandler(svc *attachment.Service, notifier notify.Notifier, maxMemory int64) *Handler {
	return &Handler{svc: svc, notifier: notifier, maxMemory: maxMemory}
}

func refFrom(r *http.Request) attachment.Ref {
	return attachment.Ref{
		Entity:   Entity,
		EntityID: r.FormValue("album_id"),
		UserID:   r.FormValue("user_id"),
	}
}

// UploadImage godoc
//
//	@Summary		Upload album images
//	@Tags			albums
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			album_id	query		string	true	"Album id"
//	@Param			user_id		query		string	true	"Owner id"
//	@Param			file		formData	file	true	"Image(s) to upload"
//	@Success		200			{object}	response.Envelope
//	@Failure		400			{object}	response.Envelope
//	@Failure		500			{object}	response.Envelope
//	@Router			/s3/image [post]
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if !attachment.ParseUpload(w, r, h.notifier, h.maxMemory) {
		return
	}
	ref := refFrom(r)
	if request.Blank(ref.EntityID, ref.UserID) {
		response.BadRequest(w, msgMissing)
		return
	}
	attachment.HandleUpload(w, r, h.svc, h.notifier, ref)
}

// ListImages godoc
//
//	@Summary		List album images
//	@Description	Images of an album, newest first.
//	@Tags			albums
//	@Produce		json
//	@Param			album_id	query		string	true	"Album id"
//	@Param			user_id		query		string	true	"Owner id"
//	@Success		200			{object}	response.Envelope{listMap=[]attachment.Item}
//	@Failure		400			{object}	response.Envelope
//	@Failure		500			{object}	response.Envelope
//	@Router			/s3/image [get]
func (h *Handler) ListImages(w http.ResponseWriter, r *http.Request) {
	ref := refFrom(r)
	if request.Blank(ref.EntityID, ref.UserID) {
		response.BadRequest(w, msgMissing)
		return
	}

	albumID, err := strconv.ParseInt(ref.EntityID, 10, 64)
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

	logging.Debug("listing album images", "album_id", albumID, "count", listing.TotalCount)
	response.OK(w, response.Envelope{
		ListMap:      listing.Items,
		TotalResults: &listing.TotalCount,
		EntityID:     &albumID,
	})
}

// DownloadImage godoc
//
//	@Summary	Download an album image
//	@Tags		albums
//	@Produce	octet-stream
//	@Param		album_id	query		string	true	"Album id"
//	@Param		user_id		query		string	true	"Owner id"
//	@Param		file_name	query		string	true	"File name"
//	@Success	200			{file}		binary
//	@Failure	400			{object}	response.Envelope
//	@Failure	404			{object}	response.Envelope
//	@Failure	500			{object}	response.Envelope
//	@Router		/s3/image/download [get]
func (h *Handler) DownloadImage(w http.ResponseWriter, r *http.Request) {
	ref := refFrom(r)
	fileName := r.FormValue("file_name")
	if request.Blank(ref.EntityID, ref.UserID, fileName) {
		response.BadRequest(w, msgMissingFile)
		return
	}
	attachment.Stream(w, r, h.svc, h.notifier, ref, fileName)
}

// DeleteImage godoc
//
//	@Summary	Delete an album image
//	@Tags		albums
//	@Produce	json
//	@Param		album_id	query		string	true	"Album id"
//	@Param		user_id		query		string	true	"Owner id"
//	@Param		file_name	query		string	true	"File name"
//	@Success	200			{object}	response.Envelope
//	@Failure	400			{object}	response.Envelope
//	@Failure	500			{object}	response.Envelope
//	@Router		/s3/image [delete]
func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	ref := refFrom(r)
	fileName := r.FormValue("file_name")
	if request.Blank(ref.EntityID, ref.UserID, fileName) {
		response.BadRequest(w, msgMissingFile)
		return
	}
	attachment.Remove(w, r, h.svc, h.notifier, ref, fileName)
}

// DeleteAllImages godoc
//
//	@Summary	Delete every image of an album
//	@Tags		albums
//	@Produce	json
//	@Param		album_id	query		string	true	"Album id"
//	@Param		user_id		query		string	true	"Owner id"
//	@Success	200			{object}	response.Envelope
//	@Failure	400			{object}	response.Envelope
//	@Failure	500			{object}	response.Envelope
//	@Router		/s3/image/all [delete]
func (h *Handler) DeleteAllImages(w http.ResponseWriter, r *http.Request) {
	ref := refFrom(r)
	if request.Blank(ref.EntityID, ref.UserID) {
		response.BadRequest(w, msgMissing)
		return
	}
	attachment.RemoveAll(w, r, h.svc, h.notifier, ref)
}
