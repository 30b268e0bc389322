package attachment

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"

	"github.com/gabriel-vasile/mimetype"
)

// genericContentType is what browsers send when they do not know the type.
const genericContentType = "application/octet-stream"

// FromMultipart opens a multipart file part as an Upload. When the part has
// no useful content type the first bytes are sniffed instead.
func FromMultipart(fh *multipart.FileHeader) (Upload, io.Closer, error) {
	f, err := fh.Open()
	if err != nil {
		return Upload{}, nil, fmt.Errorf("open part %q: %w", fh.Filename, err)
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == genericContentType {
		mtype, err := mimetype.DetectReader(f)
		if err != nil {
			f.Close()
			return Upload{}, nil, fmt.Errorf("detect content type of %q: %w", fh.Filename, err)
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			f.Close()
			return Upload{}, nil, fmt.Errorf("rewind part %q: %w", fh.Filename, err)
		}
		contentType = mtype.String()
	}

	return Upload{
		Name:        fh.Filename,
		ContentType: contentType,
		Size:        fh.Size,
		Body:        f,
	}, f, nil
}

// MultipartFiles returns every file part of a parsed multipart request,
// ordered by form field name.
func MultipartFiles(r *http.Request) []*multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	fields := make([]string, 0, len(r.MultipartForm.File))
	for field := range r.MultipartForm.File {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var files []*multipart.FileHeader
	for _, field := range fields {
		files = append(files, r.MultipartForm.File[field]...)
	}
	return files
}
