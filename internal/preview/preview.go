// Package preview decides how a stored file is shown inline, based on its
// extension, and renders the inline variants.
package preview

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// Kind is the rendering strategy chosen for a file.
type Kind int

const (
	// KindBinary streams the bytes as a forced download.
	KindBinary Kind = iota
	// KindRichText extracts plain text from an RTF document.
	KindRichText
	// KindText returns the file as UTF-8 text.
	KindText
	// KindImage returns the bytes base64 encoded.
	KindImage
	// KindPDF streams the bytes with a PDF content type.
	KindPDF
)

// Inline reports whether the kind is rendered into a JSON payload rather than streamed.
func (k Kind) Inline() bool {
	return k == KindRichText || k == KindText || k == KindImage
}

func (k Kind) String() string {
	switch k {
	case KindRichText:
		return "rtf"
	case KindText:
		return "text"
	case KindImage:
		return "image"
	case KindPDF:
		return "pdf"
	default:
		return "binary"
	}
}

// Result is the preview payload returned to the caller.
type Result struct {
	AttachmentName string `json:"attachmentName"`
	Extension      string `json:"extension"`
	Content        string `json:"content,omitempty"`
	IsImage        bool   `json:"isImage"`
}

// Extension returns everything after the last "." in name. A name without
// a dot is returned whole.
func Extension(name string) string {
	return name[strings.LastIndex(name, ".")+1:]
}

// Classify maps an extension onto a rendering strategy, ignoring case.
func Classify(ext string) Kind {
	switch strings.ToLower(ext) {
	case "rtf":
		return KindRichText
	case "txt":
		return KindText
	case "jpg", "jpeg", "png", "gif":
		return KindImage
	case "pdf":
		return KindPDF
	default:
		return KindBinary
	}
}

// Describe classifies name and returns the payload skeleton for it.
func Describe(name string) (*Result, Kind) {
	ext := Extension(name)
	kind := Classify(ext)
	return &Result{
		AttachmentName: name,
		Extension:      ext,
		IsImage:        kind == KindImage,
	}, kind
}

// Render reads body and fills the content for inline kinds. Streaming kinds
// are returned untouched with IsImage false; the caller copies body itself.
func Render(name string, body io.Reader) (*Result, Kind, error) {
	res, kind := Describe(name)

	switch kind {
	case KindRichText:
		text, err := ExtractRTF(body)
		if err != nil {
			return nil, kind, fmt.Errorf("extract rtf %q: %w", name, err)
		}
		res.Content = text
	case KindText:
		data, err := io.ReadAll(body)
		if err != nil {
			return nil, kind, fmt.Errorf("read text %q: %w", name, err)
		}
		res.Content = string(data)
	case KindImage:
		data, err := io.ReadAll(body)
		if err != nil {
			return nil, kind, fmt.Errorf("read image %q: %w", name, err)
		}
		res.Content = base64.StdEncoding.EncodeToString(data)
	}

	return res, kind, nil
}
