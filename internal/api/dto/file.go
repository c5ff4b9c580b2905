package dto

import (
	"errors"
	"mime"
	"net/http"

	"github.com/filebox/filebox_api/internal/models"
)

const fileFieldName = "file"

var (
	// ErrNoFilePart reports a request with no usable "file" part: not a
	// multipart form at all, a malformed body, or a form whose parts never
	// include a file upload under that field name.
	ErrNoFilePart = errors.New("no file part")

	// ErrNoSelectedFile reports a "file" part whose filename is empty, which
	// browsers send when the form is submitted without picking a file.
	ErrNoSelectedFile = errors.New("no selected file")
)

// ListFilesResponse is the body of GET /files.
type ListFilesResponse struct {
	Files []string `json:"files"`
}

// FileFromMultipartForm pulls the uploaded file out of the request without
// buffering it. The first "file" part carrying a filename parameter wins and
// its body must be consumed before the request body is closed.
//
// The filename is taken from the Content-Disposition header verbatim; the
// stdlib Part.FileName would strip it down to its base name.
func FileFromMultipartForm(r *http.Request) (*models.File, error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return nil, ErrNoFilePart
	}

	for {
		part, err := reader.NextPart()
		if err != nil {
			return nil, ErrNoFilePart
		}

		if part.FormName() != fileFieldName {
			continue
		}

		_, params, err := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
		if err != nil {
			continue
		}

		// A "file" part without a filename parameter is a plain form value.
		filename, ok := params["filename"]
		if !ok {
			continue
		}
		if filename == "" {
			return nil, ErrNoSelectedFile
		}

		return &models.File{
			Name:  filename,
			Size:  -1,
			Entry: part,
		}, nil
	}
}
