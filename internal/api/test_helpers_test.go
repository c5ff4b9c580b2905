package api

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/filebox/filebox_api/internal/config"
	filestoremocks "github.com/filebox/filebox_api/internal/filestore/mocks"
	"github.com/filebox/filebox_api/internal/logging"
)

func newTestServer(t *testing.T) (*Server, *filestoremocks.FileStore) {
	t.Helper()

	fileStore := filestoremocks.NewFileStore(t)
	cfg := config.Config{Log: config.LogConfig{Level: "error", Format: "text"}}
	logger := logging.NewLogger(cfg)

	srv := &Server{
		s:         &http.Server{},
		router:    mux.NewRouter(),
		fileStore: fileStore,
		logger:    logger,
	}

	return srv, fileStore
}

// multipartFormData holds the created multipart form data
type multipartFormData struct {
	body        io.Reader
	contentType string
}

// createMultipartFormWithFile creates a multipart form with a "file" field
func createMultipartFormWithFile(t *testing.T, filename string, data []byte) multipartFormData {
	t.Helper()
	return createMultipartFormWithField(t, "file", filename, "application/octet-stream", data)
}

// createMultipartFormWithField creates a multipart form with a custom field name
func createMultipartFormWithField(t *testing.T, fieldName, filename, contentType string, data []byte) multipartFormData {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreatePart(map[string][]string{
		"Content-Disposition": {`form-data; name="` + fieldName + `"; filename="` + filename + `"`},
		"Content-Type":        {contentType},
	})
	require.NoError(t, err)

	_, err = part.Write(data)
	require.NoError(t, err)

	err = writer.Close()
	require.NoError(t, err)

	return multipartFormData{
		body:        body,
		contentType: writer.FormDataContentType(),
	}
}
