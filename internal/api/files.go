package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/filebox/filebox_api/internal/api/dto"
	"github.com/filebox/filebox_api/internal/errlocal"
	"github.com/filebox/filebox_api/internal/filestore"
)

// UploadFile godoc
// @Summary Upload a file
// @Description Store the "file" field of a multipart form under its filename, replacing any previous file of that name
// @Tags files
// @Accept multipart/form-data
// @Produce plain
// @Param file formData file true "File to upload"
// @Success 200 {string} string "File uploaded successfully"
// @Failure 400 {string} string "No file part"
// @Failure 500 {object} errlocal.ErrInternal "Internal server error"
// @Router /upload [post]
func (s *Server) uploadFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	file, err := dto.FileFromMultipartForm(r)
	if err != nil {
		if errors.Is(err, dto.ErrNoSelectedFile) {
			s.WriteTextError(w, r, errlocal.NewErrBadRequest("No selected file", err.Error(), nil))
			return
		}

		s.WriteTextError(w, r, errlocal.NewErrBadRequest("No file part", err.Error(), nil))
		return
	}

	s.logger.WithContext(ctx).WithField("filename", file.Name).Info("received file")

	if err := s.fileStore.Save(ctx, file); err != nil {
		s.WriteError(w, r, errlocal.NewErrInternal("failed to store file", err.Error(), nil))
		return
	}

	s.WriteText(w, r, http.StatusOK, "File uploaded successfully")
}

// ListFiles godoc
// @Summary List stored files
// @Description Names of all files currently in the store
// @Tags files
// @Produce json
// @Success 200 {object} dto.ListFilesResponse "Stored file names"
// @Failure 500 {object} errlocal.ErrInternal "Internal server error"
// @Router /files [get]
func (s *Server) listFiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	names, err := s.fileStore.List(ctx)
	if err != nil {
		s.WriteError(w, r, errlocal.NewErrInternal("failed to list files", err.Error(), nil))
		return
	}
	if names == nil {
		names = make([]string, 0)
	}

	s.WriteResponse(w, r, http.StatusOK, dto.ListFilesResponse{Files: names})
}

// DownloadFile godoc
// @Summary Download a file
// @Description Stream a stored file back as an attachment
// @Tags files
// @Produce octet-stream
// @Param filename path string true "Name of the stored file"
// @Success 200 {file} binary "File content"
// @Failure 404 {string} string "Not found"
// @Failure 500 {object} errlocal.ErrInternal "Internal server error"
// @Router /files/{filename} [get]
func (s *Server) downloadFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := mux.Vars(r)[filenameTag]

	file, err := s.fileStore.Open(ctx, name)
	if err != nil {
		if errors.Is(err, filestore.ErrFileNotFound) {
			s.logger.WithContext(ctx).WithField("filename", name).Info("requested file not found")
			http.NotFound(w, r)
			return
		}

		s.WriteError(w, r, errlocal.NewErrInternal("failed to open file", err.Error(), nil))
		return
	}
	defer file.Entry.Close()

	filename := filepath.Base(file.Name)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Type", "application/octet-stream")
	if file.Size >= 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(file.Size, 10))
	}

	if _, err := io.Copy(w, file.Entry); err != nil {
		s.logger.WithContext(ctx).WithError(err).Error("failed to stream file")
		return
	}

	s.logger.WithContext(ctx).WithField("status", http.StatusOK).Info("request processed")
}
