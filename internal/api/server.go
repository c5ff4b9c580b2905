package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	_ "github.com/filebox/filebox_api/docs"
	"github.com/filebox/filebox_api/internal/config"
	"github.com/filebox/filebox_api/internal/errlocal"
	"github.com/filebox/filebox_api/internal/filestore"
	"github.com/filebox/filebox_api/internal/logging"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "5000"

	// File transfers may run long, so only the header read is capped.
	readHeaderTimeout = 10 * time.Second
)

type Server struct {
	s         *http.Server
	router    *mux.Router
	fileStore filestore.FileStore
	logger    *logging.Logger
	healthy   bool
}

// @title FileBox API
// @version 1.0
// @description Minimal file-exchange service: upload, list and download files.

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @host 0.0.0.0:5000
// @BasePath /
func NewServer(cfg config.Config, fileStore filestore.FileStore, logger *logging.Logger) *Server {
	host := cfg.Server.Host
	if host == "" {
		host = defaultHost
	}
	port := cfg.Server.Port
	if port == "" {
		port = defaultPort
	}

	r := mux.NewRouter()

	return &Server{
		s: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", host, port),
			Handler:           r,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		router:    r,
		fileStore: fileStore,
		logger:    logger.WithApiTag(),
	}
}

func (s *Server) InitRouter() *mux.Router {
	s.initRouter()
	return s.router
}

func (s *Server) Start() error {
	s.logger.Infof("starting server at %s", s.s.Addr)
	s.initRouter()
	s.healthy = true

	return s.s.ListenAndServe()
}

func (s *Server) Shutdown() error {
	s.logger.Infof("shutting down server at %s", s.s.Addr)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	s.healthy = false

	if err := s.s.Shutdown(ctx); err != nil {
		s.logger.Warnf("graceful shutdown failed, forcing close: %v", err)
		return s.s.Close()
	}

	return nil
}

func (s *Server) WriteResponse(w http.ResponseWriter, r *http.Request, status int, data any) {
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		s.logger.WithContext(r.Context()).WithField("status", status).Info("request processed")
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data == nil {
		data = map[string]string{"status": http.StatusText(status)}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		s.WriteError(w, r, errlocal.NewErrInternal("failed to encode response", err.Error(), nil))
		return
	}

	s.logger.WithContext(r.Context()).WithField("status", status).Info("request processed")
}

func (s *Server) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	var errLocal errlocal.LocalError
	if !errors.As(err, &errLocal) {
		w.WriteHeader(http.StatusInternalServerError)
	} else {
		w.WriteHeader(errLocal.Code())
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if encodeErr := encoder.Encode(err); encodeErr != nil {
		http.Error(w, `{"message":"failed to encode error response"}`, http.StatusInternalServerError)
		return
	}

	s.logger.WithContext(r.Context()).WithError(err).Error("request processed with error")
}

// WriteText sends body verbatim as a plain text response.
func (s *Server) WriteText(w http.ResponseWriter, r *http.Request, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)

	if _, err := w.Write([]byte(body)); err != nil {
		s.logger.WithContext(r.Context()).WithError(err).Error("failed to write response body")
		return
	}

	s.logger.WithContext(r.Context()).WithField("status", status).Info("request processed")
}

// WriteTextError renders err as a plain text response, the body being the
// error's client-facing message.
func (s *Server) WriteTextError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := http.StatusText(http.StatusInternalServerError)

	var errLocal errlocal.LocalError
	if errors.As(err, &errLocal) {
		status = errLocal.Code()
		message = errLocal.Message()
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(message))

	s.logger.WithContext(r.Context()).WithError(err).Error("request processed with error")
}

// HealthCheck godoc
// @Summary Health check
// @Description Check server health
// @Tags health
// @Produce json
// @Success 200 {object} bool "Is server healthy"
// @Failure 500 {object} errlocal.ErrInternal "Internal server error"
// @Router /health [get]
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	s.WriteResponse(w, r, http.StatusOK, s.healthy)
}
