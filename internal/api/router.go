package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/filebox/filebox_api/docs"
)

const filenameTag = "filename"

func (s *Server) initRouter() {
	s.router.StrictSlash(true)
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			s.setCORSHeaders(w, r)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	})

	s.router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	s.router.Use(mux.CORSMethodMiddleware(s.router), s.commonMiddleware)
	s.router.HandleFunc("/health", s.healthCheck).Methods(http.MethodGet)
	s.router.HandleFunc("/upload", s.uploadFile).Methods(http.MethodPost)
	s.router.HandleFunc("/files", s.listFiles).Methods(http.MethodGet)
	// The filename may span several path segments, so greedy matching is used.
	s.router.HandleFunc(fmt.Sprintf("/files/{%s:.+}", filenameTag), s.downloadFile).Methods(http.MethodGet)
}
