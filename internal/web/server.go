// Package web exposes the HTTP upload endpoint spec.md §6 describes as a
// collaborator external to the core engine: a multipart upload triggers
// one engine run, the resulting report is stashed in the TTL cache, and a
// second request fetches it back by ID. Grounded on go-chi/chi/v5 the way
// hazyhaar-chrc's gateway.Service registers routes onto a chi.Router.
package web

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/stackvity/dataingest/pkg/engine"
	"github.com/stackvity/dataingest/pkg/reportcache"
)

// Server holds the dependencies the upload/report handlers need: an
// engine factory (so every upload gets a fresh Engine over its own
// temporary directory) and the shared report cache.
type Server struct {
	logger      *slog.Logger
	cache       *reportcache.Cache
	engineOpts  engine.Options
	uploadLimit int64
}

// New builds a Server. uploadLimit bounds the size of an accepted
// multipart upload, in bytes.
func New(logger *slog.Logger, cache *reportcache.Cache, engineOpts engine.Options, uploadLimit int64) *Server {
	return &Server{logger: logger, cache: cache, engineOpts: engineOpts, uploadLimit: uploadLimit}
}

// Router builds the chi.Router exposing this server's endpoints.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/reports", func(r chi.Router) {
		r.Post("/", s.handleUpload)
		r.Get("/{id}", s.handleGet)
		r.Get("/{id}/stats", s.handleStats)
	})

	return r
}

// handleUpload implements the "POST /reports" collaborator interface:
// accept one or more structured files, run the engine over them, and
// return the stored report's ID.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.uploadLimit); err != nil {
		http.Error(w, fmt.Sprintf("invalid upload: %v", err), http.StatusBadRequest)
		return
	}
	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		http.Error(w, "no files provided under form field 'files'", http.StatusBadRequest)
		return
	}

	dir, err := os.MkdirTemp("", "dataingest-upload-*")
	if err != nil {
		http.Error(w, "internal error preparing upload", http.StatusInternalServerError)
		return
	}
	defer os.RemoveAll(dir)

	paths := make([]string, 0, len(files))
	for _, fh := range files {
		dstPath, err := saveUploadedFile(dir, fh)
		if err != nil {
			http.Error(w, fmt.Sprintf("saving uploaded file %q: %v", fh.Filename, err), http.StatusBadRequest)
			return
		}
		paths = append(paths, dstPath)
	}

	e := engine.New(s.engineOpts)
	report, err := e.ProcessFiles(r.Context(), paths)
	if err != nil {
		http.Error(w, fmt.Sprintf("processing upload: %v", err), http.StatusUnprocessableEntity)
		return
	}

	id, err := s.cache.Put(report)
	if err != nil {
		http.Error(w, "internal error storing report", http.StatusInternalServerError)
		return
	}

	s.logger.Info("upload processed", slog.String("report_id", id), slog.Int("files", report.TotalFiles))
	writeJSON(w, http.StatusCreated, map[string]string{"report_id": id})
}

// handleGet implements "GET /reports/{id}": return the stored report, or
// 404 on a cache miss (absent or expired).
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	report, ok := s.cache.Get(id)
	if !ok {
		http.Error(w, "report not found or expired", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// handleStats implements a thin wrapper over the TTL cache's stats()
// operation, useful for operational visibility into the cache.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	total, active, expired := s.cache.Stats()
	writeJSON(w, http.StatusOK, map[string]int{"total": total, "active": active, "expired": expired})
}

func saveUploadedFile(dir string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dstPath := filepath.Join(dir, filepath.Base(fh.Filename))
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return dstPath, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
