package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yurifrl/resultado/pkg/config"
	"github.com/yurifrl/resultado/pkg/extractor"
	"github.com/yurifrl/resultado/pkg/store"
	"github.com/yurifrl/resultado/pkg/workbook"
)

// Server handles HTTP requests for workbook extraction
type Server struct {
	config    *config.Config
	logger    *log.Logger
	mux       *http.ServeMux
	extractor *extractor.Extractor
	store     store.Store
}

// New creates a new HTTP server
func New(cfg *config.Config, logger *log.Logger, st store.Store) *Server {
	return &Server{
		config:    cfg,
		logger:    logger,
		mux:       http.NewServeMux(),
		extractor: extractor.New(logger, cfg.Extraction),
		store:     st,
	}
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	s.setupRoutes()
	return http.ListenAndServe(addr, s.mux)
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/extract", s.withLogging(s.handleExtract))
	s.mux.HandleFunc("/api/records", s.withLogging(s.handleRecords))
	s.mux.HandleFunc("/api/records/", s.withLogging(s.handleRecord))
}

// handleExtract accepts a workbook upload, runs extraction and returns the
// records keyed by year. Records that pass validation are also persisted.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	file, header, err := r.FormFile("workbook")
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "workbook file required", err)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to read file", err)
		return
	}

	wb, err := workbook.OpenBytes(data, header.Filename)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "failed to open workbook", err)
		return
	}

	records := s.extractor.ExtractWorkbook(wb, header.Filename)

	stored := 0
	years := make([]int, 0, len(records))
	for year, rec := range records {
		years = append(years, year)
		if err := store.Validate(rec); err != nil {
			s.logger.Warn("record failed validation", "year", year, "reason", err)
			continue
		}
		if err := s.store.Put(year, rec); err != nil {
			s.respondError(w, r, http.StatusInternalServerError, "failed to store record", err)
			return
		}
		stored++
	}
	sort.Ints(years)

	s.logger.Info("extraction complete", "file", header.Filename, "sheets", len(wb.Sheets), "years", len(records), "stored", stored)

	if err := s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "success",
		"file":      header.Filename,
		"attempted": len(wb.Sheets),
		"extracted": len(records),
		"stored":    stored,
		"years":     years,
		"records":   records,
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

// handleRecords lists the years with stored records.
func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	years, err := s.store.Years()
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to list records", err)
		return
	}

	if err := s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"years":  years,
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

// handleRecord serves the stored record for a single year.
func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	raw := strings.TrimPrefix(r.URL.Path, "/api/records/")
	year, err := strconv.Atoi(raw)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "year required", err)
		return
	}

	rec, err := s.store.Get(year)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.respondError(w, r, http.StatusNotFound, "record not found", nil)
			return
		}
		s.respondError(w, r, http.StatusInternalServerError, "failed to read record", err)
		return
	}

	if err := s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"record": rec,
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

// --- helpers ---

// writeJSON encodes v as JSON with the given status and writes headers.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// respondError logs the error and returns a minimal JSON error body.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		s.logger.Warn("request error", "status", status, "msg", message, "err", err, "method", r.Method, "path", r.URL.Path)
	} else {
		s.logger.Warn("request error", "status", status, "msg", message, "method", r.Method, "path", r.URL.Path)
	}
	_ = s.writeJSON(w, status, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// withLogging wraps a handler to log requests and recover panics.
func (s *Server) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("http request", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered", "panic", rec, "method", r.Method, "path", r.URL.Path)
				s.respondError(w, r, http.StatusInternalServerError, "internal server error", fmt.Errorf("panic: %v", rec))
			}
		}()
		next(w, r)
	}
}
