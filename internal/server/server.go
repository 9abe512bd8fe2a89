// Package server serves the salary form as an HTML page and recomputes
// estimates over a JSON API.
package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iwvelando/salary-calculator/internal/form"
	"github.com/iwvelando/salary-calculator/internal/salary"
	"github.com/iwvelando/salary-calculator/pkg/constants"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

//go:embed templates/*.html
var templateFiles embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFiles, "templates/index.html"))

type handler struct {
	logger      *zap.Logger
	defaults    salary.Input
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the web UI and calculation API.
// Every request starts a fresh form from defaults.
func NewHandler(logger *zap.Logger, defaults salary.Input, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, defaults: defaults, maxBodySize: maxBodySize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Recompute endpoint used on every field change
	mux.HandleFunc("/api/calculate", h.handleCalculate)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (page script and styles)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(sub))))

	// Server-rendered form
	mux.HandleFunc("/", h.handleIndex)

	return mux
}

type calculateRequest struct {
	Fields map[string]string `json:"fields"`
}

type calculateResponse struct {
	form.View
	InputErrors []string `json:"inputErrors,omitempty"`
	Duration    string   `json:"duration"`
}

type pageData struct {
	View        form.View
	InputErrors []string
	Version     string
}

func (h *handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	session := form.New(h.defaults)
	inputErrors := splitErrors(session.Apply(queryFields(r.URL.Query())))

	var buf bytes.Buffer
	data := pageData{View: session.View(), InputErrors: inputErrors, Version: h.version}
	if err := pageTemplate.Execute(&buf, data); err != nil {
		h.logger.Error("failed to render page",
			zap.String("op", "server.handleIndex"),
			zap.Error(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write page",
			zap.String("op", "server.handleIndex"),
			zap.Error(err),
		)
	}
}

// queryFields picks the known field paths out of a query string; other
// parameters are ignored.
func queryFields(values url.Values) map[string]string {
	raw := make(map[string]string)
	for _, f := range salary.Fields() {
		if _, ok := values[f.Path]; ok {
			raw[f.Path] = values.Get(f.Path)
		}
	}
	return raw
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculate"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var payload calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	session := form.New(h.defaults)
	err := session.Apply(payload.Fields)
	if errors.Is(err, form.ErrUnknownField) {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	elapsed := time.Since(start)
	response := calculateResponse{
		View:        session.View(),
		InputErrors: splitErrors(err),
		Duration:    elapsed.String(),
	}

	h.logger.Debug("salary estimate computed",
		zap.String("op", op),
		zap.Int("fields", len(payload.Fields)),
		zap.Int("messages", len(response.Messages)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// splitErrors unpacks a joined error into one message per failure.
func splitErrors(err error) []string {
	if err == nil {
		return nil
	}
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		messages := make([]string, 0, len(joined.Unwrap()))
		for _, e := range joined.Unwrap() {
			messages = append(messages, e.Error())
		}
		return messages
	}
	return []string{err.Error()}
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("calculation request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
