package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"places2gpx/middleware"
	"places2gpx/services"
	"places2gpx/utils/errors"
)

type ConvertHandler struct {
	cfg services.Config
}

func NewConvertHandler(cfg services.Config) *ConvertHandler {
	return &ConvertHandler{cfg: cfg}
}

// Convert accepts a JSON payload in the request body and responds with the
// rendered GPX document. Query parameters override the resolved config:
// osmand (bool), group-name (string), by-kind (bool).
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	cfg := h.cfg
	q := r.URL.Query()
	if v := q.Get("osmand"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			middleware.WriteError(w, errors.ErrInvalidInput)
			return
		}
		cfg.UseExtensions = b
	}
	if v := q.Get("group-name"); v != "" {
		cfg.GroupName = v
		cfg.GroupByKind = false
	}
	if v := q.Get("by-kind"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			middleware.WriteError(w, errors.ErrInvalidInput)
			return
		}
		cfg.GroupByKind = b
	}
	// Single-group mode without a name falls back to the default label,
	// same as config resolution does.
	if !cfg.GroupByKind && cfg.GroupName == "" {
		cfg.GroupName = services.DefaultGroupName
	}

	var payload any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		middleware.WriteError(w, errors.Wrap(err,
			errors.CodeInvalidInput, "Request body is not valid JSON", http.StatusBadRequest))
		return
	}

	doc, count, err := services.NewConvertService(cfg).Convert(payload)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/gpx+xml; charset=utf-8")
	w.Header().Set("X-Point-Count", strconv.Itoa(count))
	w.Write(doc)
}

// Health reports liveness.
func (h *ConvertHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintln(w, `{"status": "ok"}`)
}
