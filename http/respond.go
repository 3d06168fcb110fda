package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"flowfinance/service"
)

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// decodeJSON reads the request body into dst. It writes the error response itself and reports
// whether the handler may continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	// Validar Content-Type
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		writeErrorStatus(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json", "unsupported_media_type")
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Debug().Err(err).Str("path", r.URL.Path).Msg("error decoding request body")
		writeErrorStatus(w, http.StatusBadRequest, "invalid request body", "validation")
		return false
	}
	return true
}

// writeJSON encodes v into a buffer first so a failed encode never leaves a half-written 200.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Error().Err(err).Msg("error encoding response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Warn().Err(err).Msg("error writing response")
	}
}

func writeErrorStatus(w http.ResponseWriter, status int, message, kind string) {
	writeJSON(w, status, errorResponse{Error: message, Kind: kind})
}

// writeError maps a service error to its response. Validation and calculation errors are the
// caller's fault; anything else is hidden behind a 500.
func writeError(w http.ResponseWriter, err error) {
	kind := service.ErrorKind(err)
	if kind == "internal" {
		log.Error().Err(err).Msg("calculation failed")
		writeErrorStatus(w, http.StatusInternalServerError, "internal server error", kind)
		return
	}

	var v *service.ValidationError
	if errors.As(err, &v) {
		writeErrorStatus(w, http.StatusBadRequest, v.Message, kind)
		return
	}
	writeErrorStatus(w, http.StatusBadRequest, err.Error(), kind)
}

// calculate runs the decode, compute, encode cycle shared by every POST endpoint.
func calculate[I, O any](w http.ResponseWriter, r *http.Request, fn func(I) (O, error)) {
	var input I
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := fn(input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
