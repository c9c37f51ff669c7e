package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/catchup-chat/catchup/internal/chat"
	"github.com/catchup-chat/catchup/internal/tools"
)

// CredentialSource reports whether usable credentials are on hand.
type CredentialSource interface {
	Token() (string, error)
}

// UpstreamPinger is the minimal slice of the workspace API the health
// check probes.
type UpstreamPinger interface {
	ListSpaces(ctx context.Context, pageSize int, pageToken string) (*chat.ListSpacesResponse, error)
}

// Handler contains shared dependencies for all HTTP handlers.
type Handler struct {
	svc      *tools.Service
	creds    CredentialSource
	upstream UpstreamPinger
	logger   zerolog.Logger
}

// NewHandler creates a new Handler with the given dependencies.
func NewHandler(svc *tools.Service, creds CredentialSource, upstream UpstreamPinger, logger zerolog.Logger) *Handler {
	return &Handler{svc: svc, creds: creds, upstream: upstream, logger: logger}
}

// JSON sends a JSON response with the given status code.
func (h *Handler) JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Error sends a JSON error response with the given status code.
func (h *Handler) Error(w http.ResponseWriter, status int, message string) {
	h.JSON(w, status, map[string]string{"error": message})
}

// decode parses the JSON request body into dst. An empty body is allowed;
// every option then takes its default.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		h.Error(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
