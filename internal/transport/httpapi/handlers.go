package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/sandevgo/auralis/internal/core"
	"github.com/sandevgo/auralis/internal/service/chat"
	"github.com/sandevgo/auralis/internal/service/profile"
	"github.com/sandevgo/auralis/pkg/log"
)

type ProfileSource interface {
	Load(ctx context.Context) (profile.Profile, error)
	Segments(ctx context.Context) (profile.Segments, error)
}

type chatRequest struct {
	SessionID string `json:"session_id" validate:"omitempty,max=128"`
	Message   string `json:"message" validate:"required,max=4000"`
}

type chatResponse struct {
	SessionID string           `json:"session_id"`
	Message   core.ChatMessage `json:"message"`
}

type transcriptResponse struct {
	SessionID string             `json:"session_id"`
	State     chat.State         `json:"state"`
	Messages  []core.ChatMessage `json:"messages"`
}

type handler struct {
	sessions *chat.Registry
	profiles ProfileSource
	validate *validator.Validate
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"version":  core.AppVersion,
		"sessions": h.sessions.Len(),
	})
}

func (h *handler) postChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, errTooLarge)
			return
		}
		writeError(w, errBadRequest)
		return
	}

	// Rejected input never reaches the registry.
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(w, errEmpty)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, errInvalid)
		return
	}

	ctx := log.WithFields(r.Context(), map[string]any{"transport": "http"})
	session := h.sessions.Get(req.SessionID)
	msg, err := session.Submit(ctx, req.Message)
	switch {
	case errors.Is(err, chat.ErrEmptyInput):
		writeError(w, errEmpty)
		return
	case errors.Is(err, chat.ErrBusy):
		writeError(w, errBusy)
		return
	case err != nil:
		log.FromCtx(ctx).Error().Err(err).Msg("chat submit failed")
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, chatResponse{SessionID: session.ID(), Message: msg})
}

func (h *handler) getChat(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	session, ok := h.sessions.Lookup(id)
	if !ok {
		writeError(w, errNotFound)
		return
	}

	writeData(w, http.StatusOK, transcriptResponse{
		SessionID: session.ID(),
		State:     session.State(),
		Messages:  session.Transcript(),
	})
}

func (h *handler) getProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.profiles.Load(r.Context())
	if err != nil {
		log.FromCtx(r.Context()).Warn().Err(err).Msg("profile loaded partially")
		writeJSON(w, http.StatusOK, response{Data: p, Message: "some profile parts could not be loaded"})
		return
	}
	writeData(w, http.StatusOK, p)
}

func (h *handler) getSegments(w http.ResponseWriter, r *http.Request) {
	s, err := h.profiles.Segments(r.Context())
	if err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("failed to load memory segments")
		writeError(w, errUpstream)
		return
	}
	writeData(w, http.StatusOK, s)
}
