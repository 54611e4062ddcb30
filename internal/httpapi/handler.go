package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/orgball2608/insta-story-player/internal/feed"
	"github.com/orgball2608/insta-story-player/internal/navigator"
	"github.com/orgball2608/insta-story-player/internal/player"
	"github.com/orgball2608/insta-story-player/internal/statestore"
	apperrors "github.com/orgball2608/insta-story-player/pkg/errors"
	"github.com/orgball2608/insta-story-player/pkg/logger"
)

type FeedController interface {
	Snapshot() feed.Snapshot
	LoadNext(ctx context.Context) error
	Refresh(ctx context.Context) error
}

type Sessions interface {
	Open(startIndex int) (string, error)
	Get(id string) (*navigator.Session, bool)
	Do(id, action string) (navigator.SessionSnapshot, error)
}

type Handler struct {
	feed     FeedController
	store    statestore.Store
	sessions Sessions
	logger   logger.Logger
}

func NewHandler(fc FeedController, store statestore.Store, sessions Sessions, log logger.Logger) *Handler {
	return &Handler{
		feed:     fc,
		store:    store,
		sessions: sessions,
		logger:   log.WithComponent("HTTP"),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(recoverer(h.logger))
	r.Use(requestLogger(h.logger))

	r.Get("/healthz", h.health)

	r.Route("/feed", func(r chi.Router) {
		r.Get("/", h.getFeed)
		r.Post("/next", h.loadNext)
		r.Post("/refresh", h.refresh)
	})

	r.Route("/states/{userID}", func(r chi.Router) {
		r.Get("/", h.getState)
		r.Post("/like", h.toggleLike)
	})

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", h.openSession)
		r.Get("/{id}", h.getSession)
		r.Post("/{id}/{action}", h.sessionAction)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		h.logger.Error("Failed to write response", "error", err)
	}
}

func (h *Handler) getFeed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.feed.Snapshot())
}

func (h *Handler) loadNext(w http.ResponseWriter, r *http.Request) {
	h.feedResult(w, h.feed.LoadNext(r.Context()))
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	h.feedResult(w, h.feed.Refresh(r.Context()))
}

func (h *Handler) feedResult(w http.ResponseWriter, err error) {
	if err != nil {
		code := apperrors.GetCode(err)
		if code == "" {
			code = "feed_error"
		}
		writeError(w, http.StatusBadGateway, code, apperrors.GetMessage(err))
		return
	}
	writeJSON(w, http.StatusOK, h.feed.Snapshot())
}

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.store.Get(r.Context(), userID))
}

func (h *Handler) toggleLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	liked := h.store.ToggleLike(r.Context(), userID)
	writeJSON(w, http.StatusOK, map[string]any{"userId": userID, "liked": liked})
}

type openSessionRequest struct {
	StartIndex int `json:"startIndex"`
}

func (h *Handler) openSession(w http.ResponseWriter, r *http.Request) {
	var req openSessionRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
			return
		}
	}

	id, err := h.sessions.Open(req.StartIndex)
	switch {
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	case apperrors.IsServiceUnavailable(err):
		writeError(w, http.StatusServiceUnavailable, "unavailable", err.Error())
		return
	case err != nil:
		h.logger.Error("Failed to open session", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", apperrors.ErrInternalServer.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	session, ok := h.sessions.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", player.ErrSessionNotFound.Error())
		return
	}
	writeJSON(w, http.StatusOK, session.Snapshot())
}

func (h *Handler) sessionAction(w http.ResponseWriter, r *http.Request) {
	snap, err := h.sessions.Do(chi.URLParam(r, "id"), chi.URLParam(r, "action"))
	switch {
	case apperrors.IsNotFound(err):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
	case err != nil:
		h.logger.Error("Session action failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", apperrors.ErrInternalServer.Error())
	default:
		writeJSON(w, http.StatusOK, snap)
	}
}

func userIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "userID must be an integer")
		return 0, false
	}
	return userID, true
}
