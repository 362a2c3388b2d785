package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/bnema/pagerec/internal/adapter/http/validation"
	"github.com/bnema/pagerec/internal/adapter/http/views"
	"github.com/bnema/pagerec/internal/domain"
	"github.com/bnema/pagerec/internal/infrastructure/logger"
	"github.com/bnema/pagerec/internal/port"
	"github.com/bnema/pagerec/internal/service"
)

const (
	msgNotFound      = "Recording not found."
	msgRouteNotFound = "Route not found."

	maxBodyBytes = 64 << 10
)

type RecorderService interface {
	Start(ctx context.Context, url string, id int64) (*service.StartResult, error)
	Stop(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64)
}

type pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	recorder RecorderService
	store    port.RecordingStore
	encoder  port.Encoder
}

func NewHandlers(recorder RecorderService, store port.RecordingStore, encoder port.Encoder) *Handlers {
	return &Handlers{
		recorder: recorder,
		store:    store,
		encoder:  encoder,
	}
}

type messageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	return dec.Decode(v)
}

// startStatus maps a start failure to an HTTP status.
func startStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrDuplicateURL), errors.Is(err, domain.ErrDuplicateID):
		return http.StatusConflict
	case errors.Is(err, domain.ErrEncoderUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrNavigationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handlers) Start() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req validation.StartRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, validation.ErrURLAndIDRequired.Error())
			return
		}

		id, err := req.Validate()
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		result, err := h.recorder.Start(r.Context(), req.URL, id)
		if err != nil {
			logger.Error.Printf("start recording %d: %v", id, err)
			writeError(w, startStatus(err), err.Error())
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func (h *Handlers) Status() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validation.ParseID(r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		rec, err := h.store.Get(r.Context(), id)
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgNotFound)
			return
		}
		if err != nil {
			logger.Error.Printf("status %d: %v", id, err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, rec)
	}
}

func (h *Handlers) Stop() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req validation.StopRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, validation.ErrIDRequired.Error())
			return
		}

		id, err := req.Validate()
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := h.recorder.Stop(r.Context(), id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeError(w, http.StatusNotFound, msgNotFound)
				return
			}
			logger.Error.Printf("stop recording %d: %v", id, err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, messageResponse{Message: service.MessageStopped, ID: id})
	}
}

func (h *Handlers) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validation.ParseID(r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		h.recorder.Delete(r.Context(), id)
		writeJSON(w, http.StatusOK, messageResponse{Message: service.MessageDeleted, ID: id})
	}
}

func (h *Handlers) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := h.store.ListAll(r.Context())
		if err != nil {
			logger.Error.Printf("list recordings: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if recs == nil {
			recs = []*domain.Recording{}
		}
		writeJSON(w, http.StatusOK, recs)
	}
}

func (h *Handlers) Dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := h.store.ListAll(r.Context())
		if err != nil {
			logger.Error.Printf("dashboard list error: %v", err)
			recs = []*domain.Recording{}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = views.Dashboard(recs).Render(r.Context(), w)
	}
}

type healthResponse struct {
	Status  string `json:"status"`
	Store   string `json:"store"`
	Encoder string `json:"encoder"`
}

func (h *Handlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok", Store: "ok", Encoder: "ok"}
		code := http.StatusOK

		if p, ok := h.store.(pinger); ok {
			if err := p.Ping(ctx); err != nil {
				logger.Error.Printf("health: store: %v", err)
				resp.Status, resp.Store, code = "degraded", err.Error(), http.StatusServiceUnavailable
			}
		}
		if err := h.encoder.CheckAvailable(ctx); err != nil {
			logger.Warn.Printf("health: encoder: %v", err)
			resp.Status, resp.Encoder, code = "degraded", service.EncoderRemediation, http.StatusServiceUnavailable
		}

		writeJSON(w, code, resp)
	}
}

func NotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, msgRouteNotFound)
	}
}
