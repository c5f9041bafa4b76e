package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/syazwaniiiii/hr-management-system/internal/domain"
)

func (h *Handler) logInternalServerError(r *http.Request, err error) {
	slog.Error("internal server error", "method", r.Method, "path", r.URL.Path, "error", err)
}

func (h *Handler) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logInternalServerError(r, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, msg string) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: false,
		Message: msg,
		Data:    nil,
	})
}

func (h *Handler) successResponse(w http.ResponseWriter, r *http.Request, msg string, data any) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: true,
		Message: msg,
		Data:    data,
	})
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	h.writeJSON(w, r, http.StatusBadRequest, map[string]any{"error": msg})
}

// validationFailed answers 422 with the failing fields named, whether the
// rejection came from struct tags or from the service.
func (h *Handler) validationFailed(w http.ResponseWriter, r *http.Request, err error) {
	fields := map[string]string{}

	var validationErrors validator.ValidationErrors
	var fieldErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErrors):
		for _, fe := range validationErrors {
			fields[fe.Field()] = fe.Translate(h.translator)
		}
	case errors.As(err, &fieldErr):
		fields[fieldErr.Field] = fieldErr.Message
	default:
		h.badRequest(w, r, err.Error())
		return
	}

	h.writeJSON(w, r, http.StatusUnprocessableEntity, map[string]any{
		"success": false,
		"errors":  fields,
	})
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logInternalServerError(r, err)
	h.writeJSON(w, r, http.StatusInternalServerError, map[string]any{"error": "internal server error"})
}

// scheduleError maps a service failure onto the wire contract: validation
// failures are the client's problem, everything else is a storage failure and
// surfaces as a 500.
func (h *Handler) scheduleError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErr *domain.ValidationError
	if errors.As(err, &fieldErr) {
		h.validationFailed(w, r, err)
		return
	}
	h.internalServerError(w, r, err)
}
