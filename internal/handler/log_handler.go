package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Lutefd/travel-journal/internal/commons"
	api_middleware "github.com/Lutefd/travel-journal/internal/middleware"
	"github.com/Lutefd/travel-journal/internal/model"
	"github.com/Lutefd/travel-journal/internal/service"
	"github.com/go-chi/chi/v5"
)

type LogHandler struct {
	logService service.LogServiceInterface
}

func NewLogHandler(logService service.LogServiceInterface) *LogHandler {
	return &LogHandler{
		logService: logService,
	}
}

type logDetail struct {
	model.Log
	FormattedDate string `json:"formattedDate"`
}

func (h *LogHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	logs := model.FilterLogs(h.logService.Logs(), r.URL.Query().Get("q"))
	commons.RespondWithJSON(w, http.StatusOK, logs)
}

func (h *LogHandler) MyLogs(w http.ResponseWriter, r *http.Request) {
	userID := api_middleware.UserIDFromContext(r.Context())
	if userID == "" {
		commons.RespondWithError(w, http.StatusUnauthorized, "no user id provided")
		return
	}
	commons.RespondWithJSON(w, http.StatusOK, h.logService.GetByUser(userID))
}

func (h *LogHandler) UserLogs(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, "userID"))
	if userID == "" {
		commons.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	commons.RespondWithJSON(w, http.StatusOK, h.logService.GetByUser(userID))
}

func (h *LogHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	l, ok := h.logService.GetByID(id)
	if !ok {
		commons.RespondWithError(w, http.StatusNotFound, "Log not found")
		return
	}

	commons.RespondWithJSON(w, http.StatusOK, logDetail{Log: l, FormattedDate: model.FormatDate(l.Date)})
}

func (h *LogHandler) AddLog(w http.ResponseWriter, r *http.Request) {
	var entry model.NewLog
	if err := decodeBody(w, r, &entry); err != nil {
		commons.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if strings.TrimSpace(entry.UserID) == "" {
		entry.UserID = api_middleware.UserIDFromContext(r.Context())
	}

	id, err := h.logService.Add(r.Context(), entry)
	if err != nil {
		respondWithServiceError(w, err, "Failed to add log")
		return
	}

	commons.RespondWithJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *LogHandler) UpdateLog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch model.LogPatch
	if err := decodeBody(w, r, &patch); err != nil {
		commons.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.logService.Update(r.Context(), id, patch); err != nil {
		respondWithServiceError(w, err, "Failed to update log")
		return
	}

	commons.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Log updated successfully"})
}

func (h *LogHandler) DeleteLog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.logService.Delete(r.Context(), id); err != nil {
		respondWithServiceError(w, err, "Failed to delete log")
		return
	}

	commons.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Log deleted successfully"})
}

func (h *LogHandler) RefreshLogs(w http.ResponseWriter, r *http.Request) {
	if err := h.logService.Refresh(r.Context()); err != nil {
		respondWithServiceError(w, err, "Failed to refresh logs")
		return
	}

	commons.RespondWithJSON(w, http.StatusOK, h.logService.Status())
}

func (h *LogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	commons.RespondWithJSON(w, http.StatusOK, model.TravelCategories())
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, commons.MaxRequestBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

func respondWithServiceError(w http.ResponseWriter, err error, failMsg string) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		commons.RespondWithJSON(w, http.StatusBadRequest, map[string]string{
			"error": verr.Message,
			"field": verr.Field,
		})
	case errors.Is(err, model.ErrValidation):
		commons.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrLogNotFound):
		commons.RespondWithError(w, http.StatusNotFound, "Log not found")
	default:
		commons.RespondWithError(w, http.StatusInternalServerError, failMsg)
	}
}
