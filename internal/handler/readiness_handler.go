package handler

import (
	"net/http"

	"github.com/Lutefd/travel-journal/internal/commons"
	"github.com/Lutefd/travel-journal/internal/service"
)

func HandlerReadiness(w http.ResponseWriter, r *http.Request) {
	commons.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandlerStatus reports the log store flags. It answers 503 until the
// initial load has finished.
func HandlerStatus(logService service.LogServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := logService.Status()
		code := http.StatusOK
		if !status.Ready {
			code = http.StatusServiceUnavailable
		}
		commons.RespondWithJSON(w, code, status)
	}
}
