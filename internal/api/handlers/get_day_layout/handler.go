package get_day_layout

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	getDayLayout "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_day_layout"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgResourceNotFound  = "ресурс не найден"
)

type Handler struct {
	useCase  GetDayLayoutUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetDayLayoutUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/layout
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID, err := handlers.PathInt64(r, "resourceId")
	if err != nil {
		h.logger.Warn("GET /resources/{id}/layout - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	var query LayoutQuery
	if err := handlers.DecodeQuery(r, &query); err != nil {
		h.logger.Warn("GET /resources/{id}/layout - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	useCaseReq, err := query.ToUseCaseRequest(resourceID, h.location)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/layout - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDayLayout.ErrResourceNotFound):
			h.logger.Warn("GET /resources/{id}/layout - Resource not found: resource_id=%d", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, getDayLayout.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /resources/{id}/layout - Failed to build layout: resource_id=%d, error=%v", resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{id}/layout - Layout built: resource_id=%d, date=%s, cards=%d",
		resourceID, query.Date, len(result.Cards))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
