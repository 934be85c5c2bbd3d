package list_resources

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/resources"
	"github.com/m04kA/SMC-SchedulingService/internal/service/resources/models"
)

const msgInvalidKind = "некорректный тип ресурса, ожидается space или professional"

// ListResourcesQuery query параметры списка ресурсов
type ListResourcesQuery struct {
	Kind *string `query:"kind" validate:"omitempty,oneof=space professional"`
}

type Handler struct {
	service ResourceService
	logger  Logger
}

func NewHandler(service ResourceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources
// Query params: kind (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var query ListResourcesQuery
	if err := handlers.DecodeQuery(r, &query); err != nil {
		h.logger.Warn("GET /resources - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidKind)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListResourcesRequest{Kind: query.Kind})
	if err != nil {
		if errors.Is(err, resources.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidKind)
			return
		}

		h.logger.Error("GET /resources - Failed to list resources: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /resources - Resources retrieved successfully: count=%d", len(result.Resources))
	handlers.RespondJSON(w, http.StatusOK, result)
}
