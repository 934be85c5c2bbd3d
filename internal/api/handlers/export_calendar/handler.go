package export_calendar

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/reservations"
	"github.com/m04kA/SMC-SchedulingService/internal/service/reservations/models"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgInvalidParams     = "некорректные параметры запроса"

	// defaultPeriodDays период выгрузки, если from/to не указаны
	defaultPeriodDays = 30
)

// CalendarQuery query параметры выгрузки, даты YYYY-MM-DD, to включительно
type CalendarQuery struct {
	From string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

type Handler struct {
	service  ReservationService
	location *time.Location
	now      func() time.Time
	logger   Logger
}

func NewHandler(service ReservationService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		now:      time.Now,
		logger:   logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/calendar.ics
// Query params: from, to (опционально, по умолчанию 30 дней от сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID, err := handlers.PathInt64(r, "resourceId")
	if err != nil {
		h.logger.Warn("GET /resources/{id}/calendar.ics - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	var query CalendarQuery
	if err := handlers.DecodeQuery(r, &query); err != nil {
		h.logger.Warn("GET /resources/{id}/calendar.ics - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	from, to, err := h.period(query)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/calendar.ics - Invalid period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	body, err := h.service.ExportICS(r.Context(), &models.ListReservationsRequest{
		ResourceID: &resourceID,
		From:       &from,
		To:         &to,
	})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /resources/{id}/calendar.ics - Failed to export: resource_id=%d, error=%v", resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{id}/calendar.ics - Calendar exported: resource_id=%d", resourceID)
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=\"resource-%d.ics\"", resourceID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

func (h *Handler) period(q CalendarQuery) (time.Time, time.Time, error) {
	from := domain.StartOfDay(h.now().In(h.location))
	if q.From != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, q.From, h.location)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}

	to := from.AddDate(0, 0, defaultPeriodDays)
	if q.To != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, q.To, h.location)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed.AddDate(0, 0, 1)
	}

	return from, to, nil
}
