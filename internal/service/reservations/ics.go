package reservations

import (
	"context"
	"fmt"
	"strings"

	ical "github.com/arran4/golang-ical"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/reservations/models"
)

const (
	icsProductID = "-//SMC//Scheduling Service//RU"
	icsUIDDomain = "scheduling.smc"
)

// ExportICS выгружает бронирования в формате iCalendar (RFC 5545)
// Фильтрация та же, что и у List
func (s *Service) ExportICS(ctx context.Context, req *models.ListReservationsRequest) (string, error) {
	s.logger.Info("ExportICS: exporting reservations for user=%d, resource=%v", req.UserID, req.ResourceID)

	filter, err := s.filter(req)
	if err != nil {
		return "", err
	}

	reservations, err := s.reservationRepo.ListByResources(ctx, filter)
	if err != nil {
		s.logger.Error("ExportICS: repository error: %v", err)
		return "", fmt.Errorf("%w: ExportICS - repository error: %v", ErrInternal, err)
	}

	// Названия ресурсов для SUMMARY/LOCATION
	names := make(map[int64]string)
	for _, r := range reservations {
		if _, ok := names[r.ResourceID]; ok {
			continue
		}
		resource, err := s.resources.GetByID(ctx, r.ResourceID)
		if err != nil {
			s.logger.Warn("ExportICS: failed to get resource id=%d: %v", r.ResourceID, err)
			names[r.ResourceID] = fmt.Sprintf("resource #%d", r.ResourceID)
			continue
		}
		names[r.ResourceID] = resource.Name
	}

	cal := buildCalendar(reservations, names)

	s.logger.Info("ExportICS: exported %d reservations", len(reservations))
	return cal.Serialize(), nil
}

func buildCalendar(reservations []*domain.Reservation, names map[int64]string) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(icsProductID)

	for _, r := range reservations {
		event := cal.AddEvent(fmt.Sprintf("reservation-%d@%s", r.ID, icsUIDDomain))
		event.SetDtStampTime(r.UpdatedAt.UTC())
		if !r.CreatedAt.IsZero() {
			event.SetCreatedTime(r.CreatedAt.UTC())
		}
		event.SetStartAt(r.Start.UTC())
		event.SetEndAt(r.End.UTC())
		event.SetSummary(summary(r, names[r.ResourceID]))
		event.SetLocation(names[r.ResourceID])
		event.SetProperty(ical.ComponentPropertyStatus, icsStatus(r.Status))
		if r.Notes != nil && *r.Notes != "" {
			event.SetDescription(*r.Notes)
		}
		if r.SeriesID != nil {
			event.SetProperty(ical.ComponentPropertyRelatedTo, r.SeriesID.String())
		}
	}

	return cal
}

func summary(r *domain.Reservation, resourceName string) string {
	parts := make([]string, 0, 2)
	if r.CustomerName != "" {
		parts = append(parts, r.CustomerName)
	}
	if resourceName != "" {
		parts = append(parts, resourceName)
	}
	if len(parts) == 0 {
		return fmt.Sprintf("Reservation #%d", r.ID)
	}
	return strings.Join(parts, " / ")
}

func icsStatus(status domain.ReservationStatus) string {
	switch status {
	case domain.StatusPending:
		return "TENTATIVE"
	case domain.StatusCancelled:
		return "CANCELLED"
	default:
		return "CONFIRMED"
	}
}
