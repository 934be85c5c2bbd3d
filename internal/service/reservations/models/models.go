package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrInvalidPeriod возвращается, когда конец периода не позже начала
	ErrInvalidPeriod = errors.New("invalid period")
)

// Request модели

// ListReservationsRequest запрос на получение бронирований с фильтрацией
// Все поля кроме UserID опциональны
type ListReservationsRequest struct {
	UserID          int64
	ResourceID      *int64
	From            *time.Time // Начало периода
	To              *time.Time // Конец периода (не включительно)
	Status          *string
	SeriesID        *uuid.UUID
	OnlyMine        bool // Только созданные пользователем
	IncludeInactive bool // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		IncludeInactive: r.IncludeInactive,
		SeriesID:        r.SeriesID,
	}

	if r.ResourceID != nil {
		filter.ResourceIDs = []int64{*r.ResourceID}
	}
	if r.From != nil {
		filter.From = *r.From
	}
	if r.To != nil {
		filter.To = *r.To
	}
	if r.From != nil && r.To != nil && !r.To.After(*r.From) {
		return filter, ErrInvalidPeriod
	}

	if r.OnlyMine {
		userID := r.UserID
		filter.CreatedBy = &userID
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, ok := domain.ParseReservationStatus(*r.Status)
		if !ok {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID              int64      `json:"id"`
	ResourceID      int64      `json:"resourceId"`
	ServiceIDs      []int64    `json:"serviceIds"`
	Date            string     `json:"date"`      // "2025-10-15"
	StartTime       string     `json:"startTime"` // "10:00"
	EndTime         string     `json:"endTime"`   // "11:00"
	Start           time.Time  `json:"start"`
	End             time.Time  `json:"end"`
	DurationMinutes int        `json:"durationMinutes"`
	Status          string     `json:"status"`
	SeriesID        *uuid.UUID `json:"seriesId,omitempty"`

	CustomerName  string  `json:"customerName"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`

	CreatedBy int64     `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// CancelSeriesResponse итог отмены серии
type CancelSeriesResponse struct {
	SeriesID  uuid.UUID `json:"seriesId"`
	Cancelled int       `json:"cancelled"`
	Skipped   int       `json:"skipped"` // Прошедшие и уже завершённые повторения
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:              r.ID,
		ResourceID:      r.ResourceID,
		ServiceIDs:      r.ServiceIDs,
		Date:            r.Start.Format(domain.DateFormat),
		StartTime:       r.Start.Format(domain.TimeFormat),
		EndTime:         r.End.Format(domain.TimeFormat),
		Start:           r.Start,
		End:             r.End,
		DurationMinutes: r.Interval().DurationMinutes(),
		Status:          string(r.Status),
		SeriesID:        r.SeriesID,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		Notes:           r.Notes,
		CreatedBy:       r.CreatedBy,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if dto := FromDomainReservation(r); dto != nil {
			resp.Reservations = append(resp.Reservations, *dto)
		}
	}

	return resp
}
