package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модели

// CreateResourceRequest запрос на создание ресурса
type CreateResourceRequest struct {
	UserID    int64            `json:"userId"`
	Kind      string           `json:"kind"`
	Name      string           `json:"name"`
	OpenTime  types.TimeString `json:"openTime"`  // "08:00"
	CloseTime types.TimeString `json:"closeTime"` // "22:00"
	Position  int              `json:"position"`
}

// ToDomainResource конвертирует запрос в domain модель
func (r *CreateResourceRequest) ToDomainResource() *domain.Resource {
	return &domain.Resource{
		Kind:      domain.ResourceKind(r.Kind),
		Name:      r.Name,
		OpenTime:  r.OpenTime,
		CloseTime: r.CloseTime,
		Position:  r.Position,
	}
}

// UpdateResourceRequest запрос на обновление ресурса
// Все поля опциональны - обновляются только переданные значения
type UpdateResourceRequest struct {
	UserID    int64             `json:"userId"`
	Name      *string           `json:"name,omitempty"`
	OpenTime  *types.TimeString `json:"openTime,omitempty"`
	CloseTime *types.TimeString `json:"closeTime,omitempty"`
	Position  *int              `json:"position,omitempty"`
}

// ApplyToResource применяет обновления к ресурсу
func (r *UpdateResourceRequest) ApplyToResource(resource *domain.Resource) {
	if r.Name != nil {
		resource.Name = *r.Name
	}
	if r.OpenTime != nil {
		resource.OpenTime = *r.OpenTime
	}
	if r.CloseTime != nil {
		resource.CloseTime = *r.CloseTime
	}
	if r.Position != nil {
		resource.Position = *r.Position
	}
}

// ListResourcesRequest запрос на получение списка ресурсов
type ListResourcesRequest struct {
	Kind *string `json:"kind,omitempty"`
}

// Response модели

// ColorResponse цвета карточек ресурса
type ColorResponse struct {
	Background string `json:"background"`
	Border     string `json:"border"`
	Text       string `json:"text"`
}

// ResourceResponse ответ с данными ресурса
type ResourceResponse struct {
	ID        int64         `json:"id"`
	Kind      string        `json:"kind"`
	Name      string        `json:"name"`
	OpenTime  string        `json:"openTime"`
	CloseTime string        `json:"closeTime"`
	Position  int           `json:"position"`
	Color     ColorResponse `json:"color"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// ResourceListResponse ответ со списком ресурсов
type ResourceListResponse struct {
	Resources []ResourceResponse `json:"resources"`
}

// Методы конвертации

// FromDomainResource конвертирует domain модель в DTO
func FromDomainResource(r *domain.Resource) *ResourceResponse {
	if r == nil {
		return nil
	}

	color := domain.ColorFor(r.Position)
	return &ResourceResponse{
		ID:        r.ID,
		Kind:      string(r.Kind),
		Name:      r.Name,
		OpenTime:  r.OpenTime.String(),
		CloseTime: r.CloseTime.String(),
		Position:  r.Position,
		Color: ColorResponse{
			Background: color.Background,
			Border:     color.Border,
			Text:       color.Text,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// FromDomainResourceList конвертирует список domain моделей в DTO
func FromDomainResourceList(resources []*domain.Resource) *ResourceListResponse {
	resp := &ResourceListResponse{
		Resources: make([]ResourceResponse, 0, len(resources)),
	}
	for _, r := range resources {
		if dto := FromDomainResource(r); dto != nil {
			resp.Resources = append(resp.Resources, *dto)
		}
	}
	return resp
}
