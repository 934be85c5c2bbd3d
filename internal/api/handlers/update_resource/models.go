package update_resource

import (
	"github.com/m04kA/SMC-SchedulingService/internal/service/resources/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// UpdateResourceRequest HTTP request model
// Все поля опциональны
type UpdateResourceRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	OpenTime  *string `json:"openTime,omitempty" validate:"omitempty,datetime=15:04"`
	CloseTime *string `json:"closeTime,omitempty" validate:"omitempty,datetime=15:04"`
	Position  *int    `json:"position,omitempty" validate:"omitempty,gte=0"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateResourceRequest) ToServiceRequest(userID int64) *models.UpdateResourceRequest {
	req := &models.UpdateResourceRequest{
		UserID:   userID,
		Name:     r.Name,
		Position: r.Position,
	}
	if r.OpenTime != nil {
		open := types.TimeString(*r.OpenTime)
		req.OpenTime = &open
	}
	if r.CloseTime != nil {
		closeTime := types.TimeString(*r.CloseTime)
		req.CloseTime = &closeTime
	}
	return req
}
