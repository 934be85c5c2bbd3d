package create_resource

import (
	"github.com/m04kA/SMC-SchedulingService/internal/service/resources/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// CreateResourceRequest HTTP request model
type CreateResourceRequest struct {
	Kind      string `json:"kind" validate:"required,oneof=space professional"`
	Name      string `json:"name" validate:"required,max=100"`
	OpenTime  string `json:"openTime" validate:"required,datetime=15:04"`
	CloseTime string `json:"closeTime" validate:"required,datetime=15:04"`
	Position  int    `json:"position" validate:"gte=0"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateResourceRequest) ToServiceRequest(userID int64) *models.CreateResourceRequest {
	return &models.CreateResourceRequest{
		UserID:    userID,
		Kind:      r.Kind,
		Name:      r.Name,
		OpenTime:  types.TimeString(r.OpenTime),
		CloseTime: types.TimeString(r.CloseTime),
		Position:  r.Position,
	}
}
