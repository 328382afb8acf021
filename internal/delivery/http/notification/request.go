package notification_http

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/tumbleweedd/four_services_system/fulfillment/internal/domain/models"
)

var errEmptyOrderID = errors.New("order id is required")

var requestValidator = validator.New()

// NotifyRequest mirrors the queue message schema. Only orderId is mandatory;
// unknown types and channels pass through so publishers can evolve first.
type NotifyRequest struct {
	OrderID          string `json:"orderId" validate:"required"`
	Type             string `json:"type"`
	Status           string `json:"status"`
	Channel          string `json:"channel"`
	CallbackRequired bool   `json:"callbackRequired"`
}

func (req *NotifyRequest) validate() error {
	if err := requestValidator.Struct(req); err != nil {
		return errEmptyOrderID
	}

	return nil
}

func (req *NotifyRequest) toDTO() models.NotificationRequest {
	return models.NotificationRequest{
		OrderID:          req.OrderID,
		Type:             req.Type,
		Status:           req.Status,
		Channel:          req.Channel,
		CallbackRequired: req.CallbackRequired,
	}
}
