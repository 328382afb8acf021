package notification_http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tumbleweedd/four_services_system/fulfillment/internal/domain/models"
	internalErrors "github.com/tumbleweedd/four_services_system/fulfillment/internal/lib/errors"
	"github.com/tumbleweedd/four_services_system/fulfillment/pkg/logger"
)

type Notification interface {
	Send(ctx context.Context, notification models.NotificationRequest) (string, error)
	Status(ctx context.Context, orderID string) (string, error)
}

type Handler struct {
	log logger.Logger

	notificationService Notification
}

func NewHandler(log logger.Logger, notificationService Notification) *Handler {
	return &Handler{
		log:                 log,
		notificationService: notificationService,
	}
}

func (h *Handler) InitRoutes() http.Handler {
	mux := chi.NewRouter()

	mux.Post("/notify", h.notify)
	mux.Get("/notifications/{orderId}", h.notificationStatus)
	mux.Get("/health", h.health)

	return mux
}

func (h *Handler) notify(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.notification.notify"

	var request NotifyRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.log.Error(op, slog.String("failed to decode request", err.Error()))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := request.validate(); err != nil {
		h.log.Error(op, slog.String("failed to validate request", err.Error()))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	message, err := h.notificationService.Send(r.Context(), request.toDTO())
	if err != nil {
		h.log.Error(op, slog.String("error", err.Error()))
		http.Error(w, err.Error(), internalErrors.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Notification sent: " + message))
}

func (h *Handler) notificationStatus(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.notification.notificationStatus"

	orderID := chi.URLParam(r, "orderId")

	status, err := h.notificationService.Status(r.Context(), orderID)
	if err != nil {
		h.log.Error(op, slog.String("error", err.Error()))
		http.Error(w, err.Error(), internalErrors.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(fmt.Sprintf("notification status for order %s: %s", orderID, status)))
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("notification service is running"))
}
