package order_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	internalErrors "github.com/tumbleweedd/four_services_system/fulfillment/internal/lib/errors"
	"github.com/tumbleweedd/four_services_system/fulfillment/pkg/logger"
)

type Order interface {
	ProcessOrder(ctx context.Context, orderID string) (string, error)
}

type Handler struct {
	log logger.Logger

	orderService Order
}

func NewHandler(log logger.Logger, orderService Order) *Handler {
	return &Handler{
		log:          log,
		orderService: orderService,
	}
}

func (h *Handler) InitRoutes() http.Handler {
	mux := chi.NewRouter()

	mux.Get("/order/{orderId}", h.processOrder)
	mux.Get("/health", h.health)

	return mux
}

func (h *Handler) processOrder(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.order.processOrder"

	orderID := chi.URLParam(r, "orderId")

	response, err := h.orderService.ProcessOrder(r.Context(), orderID)
	if err != nil {
		h.log.Error(op, slog.String("error", err.Error()))
		http.Error(w, err.Error(), internalErrors.HTTPStatus(err))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(response))
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("order service is running"))
}
