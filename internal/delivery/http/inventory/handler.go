package inventory_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	internalErrors "github.com/tumbleweedd/four_services_system/fulfillment/internal/lib/errors"
	"github.com/tumbleweedd/four_services_system/fulfillment/pkg/logger"
)

type Inventory interface {
	CheckInventory(ctx context.Context, orderID string) (string, error)
}

type Handler struct {
	log logger.Logger

	inventoryService Inventory
}

func NewHandler(log logger.Logger, inventoryService Inventory) *Handler {
	return &Handler{
		log:              log,
		inventoryService: inventoryService,
	}
}

func (h *Handler) InitRoutes() http.Handler {
	mux := chi.NewRouter()

	mux.Get("/inventory/{orderId}", h.checkInventory)
	mux.Get("/health", h.health)

	return mux
}

func (h *Handler) checkInventory(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.inventory.checkInventory"

	orderID := chi.URLParam(r, "orderId")

	response, err := h.inventoryService.CheckInventory(r.Context(), orderID)
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
	_, _ = w.Write([]byte("inventory service is running"))
}
