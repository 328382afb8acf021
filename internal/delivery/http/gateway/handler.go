package gateway_http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	internalErrors "github.com/tumbleweedd/four_services_system/fulfillment/internal/lib/errors"
	"github.com/tumbleweedd/four_services_system/fulfillment/pkg/logger"
)

type Gateway interface {
	HandleOrder(ctx context.Context, orderID string) (string, error)
	ProcessCallback(ctx context.Context, orderID string) (string, error)
	Verify(ctx context.Context, orderID string) (string, error)
}

type Handler struct {
	log logger.Logger

	gatewayService Gateway
}

func NewHandler(log logger.Logger, gatewayService Gateway) *Handler {
	return &Handler{
		log:            log,
		gatewayService: gatewayService,
	}
}

func (h *Handler) InitRoutes() http.Handler {
	mux := chi.NewRouter()

	mux.Get("/api/order/{orderId}", h.handleOrder)
	// The callback is reachable under both paths: the order service calls
	// /process, the notification consumer calls /api/callback.
	mux.Get("/api/callback/{orderId}", h.processCallback)
	mux.Get("/process/{orderId}", h.processCallback)
	mux.Get("/verify/{orderId}", h.verify)
	mux.Get("/health", h.health)

	return mux
}

func (h *Handler) handleOrder(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.gateway.handleOrder"

	orderID := strings.TrimSpace(chi.URLParam(r, "orderId"))

	response, err := h.gatewayService.HandleOrder(r.Context(), orderID)
	if err != nil {
		h.log.Error(op, slog.String("error", err.Error()))
		http.Error(w, err.Error(), internalErrors.HTTPStatus(err))
		return
	}

	writeText(w, response)
}

func (h *Handler) processCallback(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.gateway.processCallback"

	orderID := chi.URLParam(r, "orderId")

	response, err := h.gatewayService.ProcessCallback(r.Context(), orderID)
	if err != nil {
		h.log.Error(op, slog.String("error", err.Error()))
		http.Error(w, err.Error(), internalErrors.HTTPStatus(err))
		return
	}

	writeText(w, response)
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.gateway.verify"

	orderID := chi.URLParam(r, "orderId")

	response, err := h.gatewayService.Verify(r.Context(), orderID)
	if err != nil {
		h.log.Error(op, slog.String("error", err.Error()))
		http.Error(w, err.Error(), internalErrors.HTTPStatus(err))
		return
	}

	writeText(w, response)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeText(w, "gateway service is running")
}

func writeText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}
