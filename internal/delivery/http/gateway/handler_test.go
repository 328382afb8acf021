package gateway_http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/stretchr/testify/require"

	"github.com/tumbleweedd/four_services_system/fulfillment/internal/clients"
	"github.com/tumbleweedd/four_services_system/fulfillment/internal/clients/mocks"
	inventory_http "github.com/tumbleweedd/four_services_system/fulfillment/internal/delivery/http/inventory"
	order_http "github.com/tumbleweedd/four_services_system/fulfillment/internal/delivery/http/order"
	"github.com/tumbleweedd/four_services_system/fulfillment/internal/domain/models"
	gatewayService "github.com/tumbleweedd/four_services_system/fulfillment/internal/services/gateway"
	inventoryService "github.com/tumbleweedd/four_services_system/fulfillment/internal/services/inventory"
	orderService "github.com/tumbleweedd/four_services_system/fulfillment/internal/services/order"
	"github.com/tumbleweedd/four_services_system/fulfillment/pkg/logger"
)

type capturingPublisher struct {
	published []models.NotificationRequest
}

func (p *capturingPublisher) Publish(_ context.Context, notification models.NotificationRequest) error {
	p.published = append(p.published, notification)
	return nil
}

type noopNotifier struct{}

func (noopNotifier) Send(context.Context, models.NotificationRequest) error { return nil }

// newGatewayServer wires real order and inventory services behind httptest
// servers and a real gateway in front of them, so a request to the gateway
// travels the same HTTP hops it would in production. Only the broker and the
// gateway's own callback endpoints are substituted.
func newGatewayServer(t *testing.T) (*httptest.Server, *capturingPublisher) {
	t.Helper()

	log := logger.NewSlogLogger(logger.EnvLocal)

	ctl := gomock.NewController(t)
	t.Cleanup(ctl.Finish)

	callbacker := mocks.NewMockGatewayCallbacker(ctl)
	callbacker.EXPECT().
		ProcessCallback(gomock.Any(), gomock.Any()).
		Return("callback processed", nil).
		AnyTimes()
	callbacker.EXPECT().
		Verify(gomock.Any(), gomock.Any()).
		Return("verified", nil).
		AnyTimes()

	reservations := expirable.NewLRU[string, int](16, nil, time.Minute)
	inventorySvc := inventoryService.New(log, callbacker, noopNotifier{}, reservations)

	inventoryServer := httptest.NewServer(inventory_http.NewHandler(log, inventorySvc).InitRoutes())
	t.Cleanup(inventoryServer.Close)

	inventoryClient := clients.NewInventoryClient(inventoryServer.URL, 5*time.Second)

	orderSvc := orderService.New(log, inventoryClient, callbacker, &capturingPublisher{})

	orderServer := httptest.NewServer(order_http.NewHandler(log, orderSvc).InitRoutes())
	t.Cleanup(orderServer.Close)

	publisher := &capturingPublisher{}
	processedCallbacks := expirable.NewLRU[string, time.Time](16, nil, time.Minute)

	gatewaySvc := gatewayService.New(
		log,
		clients.NewOrderClient(orderServer.URL, 5*time.Second),
		clients.NewInventoryClient(inventoryServer.URL, 5*time.Second),
		publisher,
		processedCallbacks,
	)

	gatewayServer := httptest.NewServer(NewHandler(log, gatewaySvc).InitRoutes())
	t.Cleanup(gatewayServer.Close)

	return gatewayServer, publisher
}

func TestHandleOrderEndToEnd(t *testing.T) {
	server, publisher := newGatewayServer(t)

	resp, err := http.Get(server.URL + "/api/order/order-42")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "gateway ->")
	require.Contains(t, string(body), "order order-42 processed")
	require.Contains(t, string(body), "inventory: stock available for order order-42")

	require.Len(t, publisher.published, 1)
	require.Equal(t, models.NotificationRequest{
		OrderID:          "order-42",
		Type:             models.NotificationOrderCreated,
		Status:           "CREATED",
		Channel:          models.ChannelEmail,
		CallbackRequired: true,
	}, publisher.published[0])
}

func TestHandleOrderSurfacesDownstreamTimeout(t *testing.T) {
	server, publisher := newGatewayServer(t)

	// The sentinel id fails inside the order service; the 408 must survive
	// both HTTP hops unchanged.
	resp, err := http.Get(server.URL + "/api/order/timeout-order")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	require.Equal(t, http.StatusRequestTimeout, resp.StatusCode)
	require.Contains(t, string(body), "order processing timeout exceeded")
	require.Empty(t, publisher.published)
}

func TestCallbackEndpoints(t *testing.T) {
	server, _ := newGatewayServer(t)

	for _, path := range []string{"/api/callback/order-42", "/process/order-42"} {
		resp, err := http.Get(server.URL + path)
		require.NoError(t, err)

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Contains(t, string(body), "order-42")
	}
}

func TestVerifyEndpoint(t *testing.T) {
	server, _ := newGatewayServer(t)

	resp, err := http.Get(server.URL + "/verify/order-42")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "order-42")
}

func TestHealthEndpoint(t *testing.T) {
	server, _ := newGatewayServer(t)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "gateway service is running", string(body))
}
