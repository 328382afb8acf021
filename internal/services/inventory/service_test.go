package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/stretchr/testify/require"

	"github.com/tumbleweedd/four_services_system/fulfillment/internal/clients/mocks"
	"github.com/tumbleweedd/four_services_system/fulfillment/internal/domain/models"
	"github.com/tumbleweedd/four_services_system/fulfillment/pkg/logger"
)

type fakeNotifier struct {
	sent []models.NotificationRequest
	err  error
}

func (f *fakeNotifier) Send(_ context.Context, notification models.NotificationRequest) error {
	if f.err != nil {
		return f.err
	}

	f.sent = append(f.sent, notification)

	return nil
}

func newReservations() *expirable.LRU[string, int] {
	return expirable.NewLRU[string, int](16, nil, time.Minute)
}

func TestCheckInventorySuccess(t *testing.T) {
	log := logger.NewSlogLogger(logger.EnvLocal)
	ctx := context.Background()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	const orderID = "order-42"

	gateway := mocks.NewMockGatewayCallbacker(ctl)
	gateway.EXPECT().Verify(gomock.Any(), orderID).Return("order order-42 verified", nil)

	notifier := &fakeNotifier{}
	reservations := newReservations()

	svc := New(log, gateway, notifier, reservations)

	response, err := svc.CheckInventory(ctx, orderID)
	require.NoError(t, err)
	require.Contains(t, response, orderID)

	stockLevel, ok := reservations.Get(orderID)
	require.True(t, ok)
	require.GreaterOrEqual(t, stockLevel, baseStockLevel)
	require.Less(t, stockLevel, baseStockLevel+50)

	require.Len(t, notifier.sent, 1)
	require.Equal(t, models.NotificationRequest{
		OrderID:          orderID,
		Type:             models.NotificationOrderUpdate,
		Status:           "RESERVED",
		Channel:          models.ChannelEmail,
		CallbackRequired: true,
	}, notifier.sent[0])
}

func TestCheckInventorySideEffectFailuresAreNonFatal(t *testing.T) {
	log := logger.NewSlogLogger(logger.EnvLocal)
	ctx := context.Background()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	const orderID = "order-13"

	gateway := mocks.NewMockGatewayCallbacker(ctl)
	gateway.EXPECT().Verify(gomock.Any(), orderID).Return("", errors.New("gateway unreachable"))

	notifier := &fakeNotifier{err: errors.New("broker down")}

	svc := New(log, gateway, notifier, newReservations())

	response, err := svc.CheckInventory(ctx, orderID)
	require.NoError(t, err)
	require.Contains(t, response, orderID)
}

func TestCheckStockLevelIsDeterministic(t *testing.T) {
	log := logger.NewSlogLogger(logger.EnvLocal)
	ctx := context.Background()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	svc := New(log, mocks.NewMockGatewayCallbacker(ctl), &fakeNotifier{}, newReservations())

	first, err := svc.checkStockLevel(ctx, "abc")
	require.NoError(t, err)

	second, err := svc.checkStockLevel(ctx, "abc")
	require.NoError(t, err)

	require.Equal(t, first, second)
}
