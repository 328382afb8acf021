package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/tumbleweedd/four_services_system/fulfillment/internal/clients/mocks"
	"github.com/tumbleweedd/four_services_system/fulfillment/internal/domain/models"
	internalErrors "github.com/tumbleweedd/four_services_system/fulfillment/internal/lib/errors"
	"github.com/tumbleweedd/four_services_system/fulfillment/internal/repository/audit"
	"github.com/tumbleweedd/four_services_system/fulfillment/pkg/logger"
)

type fakeAudit struct {
	rows []string
	err  error
}

func (f *fakeAudit) Insert(_ context.Context, _ models.NotificationRequest, message string) error {
	if f.err != nil {
		return f.err
	}

	f.rows = append(f.rows, message)

	return nil
}

func TestPersonalizeMessageIsTotal(t *testing.T) {
	tCases := []struct {
		name     string
		template string
		request  models.NotificationRequest
		expected string
	}{
		{
			name:     "default_template",
			template: messageTemplate,
			request:  models.NotificationRequest{OrderID: "X", Status: "Y"},
			expected: "Dear Customer, your order X is Y",
		},
		{
			name:     "repeated_placeholders",
			template: "{{orderId}} {{status}} {{orderId}}",
			request:  models.NotificationRequest{OrderID: "order-1", Status: "DONE"},
			expected: "order-1 DONE order-1",
		},
		{
			name:     "empty_status",
			template: messageTemplate,
			request:  models.NotificationRequest{OrderID: "order-2"},
			expected: "Dear Customer, your order order-2 is ",
		},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			message := personalizeMessage(tCase.template, tCase.request)
			require.Equal(t, tCase.expected, message)
			require.NotContains(t, message, "{{orderId}}")
			require.NotContains(t, message, "{{status}}")
		})
	}
}

func TestSendEmptyOrderIDFailsBeforeAnyWork(t *testing.T) {
	log := logger.NewSlogLogger(logger.EnvLocal)
	ctx := context.Background()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// No expectations on the gateway: validation rejects the request first.
	svc := New(log, mocks.NewMockGatewayCallbacker(ctl), &fakeAudit{})

	_, err := svc.Send(ctx, models.NotificationRequest{Type: models.NotificationOrderUpdate})
	require.Error(t, err)
	require.ErrorIs(t, err, internalErrors.ErrInvalidArgument)
}

func TestSendTriggersCallbackExactlyOnce(t *testing.T) {
	log := logger.NewSlogLogger(logger.EnvLocal)
	ctx := context.Background()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	request := models.NotificationRequest{
		OrderID:          "order-42",
		Type:             models.NotificationOrderUpdate,
		Status:           "RESERVED",
		Channel:          models.ChannelEmail,
		CallbackRequired: true,
	}

	gateway := mocks.NewMockGatewayCallbacker(ctl)
	gateway.EXPECT().
		ProcessCallback(gomock.Any(), "order-42").
		Return("callback processed for order order-42", nil).
		Times(1)

	auditStore := &fakeAudit{}

	svc := New(log, gateway, auditStore)

	message, err := svc.Send(ctx, request)
	require.NoError(t, err)
	require.Equal(t, "Dear Customer, your order order-42 is RESERVED", message)
	require.Equal(t, []string{message}, auditStore.rows)
}

func TestSendWithoutCallbackRequired(t *testing.T) {
	log := logger.NewSlogLogger(logger.EnvLocal)
	ctx := context.Background()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	request := models.NotificationRequest{
		OrderID: "order-42",
		Type:    models.NotificationOrderProcessed,
		Status:  "PROCESSED",
		Channel: models.ChannelSMS,
	}

	// No ProcessCallback expectation: callbackRequired=false means zero
	// callback attempts.
	svc := New(log, mocks.NewMockGatewayCallbacker(ctl), &fakeAudit{})

	_, err := svc.Send(ctx, request)
	require.NoError(t, err)
}

func TestSendSideEffectFailuresAreNonFatal(t *testing.T) {
	log := logger.NewSlogLogger(logger.EnvLocal)
	ctx := context.Background()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	request := models.NotificationRequest{
		OrderID:          "order-42",
		Status:           "RESERVED",
		Channel:          models.ChannelEmail,
		CallbackRequired: true,
	}

	gateway := mocks.NewMockGatewayCallbacker(ctl)
	gateway.EXPECT().ProcessCallback(gomock.Any(), "order-42").Return("", errors.New("gateway unreachable"))

	svc := New(log, gateway, &fakeAudit{err: errors.New("audit db down")})

	_, err := svc.Send(ctx, request)
	require.NoError(t, err)
}

func TestProcessNotificationCallbackSemantics(t *testing.T) {
	log := logger.NewSlogLogger(logger.EnvLocal)
	ctx := context.Background()

	t.Run("callback_required", func(t *testing.T) {
		ctl := gomock.NewController(t)
		defer ctl.Finish()

		gateway := mocks.NewMockGatewayCallbacker(ctl)
		gateway.EXPECT().
			ProcessCallback(gomock.Any(), "order-42").
			Return("callback processed for order order-42", nil).
			Times(1)

		svc := New(log, gateway, audit.Noop{})

		err := svc.ProcessNotification(ctx, models.NotificationRequest{
			OrderID:          "order-42",
			Type:             models.NotificationOrderCreated,
			Channel:          models.ChannelEmail,
			CallbackRequired: true,
		})
		require.NoError(t, err)
	})

	t.Run("no_callback", func(t *testing.T) {
		ctl := gomock.NewController(t)
		defer ctl.Finish()

		svc := New(log, mocks.NewMockGatewayCallbacker(ctl), audit.Noop{})

		err := svc.ProcessNotification(ctx, models.NotificationRequest{
			OrderID: "order-42",
			Type:    models.NotificationOrderProcessed,
			Channel: models.ChannelSMS,
		})
		require.NoError(t, err)
	})

	// At-least-once delivery: the pipeline must tolerate the same message
	// twice, and a failed callback must not fail the message.
	t.Run("duplicate_delivery_and_failed_callback", func(t *testing.T) {
		ctl := gomock.NewController(t)
		defer ctl.Finish()

		gateway := mocks.NewMockGatewayCallbacker(ctl)
		gateway.EXPECT().
			ProcessCallback(gomock.Any(), "order-42").
			Return("", errors.New("gateway unreachable")).
			Times(2)

		svc := New(log, gateway, audit.Noop{})

		message := models.NotificationRequest{
			OrderID:          "order-42",
			Type:             models.NotificationOrderUpdate,
			Channel:          models.ChannelEmail,
			CallbackRequired: true,
		}

		require.NoError(t, svc.ProcessNotification(ctx, message))
		require.NoError(t, svc.ProcessNotification(ctx, message))
	})
}

func TestStatusIsSynthetic(t *testing.T) {
	log := logger.NewSlogLogger(logger.EnvLocal)
	ctx := context.Background()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	svc := New(log, mocks.NewMockGatewayCallbacker(ctl), audit.Noop{})

	status, err := svc.Status(ctx, "order-42")
	require.NoError(t, err)
	require.Equal(t, "DELIVERED", status)
}
