package models

// Notification event types. The enum is open: consumers branch on the values
// they recognize and pass everything else through.
const (
	NotificationOrderCreated      = "ORDER_CREATED"
	NotificationOrderProcessed    = "ORDER_PROCESSED"
	NotificationOrderUpdate       = "ORDER_UPDATE"
	NotificationInventoryReserved = "INVENTORY_RESERVED"
)

// Delivery channels.
const (
	ChannelEmail = "EMAIL"
	ChannelSMS   = "SMS"
	ChannelPush  = "PUSH"
)

// NotificationRequest is the message carried over the notification queue and,
// for the direct ingress, over HTTP. Field names are part of the wire contract
// shared by all four services.
type NotificationRequest struct {
	OrderID          string `json:"orderId"`
	Type             string `json:"type"`
	Status           string `json:"status"`
	Channel          string `json:"channel"`
	CallbackRequired bool   `json:"callbackRequired"`
}
