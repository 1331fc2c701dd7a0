package ports

import (
	"context"
)

// NotificationItem is one purchased line in a farmer notification.
type NotificationItem struct {
	Produce        string `json:"produce"`
	QuantityBought int    `json:"quantityBought"`
	RemainingStock int    `json:"remainingStock"`
}

// FarmerNotification tells one farmer which of their listings were bought in
// an order, and where the order is headed.
type FarmerNotification struct {
	FarmerPhone  string             `json:"farmerPhone"`
	Items        []NotificationItem `json:"items"`
	OrderID      string             `json:"orderId"`
	BuyerAddress string             `json:"buyerAddress"`
	CourierName  string             `json:"courierName,omitempty"`
}

// FarmerNotifier delivers purchase notifications to farmers.
//
// Notification is best-effort: implementations must never fail the checkout
// that triggered them, so Notify reports delivery problems through logging
// rather than an error return.
type FarmerNotifier interface {
	Notify(ctx context.Context, notifications []FarmerNotification)
}
