// Package notify delivers farmer purchase notifications to the messaging
// collaborator over an HTTP webhook. Delivery is best-effort: the checkout
// that produced the notification has already committed, so failures are
// logged and dropped, never propagated.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"agrikart/internal/core/ports"
)

const defaultTimeout = 5 * time.Second

// WebhookFarmerNotifier posts farmer notifications as JSON to a webhook URL.
type WebhookFarmerNotifier struct {
	webhookURL string
	client     *http.Client
	logger     *slog.Logger
}

// NewWebhookFarmerNotifier creates a notifier posting to the given URL.
func NewWebhookFarmerNotifier(webhookURL string, logger *slog.Logger) *WebhookFarmerNotifier {
	return &WebhookFarmerNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: defaultTimeout},
		logger:     logger.With("component", "farmer_notifier"),
	}
}

// Notify posts each notification to the webhook. One failed delivery does not
// stop the remaining ones.
func (n *WebhookFarmerNotifier) Notify(
	ctx context.Context,
	notifications []ports.FarmerNotification,
) {
	for _, notification := range notifications {
		if err := n.post(ctx, notification); err != nil {
			n.logger.ErrorContext(ctx, "farmer notification failed",
				"farmerPhone", notification.FarmerPhone,
				"orderId", notification.OrderID,
				"error", err)
		}
	}
}

func (n *WebhookFarmerNotifier) post(
	ctx context.Context,
	notification ports.FarmerNotification,
) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(
		ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := n.client.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusBadRequest {
		n.logger.WarnContext(ctx, "webhook rejected notification",
			"farmerPhone", notification.FarmerPhone,
			"orderId", notification.OrderID,
			"status", response.StatusCode)
	}

	return nil
}
