package handler

import (
	"context"
	"io"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// WebhookProcessor covers webhook processing.
type WebhookProcessor interface {
	Process(ctx context.Context, source string, body []byte) error
}

// WebhookHandler receives Stripe and Calendly callbacks. Providers retry on
// non-2xx, so the handler acks first and only logs processing failures.
type WebhookHandler struct {
	webhooks WebhookProcessor
}

// NewWebhookHandler constructs a webhook handler.
func NewWebhookHandler(webhooks WebhookProcessor) *WebhookHandler {
	return &WebhookHandler{webhooks: webhooks}
}

// Receive handles POST /api/webhooks?source=stripe|calendly.
func (h *WebhookHandler) Receive(c echo.Context) error {
	source := c.QueryParam("source")

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		log.Printf("webhook source=%s body read failed err=%v", source, err)
		return c.JSON(http.StatusOK, map[string]bool{"received": true})
	}

	if err := c.JSON(http.StatusOK, map[string]bool{"received": true}); err != nil {
		return err
	}

	if err := h.webhooks.Process(c.Request().Context(), source, body); err != nil {
		log.Printf("webhook source=%s processing failed err=%v", source, err)
	}
	return nil
}
