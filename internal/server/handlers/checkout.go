package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/loopcard/loyalty-backend/internal/metrics"
	"github.com/loopcard/loyalty-backend/internal/payments"
	servertypes "github.com/loopcard/loyalty-backend/internal/server/types"
	"github.com/loopcard/loyalty-backend/pkg/errors"
	"github.com/loopcard/loyalty-backend/pkg/types"
)

// CreateCheckout opens a Stripe hosted checkout session for buying points.
func (h *Handler) CreateCheckout(c *gin.Context) {
	user, ok := h.authenticatedUser(c)
	if !ok {
		return
	}

	var req servertypes.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errors.ErrInvalidRequestBody})
		return
	}
	h.logger.Debugf("POST [CreateCheckout] For user: %s, amount: %d", user.UserID, req.Amount)

	url, err := h.payments.CreateCheckoutSession(user.UserID.String(), req.Amount)
	if err != nil {
		h.logger.Errorf("Failed to create checkout session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create checkout session"})
		return
	}

	h.logger.Infof("POST [CreateCheckout] Successful, user: %s", user.UserID)
	c.JSON(http.StatusOK, servertypes.CheckoutResponse{URL: url})
}

// StripeWebhook ingests checkout.session.completed events and queues a
// payment request for admin review. Once a delivery is authenticated it is
// always acknowledged with a 200 so Stripe does not retry events we cannot
// act on anyway.
func (h *Handler) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	event, err := h.payments.ParseWebhookEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		h.logger.Errorf("Rejected webhook delivery: %v", err)
		metrics.CheckoutEventsTotal.WithLabelValues("unverified", "rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook payload"})
		return
	}

	completed, matched, err := payments.ExtractCompletedCheckout(event)
	if !matched {
		metrics.CheckoutEventsTotal.WithLabelValues(string(event.Type), "ignored").Inc()
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}
	if err != nil {
		h.logger.Errorf("Failed to extract checkout data from event %s: %v", event.ID, err)
		metrics.CheckoutEventsTotal.WithLabelValues(string(event.Type), "error").Inc()
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	userID, err := gocql.ParseUUID(completed.UserID)
	if err != nil {
		h.logger.Errorf("Checkout event %s carries malformed user reference %q", event.ID, completed.UserID)
		metrics.CheckoutEventsTotal.WithLabelValues(string(event.Type), "error").Inc()
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	// Stripe reports cents, points are credited per whole dollar
	amount := completed.AmountCents / 100

	trackDBOp := metrics.TrackDBOperation("create", "request_data")
	request, err := h.requestRepository.CreateRequest(c.Request.Context(), types.RequestTypePayment, userID, amount)
	trackDBOp(err)
	if err != nil {
		h.logger.Errorf("Failed to queue payment request for user %s: %v", userID, err)
		metrics.CheckoutEventsTotal.WithLabelValues(string(event.Type), "error").Inc()
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	h.logger.Infof("POST [StripeWebhook] Queued payment request %s for user %s (%d points)", request.RequestID, userID, amount)
	metrics.CheckoutEventsTotal.WithLabelValues(string(event.Type), "queued").Inc()
	c.JSON(http.StatusOK, gin.H{"received": true})
}
