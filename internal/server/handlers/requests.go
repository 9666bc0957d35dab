package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loopcard/loyalty-backend/internal/metrics"
	servertypes "github.com/loopcard/loyalty-backend/internal/server/types"
	"github.com/loopcard/loyalty-backend/pkg/errors"
	"github.com/loopcard/loyalty-backend/pkg/types"
)

// RequestMint queues a membership card mint for admin review.
func (h *Handler) RequestMint(c *gin.Context) {
	user, ok := h.authenticatedUser(c)
	if !ok {
		return
	}
	h.logger.Debugf("POST [RequestMint] For user: %s", user.UserID)

	trackDBOp := metrics.TrackDBOperation("create", "request_data")
	request, err := h.requestRepository.CreateRequest(c.Request.Context(), types.RequestTypeMint, user.UserID, 0)
	trackDBOp(err)
	if err != nil {
		h.logger.Errorf("%s: %v", errors.ErrDBOperationFailed, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errors.ErrDBOperationFailed})
		return
	}

	h.logger.Infof("POST [RequestMint] Successful, request: %s", request.RequestID)
	c.JSON(http.StatusCreated, servertypes.CreateRequestResponse{
		RequestID: request.RequestID.String(),
		Status:    request.Status,
	})
}

// SimulatePayment queues a payment request without going through Stripe.
// Only available in dev mode.
func (h *Handler) SimulatePayment(c *gin.Context) {
	if !h.config.DevMode {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	user, ok := h.authenticatedUser(c)
	if !ok {
		return
	}

	var req servertypes.SimulatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errors.ErrInvalidRequestBody})
		return
	}
	h.logger.Debugf("POST [SimulatePayment] For user: %s, amount: %d", user.UserID, req.Amount)

	trackDBOp := metrics.TrackDBOperation("create", "request_data")
	request, err := h.requestRepository.CreateRequest(c.Request.Context(), types.RequestTypePayment, user.UserID, req.Amount)
	trackDBOp(err)
	if err != nil {
		h.logger.Errorf("%s: %v", errors.ErrDBOperationFailed, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errors.ErrDBOperationFailed})
		return
	}

	h.logger.Infof("POST [SimulatePayment] Successful, request: %s", request.RequestID)
	c.JSON(http.StatusCreated, servertypes.CreateRequestResponse{
		RequestID: request.RequestID.String(),
		Status:    request.Status,
	})
}

// NFTStatus reports the caller's membership card ownership and points.
func (h *Handler) NFTStatus(c *gin.Context) {
	user, ok := h.authenticatedUser(c)
	if !ok {
		return
	}
	h.logger.Debugf("GET [NFTStatus] For wallet: %s", user.Wallet)

	status, err := h.engine.TokenStatus(c.Request.Context(), user.Wallet)
	if err != nil {
		h.logger.Errorf("%s: %v", errors.ErrLedgerCallFailed, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errors.ErrLedgerCallFailed})
		return
	}

	c.JSON(http.StatusOK, status)
}
