package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/loopcard/loyalty-backend/internal/metrics"
	"github.com/loopcard/loyalty-backend/internal/reconciler"
	servertypes "github.com/loopcard/loyalty-backend/internal/server/types"
	"github.com/loopcard/loyalty-backend/pkg/errors"
	"github.com/loopcard/loyalty-backend/pkg/types"
)

// ListPendingRequests returns the pending requests of one type, joined with
// the owning user's email and wallet for the admin dashboard.
func (h *Handler) ListPendingRequests(c *gin.Context) {
	requestType := c.Param("type")
	if !types.IsValidRequestType(requestType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request type"})
		return
	}
	h.logger.Debugf("GET [ListPendingRequests] For type: %s", requestType)

	trackDBOp := metrics.TrackDBOperation("read", "request_data")
	requests, err := h.requestRepository.ListPendingByType(c.Request.Context(), requestType)
	trackDBOp(err)
	if err != nil {
		h.logger.Errorf("%s: %v", errors.ErrDBOperationFailed, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errors.ErrDBOperationFailed})
		return
	}

	pending := make([]types.PendingRequest, 0, len(requests))
	for _, request := range requests {
		entry := types.PendingRequest{Request: request}
		user, err := h.userRepository.GetByID(c.Request.Context(), request.UserID)
		if err != nil {
			// Keep the request visible even when the user row is gone
			h.logger.Warnf("Pending request %s references missing user %s", request.RequestID, request.UserID)
		} else {
			entry.UserEmail = user.Email
			entry.UserWallet = user.Wallet
		}
		pending = append(pending, entry)
	}

	c.JSON(http.StatusOK, servertypes.PendingRequestsResponse{Requests: pending})
}

// ApproveRequest executes a pending request against the ledger and marks it
// approved. Ledger failures leave the request pending.
func (h *Handler) ApproveRequest(c *gin.Context) {
	requestID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}
	h.logger.Debugf("POST [ApproveRequest] For request: %s", requestID)

	requestType := h.requestTypeLabel(c, requestID)
	err = h.engine.Approve(c.Request.Context(), requestID)
	metrics.TrackReconciliation("approve", requestType, err)
	if err != nil {
		h.reviewError(c, requestID, err)
		return
	}

	h.logger.Infof("POST [ApproveRequest] Successful, request: %s", requestID)
	c.JSON(http.StatusOK, servertypes.ReviewResponse{
		RequestID: requestID.String(),
		Status:    types.StatusApproved,
	})
}

// RejectRequest marks a pending request rejected without touching the ledger.
func (h *Handler) RejectRequest(c *gin.Context) {
	requestID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}
	h.logger.Debugf("POST [RejectRequest] For request: %s", requestID)

	requestType := h.requestTypeLabel(c, requestID)
	err = h.engine.Reject(c.Request.Context(), requestID)
	metrics.TrackReconciliation("reject", requestType, err)
	if err != nil {
		h.reviewError(c, requestID, err)
		return
	}

	h.logger.Infof("POST [RejectRequest] Successful, request: %s", requestID)
	c.JSON(http.StatusOK, servertypes.ReviewResponse{
		RequestID: requestID.String(),
		Status:    types.StatusRejected,
	})
}

func (h *Handler) requestTypeLabel(c *gin.Context, requestID gocql.UUID) string {
	request, err := h.requestRepository.GetByID(c.Request.Context(), requestID)
	if err != nil {
		return "unknown"
	}
	return request.Type
}

func (h *Handler) reviewError(c *gin.Context, requestID gocql.UUID, err error) {
	switch {
	case stderrors.Is(err, reconciler.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": errors.ErrDBRecordNotFound})
	case stderrors.Is(err, reconciler.ErrTerminalStatus):
		c.JSON(http.StatusConflict, gin.H{"error": "request already reviewed"})
	case stderrors.Is(err, reconciler.ErrNoTokenOwned):
		h.logger.Errorf("Request %s: %v", requestID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		h.logger.Errorf("Request %s review failed: %v", requestID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errors.ErrLedgerCallFailed})
	}
}
