package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/loopcard/loyalty-backend/internal/reconciler"
	servertypes "github.com/loopcard/loyalty-backend/internal/server/types"
	"github.com/loopcard/loyalty-backend/pkg/types"
)

func setupAdminRouter(handler *Handler) *gin.Engine {
	router := gin.New()
	router.GET("/requests/:type", handler.ListPendingRequests)
	router.POST("/requests/:id/approve", handler.ApproveRequest)
	router.POST("/requests/:id/reject", handler.RejectRequest)
	return router
}

func TestListPendingRequests_InvalidType(t *testing.T) {
	handler, _ := newTestHandler(false)
	router := setupAdminRouter(handler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/requests/bogus", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPendingRequests_JoinsUserDetails(t *testing.T) {
	handler, mocks := newTestHandler(false)
	router := setupAdminRouter(handler)

	userID := gocql.TimeUUID()
	requestID := gocql.TimeUUID()
	mocks.requests.On("ListPendingByType", mock.Anything, types.RequestTypeMint).
		Return([]types.Request{{
			RequestID: requestID,
			Type:      types.RequestTypeMint,
			UserID:    userID,
			Status:    types.StatusPending,
		}}, nil)
	mocks.users.On("GetByID", mock.Anything, userID).Return(&types.User{
		UserID: userID,
		Email:  "alice@example.com",
		Wallet: testWallet,
	}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/requests/mint", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var response servertypes.PendingRequestsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Requests, 1)
	assert.Equal(t, "alice@example.com", response.Requests[0].UserEmail)
	assert.Equal(t, testWallet, response.Requests[0].UserWallet)
}

func TestListPendingRequests_KeepsOrphanedRequests(t *testing.T) {
	handler, mocks := newTestHandler(false)
	router := setupAdminRouter(handler)

	userID := gocql.TimeUUID()
	mocks.requests.On("ListPendingByType", mock.Anything, types.RequestTypePayment).
		Return([]types.Request{{
			RequestID: gocql.TimeUUID(),
			Type:      types.RequestTypePayment,
			UserID:    userID,
			Amount:    25,
			Status:    types.StatusPending,
		}}, nil)
	mocks.users.On("GetByID", mock.Anything, userID).Return(nil, gocql.ErrNotFound)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/requests/payment", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var response servertypes.PendingRequestsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Requests, 1)
	assert.Empty(t, response.Requests[0].UserEmail)
}

func TestApproveRequest_Success(t *testing.T) {
	handler, mocks := newTestHandler(false)
	router := setupAdminRouter(handler)

	requestID := gocql.TimeUUID()
	mocks.requests.On("GetByID", mock.Anything, requestID).Return(&types.Request{
		RequestID: requestID,
		Type:      types.RequestTypeMint,
		Status:    types.StatusPending,
	}, nil)
	mocks.engine.On("Approve", mock.Anything, requestID).Return(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/requests/"+requestID.String()+"/approve", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var response servertypes.ReviewResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, types.StatusApproved, response.Status)
	mocks.engine.AssertExpectations(t)
}

func TestApproveRequest_InvalidID(t *testing.T) {
	handler, _ := newTestHandler(false)
	router := setupAdminRouter(handler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/requests/not-a-uuid/approve", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApproveRequest_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		engineErr  error
		wantStatus int
	}{
		{
			name:       "Request not found",
			engineErr:  reconciler.ErrRequestNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "Already reviewed",
			engineErr:  reconciler.ErrTerminalStatus,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "No token owned",
			engineErr:  reconciler.ErrNoTokenOwned,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "Ledger failure",
			engineErr:  errors.New("mint failed: rpc unreachable"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mocks := newTestHandler(false)
			router := setupAdminRouter(handler)

			requestID := gocql.TimeUUID()
			mocks.requests.On("GetByID", mock.Anything, requestID).Return(nil, gocql.ErrNotFound)
			mocks.engine.On("Approve", mock.Anything, requestID).Return(tt.engineErr)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, jsonRequest(http.MethodPost, "/requests/"+requestID.String()+"/approve", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRejectRequest_Success(t *testing.T) {
	handler, mocks := newTestHandler(false)
	router := setupAdminRouter(handler)

	requestID := gocql.TimeUUID()
	mocks.requests.On("GetByID", mock.Anything, requestID).Return(&types.Request{
		RequestID: requestID,
		Type:      types.RequestTypePayment,
		Status:    types.StatusPending,
	}, nil)
	mocks.engine.On("Reject", mock.Anything, requestID).Return(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/requests/"+requestID.String()+"/reject", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var response servertypes.ReviewResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, types.StatusRejected, response.Status)
	mocks.engine.AssertExpectations(t)
}

func TestRejectRequest_Terminal(t *testing.T) {
	handler, mocks := newTestHandler(false)
	router := setupAdminRouter(handler)

	requestID := gocql.TimeUUID()
	mocks.requests.On("GetByID", mock.Anything, requestID).Return(&types.Request{
		RequestID: requestID,
		Type:      types.RequestTypeMint,
		Status:    types.StatusApproved,
	}, nil)
	mocks.engine.On("Reject", mock.Anything, requestID).Return(reconciler.ErrTerminalStatus)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/requests/"+requestID.String()+"/reject", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
}
