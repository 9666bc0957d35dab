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

func TestRequestMint_Success(t *testing.T) {
	handler, mocks := newTestHandler(false)
	userID := gocql.TimeUUID()
	requestID := gocql.TimeUUID()

	mocks.users.On("GetByID", mock.Anything, userID).Return(&types.User{
		UserID: userID,
		Wallet: testWallet,
	}, nil)
	mocks.requests.On("CreateRequest", mock.Anything, types.RequestTypeMint, userID, int64(0)).
		Return(&types.Request{
			RequestID: requestID,
			Type:      types.RequestTypeMint,
			UserID:    userID,
			Status:    types.StatusPending,
		}, nil)

	router := gin.New()
	router.POST("/request-mint", asUser(userID), handler.RequestMint)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/request-mint", nil))

	assert.Equal(t, http.StatusCreated, w.Code)
	var response servertypes.CreateRequestResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, requestID.String(), response.RequestID)
	assert.Equal(t, types.StatusPending, response.Status)
	mocks.requests.AssertExpectations(t)
}

func TestRequestMint_Unauthenticated(t *testing.T) {
	handler, _ := newTestHandler(false)

	router := gin.New()
	router.POST("/request-mint", handler.RequestMint)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/request-mint", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestMint_UnknownUser(t *testing.T) {
	handler, mocks := newTestHandler(false)
	userID := gocql.TimeUUID()

	mocks.users.On("GetByID", mock.Anything, userID).Return(nil, gocql.ErrNotFound)

	router := gin.New()
	router.POST("/request-mint", asUser(userID), handler.RequestMint)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/request-mint", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSimulatePayment_DisabledOutsideDevMode(t *testing.T) {
	handler, _ := newTestHandler(false)
	userID := gocql.TimeUUID()

	router := gin.New()
	router.POST("/simulate-payment", asUser(userID), handler.SimulatePayment)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/simulate-payment", servertypes.SimulatePaymentRequest{Amount: 10}))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSimulatePayment_Success(t *testing.T) {
	handler, mocks := newTestHandler(true)
	userID := gocql.TimeUUID()
	requestID := gocql.TimeUUID()

	mocks.users.On("GetByID", mock.Anything, userID).Return(&types.User{UserID: userID}, nil)
	mocks.requests.On("CreateRequest", mock.Anything, types.RequestTypePayment, userID, int64(25)).
		Return(&types.Request{
			RequestID: requestID,
			Type:      types.RequestTypePayment,
			UserID:    userID,
			Amount:    25,
			Status:    types.StatusPending,
		}, nil)

	router := gin.New()
	router.POST("/simulate-payment", asUser(userID), handler.SimulatePayment)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/simulate-payment", servertypes.SimulatePaymentRequest{Amount: 25}))

	assert.Equal(t, http.StatusCreated, w.Code)
	mocks.requests.AssertExpectations(t)
}

func TestSimulatePayment_RejectsNonPositiveAmount(t *testing.T) {
	handler, mocks := newTestHandler(true)
	userID := gocql.TimeUUID()

	mocks.users.On("GetByID", mock.Anything, userID).Return(&types.User{UserID: userID}, nil)

	router := gin.New()
	router.POST("/simulate-payment", asUser(userID), handler.SimulatePayment)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/simulate-payment", map[string]int64{"amount": -5}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNFTStatus_Success(t *testing.T) {
	handler, mocks := newTestHandler(false)
	userID := gocql.TimeUUID()

	mocks.users.On("GetByID", mock.Anything, userID).Return(&types.User{
		UserID: userID,
		Wallet: testWallet,
	}, nil)
	mocks.engine.On("TokenStatus", mock.Anything, testWallet).Return(&reconciler.TokenStatus{
		HasNFT:  true,
		TokenID: "3",
		Points:  "150",
		Balance: "1",
	}, nil)

	router := gin.New()
	router.GET("/nft-status", asUser(userID), handler.NFTStatus)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nft-status", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var response reconciler.TokenStatus
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.HasNFT)
	assert.Equal(t, "3", response.TokenID)
	assert.Equal(t, "150", response.Points)
}

func TestNFTStatus_LedgerFailure(t *testing.T) {
	handler, mocks := newTestHandler(false)
	userID := gocql.TimeUUID()

	mocks.users.On("GetByID", mock.Anything, userID).Return(&types.User{
		UserID: userID,
		Wallet: testWallet,
	}, nil)
	mocks.engine.On("TokenStatus", mock.Anything, testWallet).
		Return(nil, errors.New("rpc unreachable"))

	router := gin.New()
	router.GET("/nft-status", asUser(userID), handler.NFTStatus)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nft-status", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
