package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/loopcard/loyalty-backend/internal/server/middleware"
	"github.com/loopcard/loyalty-backend/pkg/logging"
)

const testJWTSecret = "test-secret"

type handlerMocks struct {
	users    *MockUserRepository
	requests *MockRequestRepository
	engine   *MockReconciler
	payments *MockPaymentProvider
}

func newTestHandler(devMode bool) (*Handler, *handlerMocks) {
	gin.SetMode(gin.TestMode)
	mocks := &handlerMocks{
		users:    new(MockUserRepository),
		requests: new(MockRequestRepository),
		engine:   new(MockReconciler),
		payments: new(MockPaymentProvider),
	}
	handler := NewHandler(
		mocks.users,
		mocks.requests,
		mocks.engine,
		mocks.payments,
		Config{JWTSecret: testJWTSecret, DevMode: devMode},
		&logging.NoopLogger{},
	)
	return handler, mocks
}

// asUser injects the session identity the JWT middleware would set
func asUser(userID gocql.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, userID.String())
		c.Next()
	}
}

func jsonRequest(method string, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}
