package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/stripe/stripe-go/v79"

	"github.com/loopcard/loyalty-backend/internal/reconciler"
	"github.com/loopcard/loyalty-backend/internal/server/middleware"
	"github.com/loopcard/loyalty-backend/internal/server/repository"
	"github.com/loopcard/loyalty-backend/pkg/logging"
	"github.com/loopcard/loyalty-backend/pkg/types"
)

// Config carries the handler-level settings that come from the environment.
type Config struct {
	JWTSecret string
	DevMode   bool
}

// Reconciler is the slice of the reconciliation engine the handlers call.
type Reconciler interface {
	Approve(ctx context.Context, requestID gocql.UUID) error
	Reject(ctx context.Context, requestID gocql.UUID) error
	TokenStatus(ctx context.Context, wallet string) (*reconciler.TokenStatus, error)
}

// PaymentProvider is the slice of the payments client the handlers call.
type PaymentProvider interface {
	CreateCheckoutSession(userID string, amountUSD int64) (string, error)
	ParseWebhookEvent(payload []byte, sigHeader string) (*stripe.Event, error)
}

type Handler struct {
	userRepository    repository.UserRepository
	requestRepository repository.RequestRepository
	engine            Reconciler
	payments          PaymentProvider
	config            Config
	logger            logging.Logger
}

func NewHandler(
	users repository.UserRepository,
	requests repository.RequestRepository,
	engine Reconciler,
	provider PaymentProvider,
	config Config,
	logger logging.Logger,
) *Handler {
	return &Handler{
		userRepository:    users,
		requestRepository: requests,
		engine:            engine,
		payments:          provider,
		config:            config,
		logger:            logger,
	}
}

// authenticatedUser loads the user record behind the session token. A valid
// token whose user no longer exists yields a 401, not a 404.
func (h *Handler) authenticatedUser(c *gin.Context) (*types.User, bool) {
	idStr, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return nil, false
	}
	userID, err := gocql.ParseUUID(idStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user identity"})
		return nil, false
	}
	user, err := h.userRepository.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorf("Failed to load user %s: %v", userID, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
		return nil, false
	}
	return user, true
}
