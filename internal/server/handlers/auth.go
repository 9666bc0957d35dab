package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/loopcard/loyalty-backend/internal/metrics"
	"github.com/loopcard/loyalty-backend/internal/server/middleware"
	"github.com/loopcard/loyalty-backend/internal/server/repository"
	servertypes "github.com/loopcard/loyalty-backend/internal/server/types"
	"github.com/loopcard/loyalty-backend/pkg/env"
	"github.com/loopcard/loyalty-backend/pkg/errors"
	"github.com/loopcard/loyalty-backend/pkg/types"
)

func (h *Handler) Signup(c *gin.Context) {
	var req servertypes.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("%s: %v", errors.ErrInvalidRequestBody, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": errors.ErrInvalidRequestBody})
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Wallet = strings.TrimSpace(req.Wallet)
	if !env.IsValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email address"})
		return
	}
	if !env.IsValidEthAddress(req.Wallet) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid wallet address"})
		return
	}
	if len(req.Password) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password must be at least 8 characters"})
		return
	}
	h.logger.Debugf("POST [Signup] For email: %s", req.Email)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Errorf("Failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	trackDBOp := metrics.TrackDBOperation("create", "user_data")
	user, err := h.userRepository.CreateUser(c.Request.Context(), req.Email, string(hash), req.Wallet, types.RoleUser)
	trackDBOp(err)
	if err == repository.ErrEmailTaken {
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	}
	if err != nil {
		h.logger.Errorf("%s: %v", errors.ErrDBOperationFailed, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errors.ErrDBOperationFailed})
		return
	}

	h.logger.Infof("POST [Signup] Successful, user: %s", user.UserID)
	c.JSON(http.StatusCreated, gin.H{"userId": user.UserID.String()})
}

func (h *Handler) Login(c *gin.Context) {
	var req servertypes.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("%s: %v", errors.ErrInvalidRequestBody, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": errors.ErrInvalidRequestBody})
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	h.logger.Debugf("POST [Login] For email: %s", req.Email)

	trackDBOp := metrics.TrackDBOperation("read", "user_data")
	user, err := h.userRepository.GetByEmail(c.Request.Context(), req.Email)
	trackDBOp(err)
	if err != nil {
		// Same response for unknown email and bad password
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := middleware.IssueToken(h.config.JWTSecret, user.UserID.String(), user.Email, user.Role)
	if err != nil {
		h.logger.Errorf("Failed to sign token for %s: %v", user.UserID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.logger.Infof("POST [Login] Successful, user: %s", user.UserID)
	c.JSON(http.StatusOK, servertypes.LoginResponse{
		Token:  token,
		UserID: user.UserID.String(),
		Role:   user.Role,
	})
}
