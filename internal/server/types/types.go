package types

import "github.com/loopcard/loyalty-backend/pkg/types"

type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Wallet   string `json:"wallet" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

type CheckoutRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

type SimulatePaymentRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

type CreateRequestResponse struct {
	RequestID string `json:"requestId"`
	Status    string `json:"status"`
}

type NFTStatusResponse struct {
	HasNFT  bool   `json:"hasNFT"`
	TokenID string `json:"tokenId,omitempty"`
	Points  string `json:"points,omitempty"`
	Balance string `json:"balance"`
	Message string `json:"message,omitempty"`
}

type PendingRequestsResponse struct {
	Requests []types.PendingRequest `json:"requests"`
}

type ReviewResponse struct {
	RequestID string `json:"requestId"`
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
