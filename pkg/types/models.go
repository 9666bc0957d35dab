package types

import (
	"time"

	"github.com/gocql/gocql"
)

// Request types
const (
	RequestTypeMint    = "mint"
	RequestTypePayment = "payment"
)

// Request statuses. A request starts pending and moves to exactly one of
// approved or rejected; it is never deleted.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

func IsValidRequestType(t string) bool {
	return t == RequestTypeMint || t == RequestTypePayment
}

// User is an account holder. Wallet is the blockchain address the membership
// token is minted to.
type User struct {
	UserID       gocql.UUID `json:"user_id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Wallet       string     `json:"wallet"`
	Role         string     `json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
}

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Request is a pending instruction for the reconciliation engine: either
// mint a membership token, or credit purchased points. Amount is in whole
// dollars and only set for payment requests.
type Request struct {
	RequestID gocql.UUID `json:"request_id"`
	Type      string     `json:"type"`
	UserID    gocql.UUID `json:"user_id"`
	Amount    int64      `json:"amount,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

// PendingRequest is a Request with its user's contact details resolved, as
// served to the admin review screen.
type PendingRequest struct {
	Request
	UserEmail  string `json:"user_email"`
	UserWallet string `json:"user_wallet"`
}
