package reconciler

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/gocql/gocql"

	"github.com/loopcard/loyalty-backend/pkg/logging"
	"github.com/loopcard/loyalty-backend/pkg/types"
)

var (
	// ErrNoTokenOwned means neither the wallet->token index nor the
	// ownership scan found a token for the user's wallet. The request is
	// left pending so an operator can retry or reject.
	ErrNoTokenOwned = errors.New("no token owned by this user")

	// ErrTerminalStatus is returned when the policy forbids changing a
	// request that already reached approved or rejected.
	ErrTerminalStatus = errors.New("request already in a terminal status")

	ErrRequestNotFound = errors.New("request not found")
)

// Ledger is the on-chain capability the engine needs. pkg/ledger.Client
// implements it against an Ethereum node.
type Ledger interface {
	BalanceOf(ctx context.Context, wallet string) (*big.Int, error)
	OwnerOf(ctx context.Context, tokenID *big.Int) (string, error)
	TokenCounter(ctx context.Context) (*big.Int, error)
	WalletToToken(ctx context.Context, wallet string) (*big.Int, error)
	GetPoints(ctx context.Context, tokenID *big.Int) (*big.Int, error)
	MintNFT(ctx context.Context, wallet string) (string, error)
	AddPointsToNFT(ctx context.Context, tokenID *big.Int, amount *big.Int) (string, error)
	FixWalletToTokenMapping(ctx context.Context, wallet string, tokenID *big.Int) (string, error)
}

// RequestStore is the slice of the request repository the engine uses.
type RequestStore interface {
	GetByID(ctx context.Context, id gocql.UUID) (*types.Request, error)
	UpdateStatus(ctx context.Context, id gocql.UUID, status string) error
}

// UserStore resolves the user a request belongs to.
type UserStore interface {
	GetByID(ctx context.Context, id gocql.UUID) (*types.User, error)
}

// Policy captures the two behaviors the engine leaves configurable: whether
// an admin may override a request that already reached a terminal status,
// and how many token IDs the ownership scan may visit (0 = the full range
// below tokenCounter).
type Policy struct {
	AllowTerminalOverride bool
	ScanLimit             uint64
}

// Engine turns a pending request into ledger transactions and a terminal
// status. All ledger writes happen before the local status update, so a
// ledger failure leaves the request pending for manual retry.
type Engine struct {
	ledger   Ledger
	requests RequestStore
	users    UserStore
	policy   Policy
	logger   logging.Logger
}

func NewEngine(ledger Ledger, requests RequestStore, users UserStore, policy Policy, logger logging.Logger) *Engine {
	return &Engine{
		ledger:   ledger,
		requests: requests,
		users:    users,
		policy:   policy,
		logger:   logger,
	}
}

// Approve commits the request's effect to the ledger and marks it approved.
// Mint requests issue a single mintNFT transaction. Payment requests resolve
// the user's token (index lookup, then descending ownership scan with a
// mapping repair), then credit the points.
func (e *Engine) Approve(ctx context.Context, requestID gocql.UUID) error {
	req, err := e.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return ErrRequestNotFound
		}
		return fmt.Errorf("failed to load request: %w", err)
	}

	if req.Status != types.StatusPending && !e.policy.AllowTerminalOverride {
		return ErrTerminalStatus
	}

	user, err := e.users.GetByID(ctx, req.UserID)
	if err != nil {
		return fmt.Errorf("failed to resolve request user: %w", err)
	}

	switch req.Type {
	case types.RequestTypeMint:
		txHash, err := e.ledger.MintNFT(ctx, user.Wallet)
		if err != nil {
			return fmt.Errorf("mint failed: %w", err)
		}
		e.logger.Infof("Minted NFT for %s (request %s), tx %s", user.Wallet, requestID, txHash)

	case types.RequestTypePayment:
		if err := e.creditPoints(ctx, user.Wallet, req.Amount); err != nil {
			return err
		}
		e.logger.Infof("Credited %d points to %s (request %s)", req.Amount, user.Wallet, requestID)

	default:
		return fmt.Errorf("unknown request type %q", req.Type)
	}

	if err := e.requests.UpdateStatus(ctx, requestID, types.StatusApproved); err != nil {
		// The ledger write already landed; the request stays pending and
		// the divergence is surfaced for the operator.
		return fmt.Errorf("ledger updated but status write failed: %w", err)
	}
	return nil
}

// creditPoints resolves the wallet's token and adds points to it. Resolution
// order: the contract's wallet->token index when present, otherwise the
// descending ownership scan followed by a mapping repair.
func (e *Engine) creditPoints(ctx context.Context, wallet string, amount int64) error {
	tokenID, err := e.ledger.WalletToToken(ctx, wallet)
	if err != nil {
		return fmt.Errorf("wallet index lookup failed: %w", err)
	}

	if tokenID.Sign() == 0 {
		e.logger.Debugf("No wallet index entry for %s, scanning ownership", wallet)

		tokenID, err = e.FindOwnedToken(ctx, wallet)
		if err != nil {
			return err
		}

		txHash, err := e.ledger.FixWalletToTokenMapping(ctx, wallet, tokenID)
		if err != nil {
			return fmt.Errorf("mapping repair failed: %w", err)
		}
		e.logger.Infof("Repaired wallet index for %s -> token %s, tx %s", wallet, tokenID, txHash)
	}

	if _, err := e.ledger.AddPointsToNFT(ctx, tokenID, big.NewInt(amount)); err != nil {
		return fmt.Errorf("failed to add points to token %s: %w", tokenID, err)
	}
	return nil
}

// Reject marks the request rejected without touching the ledger.
func (e *Engine) Reject(ctx context.Context, requestID gocql.UUID) error {
	req, err := e.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return ErrRequestNotFound
		}
		return fmt.Errorf("failed to load request: %w", err)
	}

	if req.Status != types.StatusPending && !e.policy.AllowTerminalOverride {
		return ErrTerminalStatus
	}

	return e.requests.UpdateStatus(ctx, requestID, types.StatusRejected)
}
