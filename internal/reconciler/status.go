package reconciler

import (
	"context"
	"errors"
	"fmt"
)

const degradedDetailMessage = "User has NFT(s) but specific token details could not be retrieved"

// TokenStatus is the NFT ownership view served to users. Numeric fields are
// strings because the underlying values are unbounded on chain.
type TokenStatus struct {
	HasNFT  bool   `json:"hasNFT"`
	TokenID string `json:"tokenId,omitempty"`
	Points  string `json:"points,omitempty"`
	Balance string `json:"balance,omitempty"`
	Message string `json:"message,omitempty"`
}

// TokenStatus reports whether the wallet owns a membership token and, when
// the token can be identified, its ID and point balance. A positive balance
// with a failed scan yields a degraded result carrying only the raw balance;
// that shape covers index staleness and transferred-away tokens alike.
func (e *Engine) TokenStatus(ctx context.Context, wallet string) (*TokenStatus, error) {
	balance, err := e.ledger.BalanceOf(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("balance lookup failed: %w", err)
	}

	if balance.Sign() == 0 {
		return &TokenStatus{HasNFT: false}, nil
	}

	tokenID, err := e.FindOwnedToken(ctx, wallet)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		e.logger.Warnf("Positive balance for %s but no token found via scan: %v", wallet, err)
		return &TokenStatus{
			HasNFT:  true,
			Balance: balance.String(),
			Message: degradedDetailMessage,
		}, nil
	}

	points, err := e.ledger.GetPoints(ctx, tokenID)
	if err != nil {
		e.logger.Warnf("Found token %s for %s but points lookup failed: %v", tokenID, wallet, err)
		return &TokenStatus{
			HasNFT:  true,
			Balance: balance.String(),
			Message: degradedDetailMessage,
		}, nil
	}

	return &TokenStatus{
		HasNFT:  true,
		TokenID: tokenID.String(),
		Points:  points.String(),
	}, nil
}
