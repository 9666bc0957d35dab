package reconciler

import (
	"context"
	"math/big"
	"strings"

	"github.com/loopcard/loyalty-backend/internal/metrics"
)

// FindOwnedToken scans token IDs in descending order from tokenCounter()-1
// down to 1 and returns the first ID whose owner matches the wallet
// (case-insensitive). The order favors recently minted tokens; the scan is
// O(n) in the token supply and issues one remote call per ID, so the policy
// scan limit can cap it. ownerOf errors are skipped: the ID may simply not
// exist.
func (e *Engine) FindOwnedToken(ctx context.Context, wallet string) (*big.Int, error) {
	counter, err := e.ledger.TokenCounter(ctx)
	if err != nil {
		return nil, err
	}

	var visited uint64
	one := big.NewInt(1)
	for id := new(big.Int).Sub(counter, one); id.Sign() > 0; id.Sub(id, one) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.policy.ScanLimit > 0 && visited == e.policy.ScanLimit {
			break
		}
		visited++

		tokenID := new(big.Int).Set(id)
		owner, err := e.ledger.OwnerOf(ctx, tokenID)
		if err != nil {
			continue
		}
		if strings.EqualFold(owner, wallet) {
			metrics.TokenScanLength.Observe(float64(visited))
			return tokenID, nil
		}
	}

	metrics.TokenScanLength.Observe(float64(visited))
	return nil, ErrNoTokenOwned
}
