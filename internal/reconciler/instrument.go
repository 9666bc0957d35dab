package reconciler

import (
	"context"
	"math/big"

	"github.com/loopcard/loyalty-backend/internal/metrics"
)

// InstrumentedLedger wraps a Ledger and records per-method call counts and
// latency.
type InstrumentedLedger struct {
	next Ledger
}

func InstrumentLedger(next Ledger) *InstrumentedLedger {
	return &InstrumentedLedger{next: next}
}

func (l *InstrumentedLedger) BalanceOf(ctx context.Context, wallet string) (*big.Int, error) {
	done := metrics.TrackLedgerCall("balanceOf")
	result, err := l.next.BalanceOf(ctx, wallet)
	done(err)
	return result, err
}

func (l *InstrumentedLedger) OwnerOf(ctx context.Context, tokenID *big.Int) (string, error) {
	done := metrics.TrackLedgerCall("ownerOf")
	result, err := l.next.OwnerOf(ctx, tokenID)
	done(err)
	return result, err
}

func (l *InstrumentedLedger) TokenCounter(ctx context.Context) (*big.Int, error) {
	done := metrics.TrackLedgerCall("tokenCounter")
	result, err := l.next.TokenCounter(ctx)
	done(err)
	return result, err
}

func (l *InstrumentedLedger) WalletToToken(ctx context.Context, wallet string) (*big.Int, error) {
	done := metrics.TrackLedgerCall("walletToToken")
	result, err := l.next.WalletToToken(ctx, wallet)
	done(err)
	return result, err
}

func (l *InstrumentedLedger) GetPoints(ctx context.Context, tokenID *big.Int) (*big.Int, error) {
	done := metrics.TrackLedgerCall("getPoints")
	result, err := l.next.GetPoints(ctx, tokenID)
	done(err)
	return result, err
}

func (l *InstrumentedLedger) MintNFT(ctx context.Context, wallet string) (string, error) {
	done := metrics.TrackLedgerCall("mintNFT")
	txHash, err := l.next.MintNFT(ctx, wallet)
	done(err)
	return txHash, err
}

func (l *InstrumentedLedger) AddPointsToNFT(ctx context.Context, tokenID *big.Int, amount *big.Int) (string, error) {
	done := metrics.TrackLedgerCall("addPointsToNFT")
	txHash, err := l.next.AddPointsToNFT(ctx, tokenID, amount)
	done(err)
	return txHash, err
}

func (l *InstrumentedLedger) FixWalletToTokenMapping(ctx context.Context, wallet string, tokenID *big.Int) (string, error) {
	done := metrics.TrackLedgerCall("fixWalletToTokenMapping")
	txHash, err := l.next.FixWalletToTokenMapping(ctx, wallet, tokenID)
	done(err)
	return txHash, err
}
