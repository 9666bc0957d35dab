package ledger

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/loopcard/loyalty-backend/pkg/logging"
)

// Backend is the subset of the Ethereum node API the client needs.
// *ethclient.Client satisfies it; tests substitute a fake.
type Backend interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	ChainID(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *ethtypes.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error)
	CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error)
}

// Client issues read and write calls against the deployed LoyaltyNFT
// contract. Every write follows the same cycle: estimate gas, apply the 20%
// buffer, fetch the gas price, sign with the injected Signer, broadcast, and
// wait for the receipt.
type Client struct {
	backend  Backend
	contract common.Address
	abi      abi.ABI
	signer   *Signer
	logger   logging.Logger
}

func NewClient(rpcURL string, contractAddress string, signer *Signer, logger logging.Logger) (*Client, error) {
	if !common.IsHexAddress(contractAddress) {
		return nil, fmt.Errorf("invalid contract address: %s", contractAddress)
	}

	backend, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC endpoint: %w", err)
	}

	return NewClientWithBackend(backend, contractAddress, signer, logger)
}

// NewClientWithBackend wires an already-connected backend. Used by tests.
func NewClientWithBackend(backend Backend, contractAddress string, signer *Signer, logger logging.Logger) (*Client, error) {
	parsed, err := abi.JSON(strings.NewReader(loyaltyNFTABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract ABI: %w", err)
	}

	return &Client{
		backend:  backend,
		contract: common.HexToAddress(contractAddress),
		abi:      parsed,
		signer:   signer,
		logger:   logger,
	}, nil
}

func (c *Client) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	msg := ethereum.CallMsg{To: &c.contract, Data: data}
	out, err := c.backend.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, fmt.Errorf("%s call failed: %w", method, err)
	}

	results, err := c.abi.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s result: %w", method, err)
	}
	return results, nil
}

// BalanceOf returns how many tokens the wallet owns.
func (c *Client) BalanceOf(ctx context.Context, wallet string) (*big.Int, error) {
	results, err := c.call(ctx, "balanceOf", common.HexToAddress(wallet))
	if err != nil {
		return nil, err
	}
	return results[0].(*big.Int), nil
}

// OwnerOf returns the owner address of a token. Errors for token IDs that
// were never minted; callers scanning ID ranges treat that as "keep going".
func (c *Client) OwnerOf(ctx context.Context, tokenID *big.Int) (string, error) {
	results, err := c.call(ctx, "ownerOf", tokenID)
	if err != nil {
		return "", err
	}
	return results[0].(common.Address).Hex(), nil
}

// TokenCounter returns the next token ID the contract will assign; all
// existing IDs are strictly below it.
func (c *Client) TokenCounter(ctx context.Context) (*big.Int, error) {
	results, err := c.call(ctx, "tokenCounter")
	if err != nil {
		return nil, err
	}
	return results[0].(*big.Int), nil
}

// WalletToToken reads the contract's wallet->token index. Zero means no
// entry; the index can be stale for tokens minted or transferred through
// paths that did not maintain it.
func (c *Client) WalletToToken(ctx context.Context, wallet string) (*big.Int, error) {
	results, err := c.call(ctx, "walletToToken", common.HexToAddress(wallet))
	if err != nil {
		return nil, err
	}
	return results[0].(*big.Int), nil
}

// GetPoints returns the reward point balance attached to a token.
func (c *Client) GetPoints(ctx context.Context, tokenID *big.Int) (*big.Int, error) {
	results, err := c.call(ctx, "getPoints", tokenID)
	if err != nil {
		return nil, err
	}
	return results[0].(*big.Int), nil
}

// MintNFT mints a membership token for the wallet. The contract's own mint
// logic updates the wallet->token mapping.
func (c *Client) MintNFT(ctx context.Context, wallet string) (string, error) {
	return c.transact(ctx, "mintNFT", common.HexToAddress(wallet))
}

// AddPointsToNFT credits reward points to a token.
func (c *Client) AddPointsToNFT(ctx context.Context, tokenID *big.Int, amount *big.Int) (string, error) {
	return c.transact(ctx, "addPointsToNFT", tokenID, amount)
}

// FixWalletToTokenMapping repairs a missing or stale wallet->token index entry.
func (c *Client) FixWalletToTokenMapping(ctx context.Context, wallet string, tokenID *big.Int) (string, error) {
	return c.transact(ctx, "fixWalletToTokenMapping", common.HexToAddress(wallet), tokenID)
}

// Close releases the underlying RPC connection when the backend owns one.
func (c *Client) Close() {
	if closer, ok := c.backend.(interface{ Close() }); ok {
		closer.Close()
	}
}
