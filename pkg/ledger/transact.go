package ledger

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// BufferedGasLimit returns ceil(estimate * 1.2) computed in integer math, so
// wide estimates survive without precision loss. estimate*6 stays within
// uint64 for any estimate a node will return.
func BufferedGasLimit(estimate uint64) uint64 {
	return (estimate*6 + 4) / 5
}

// transact runs one on-chain write: estimate gas against the signer account,
// apply the 20% buffer, fetch the current gas price, sign offline, broadcast
// and wait for the receipt. Returns the transaction hash. No retries; a
// failed broadcast surfaces once and the caller decides what to do.
func (c *Client) transact(ctx context.Context, method string, args ...interface{}) (string, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return "", fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	from := c.signer.Address()

	estimate, err := c.backend.EstimateGas(ctx, ethereum.CallMsg{
		From: from,
		To:   &c.contract,
		Data: data,
	})
	if err != nil {
		return "", fmt.Errorf("failed to estimate gas for %s: %w", method, err)
	}
	gasLimit := BufferedGasLimit(estimate)

	gasPrice, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get gas price: %w", err)
	}

	nonce, err := c.backend.PendingNonceAt(ctx, from)
	if err != nil {
		return "", fmt.Errorf("failed to get nonce: %w", err)
	}

	chainID, err := c.backend.ChainID(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get chain ID: %w", err)
	}

	tx := ethtypes.NewTransaction(nonce, c.contract, big.NewInt(0), gasLimit, gasPrice, data)
	signedTx, err := ethtypes.SignTx(tx, ethtypes.NewEIP155Signer(chainID), c.signer.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := c.backend.SendTransaction(ctx, signedTx); err != nil {
		return "", fmt.Errorf("failed to send %s transaction: %w", method, err)
	}

	txHash := signedTx.Hash().Hex()
	c.logger.Infof("Sent %s tx %s (gas limit %d, estimate %d)", method, txHash, gasLimit, estimate)

	receipt, err := bind.WaitMined(ctx, c.backend, signedTx)
	if err != nil {
		return "", fmt.Errorf("failed waiting for %s receipt: %w", method, err)
	}
	if receipt.Status != ethtypes.ReceiptStatusSuccessful {
		return "", fmt.Errorf("%s transaction %s reverted", method, txHash)
	}

	c.logger.Infof("Confirmed %s tx %s in block %s, gas used %d", method, txHash, receipt.BlockNumber, receipt.GasUsed)
	return txHash, nil
}
