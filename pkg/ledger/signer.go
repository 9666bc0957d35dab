package ledger

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signer holds the admin signing credential. It is constructed once at
// startup and injected into the Client; nothing else in the process holds
// the private key.
type Signer struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

func NewSigner(hexKey string) (*Signer, error) {
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	publicKey, ok := key.Public().(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("failed to cast public key to ECDSA")
	}

	return &Signer{
		key:     key,
		address: crypto.PubkeyToAddress(*publicKey),
	}, nil
}

func (s *Signer) Address() common.Address {
	return s.address
}
