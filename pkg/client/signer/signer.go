package signer

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	hdwallet "github.com/miguelmota/go-ethereum-hdwallet"

	"github.com/timeboost-labs/keymanager-contracts/pkg/env"
)

// Signer holds one account derived from a BIP-39 mnemonic at the standard
// Ethereum derivation path m/44'/60'/0'/0/<index>.
type Signer struct {
	privateKey *ecdsa.PrivateKey
	address    common.Address
}

// FromMnemonic derives the account at accountIndex from the mnemonic.
func FromMnemonic(mnemonic string, accountIndex uint32) (*Signer, error) {
	if !env.IsValidMnemonic(mnemonic) {
		return nil, fmt.Errorf("mnemonic must be 12, 15, 18, 21 or 24 words")
	}

	wallet, err := hdwallet.NewFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("parse mnemonic: %w", err)
	}

	path := hdwallet.MustParseDerivationPath(fmt.Sprintf("m/44'/60'/0'/0/%d", accountIndex))
	account, err := wallet.Derive(path, false)
	if err != nil {
		return nil, fmt.Errorf("derive account %d: %w", accountIndex, err)
	}

	privateKey, err := wallet.PrivateKey(account)
	if err != nil {
		return nil, fmt.Errorf("extract private key: %w", err)
	}

	return &Signer{
		privateKey: privateKey,
		address:    account.Address,
	}, nil
}

// FromPrivateKey wraps a raw hex-encoded private key.
func FromPrivateKey(hexKey string) (*Signer, error) {
	privateKey, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	return &Signer{
		privateKey: privateKey,
		address:    crypto.PubkeyToAddress(privateKey.PublicKey),
	}, nil
}

func (s *Signer) Address() common.Address {
	return s.address
}

// NewTransactor returns transaction options signing with this account for
// the given chain.
func (s *Signer) NewTransactor(chainID *big.Int) (*bind.TransactOpts, error) {
	return bind.NewKeyedTransactorWithChainID(s.privateKey, chainID)
}
