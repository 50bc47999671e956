package signer

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The standard test mnemonic used by most Ethereum development tooling.
const testMnemonic = "test test test test test test test test test test test junk"

func TestFromMnemonicDerivesKnownAccounts(t *testing.T) {
	// First two accounts every dev-chain tool derives from the test
	// mnemonic at m/44'/60'/0'/0/<index>.
	tests := []struct {
		index   uint32
		address string
	}{
		{0, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"},
		{1, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"},
	}

	for _, tt := range tests {
		s, err := FromMnemonic(testMnemonic, tt.index)
		require.NoError(t, err)
		assert.Equal(t, common.HexToAddress(tt.address), s.Address())
	}
}

func TestFromMnemonicRejectsInvalidWordCount(t *testing.T) {
	_, err := FromMnemonic("not a valid mnemonic", 0)
	assert.Error(t, err)
}

func TestFromPrivateKey(t *testing.T) {
	// First dev-chain account's private key.
	s, err := FromPrivateKey("ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), s.Address())
}

func TestFromPrivateKeyRejectsGarbage(t *testing.T) {
	_, err := FromPrivateKey("zz")
	assert.Error(t, err)
}

func TestNewTransactor(t *testing.T) {
	s, err := FromMnemonic(testMnemonic, 0)
	require.NoError(t, err)

	auth, err := s.NewTransactor(big.NewInt(1337))
	require.NoError(t, err)
	assert.Equal(t, s.Address(), auth.From)
	assert.NotNil(t, auth.Signer)
}
