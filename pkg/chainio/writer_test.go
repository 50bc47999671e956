package chainio

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timeboost-labs/keymanager-contracts/pkg/bindings/contractKeyManager"
	"github.com/timeboost-labs/keymanager-contracts/pkg/logging"
)

func newTestWriter(t *testing.T, backend *fakeBackend) *ChainWriter {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	auth, err := bind.NewKeyedTransactorWithChainID(key, backend.chainID)
	require.NoError(t, err)

	writer, err := BuildChainWriter(keyManagerAddr, backend, auth, logging.NoopLogger{})
	require.NoError(t, err)
	return writer
}

func testMembers() []contractKeyManager.KeyManagerCommitteeMember {
	return []contractKeyManager.KeyManagerCommitteeMember{
		{
			SigKey:             []byte{0xaa},
			DhKey:              []byte{0xbb},
			DkgKey:             []byte{0xcc},
			NetworkAddress:     "node0.example.com:8000",
			BatchPosterAddress: "0x0000000000000000000000000000000000000042",
			SigKeyAddress:      common.HexToAddress("0x0000000000000000000000000000000000000043"),
		},
	}
}

func TestChainWriterSetNextCommittee(t *testing.T) {
	backend := newFakeBackend()
	writer := newTestWriter(t, backend)

	receipt, err := writer.SetNextCommittee(context.Background(), 1_700_000_000, testMembers())
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)

	require.Len(t, backend.txs, 1)
	tx := backend.txs[0]
	require.NotNil(t, tx.To())
	assert.Equal(t, keyManagerAddr, *tx.To())

	method := keyManagerABI(t).Methods["setNextCommittee"]
	require.Greater(t, len(tx.Data()), 4)
	assert.Equal(t, method.ID, tx.Data()[:4])

	args, err := method.Inputs.Unpack(tx.Data()[4:])
	require.NoError(t, err)
	require.Len(t, args, 2)
	assert.Equal(t, uint64(1_700_000_000), args[0])
}

func TestChainWriterSetNextCommitteeReverted(t *testing.T) {
	backend := newFakeBackend()
	backend.revertNext = true
	writer := newTestWriter(t, backend)

	receipt, err := writer.SetNextCommittee(context.Background(), 1_700_000_000, testMembers())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransactionReverted)
	require.NotNil(t, receipt)
	assert.Equal(t, types.ReceiptStatusFailed, receipt.Status)
}
