package chainio

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timeboost-labs/keymanager-contracts/pkg/bindings/contractKeyManager"
	"github.com/timeboost-labs/keymanager-contracts/pkg/logging"
)

var keyManagerAddr = common.HexToAddress("0x00000000000000000000000000000000000000a1")

func keyManagerABI(t *testing.T) *abi.ABI {
	t.Helper()
	kmABI, err := contractKeyManager.KeyManagerMetaData.GetAbi()
	require.NoError(t, err)
	return kmABI
}

// respondMethod wires a canned, ABI-encoded return value for one contract
// method into the fake backend.
func respondMethod(t *testing.T, backend *fakeBackend, name string, outputs ...interface{}) {
	t.Helper()
	method, ok := keyManagerABI(t).Methods[name]
	require.True(t, ok, "method %s not in ABI", name)
	encoded, err := method.Outputs.Pack(outputs...)
	require.NoError(t, err)
	backend.respond(method.ID, encoded)
}

func newTestReader(t *testing.T, backend *fakeBackend) *ChainReader {
	t.Helper()
	reader, err := BuildChainReader(keyManagerAddr, backend, logging.NoopLogger{})
	require.NoError(t, err)
	return reader
}

func TestChainReaderManager(t *testing.T) {
	backend := newFakeBackend()
	manager := common.HexToAddress("0x71C7656EC7ab88b098defB751B7401B5f6d8976F")
	respondMethod(t, backend, "manager", manager)

	reader := newTestReader(t, backend)
	got, err := reader.Manager(&bind.CallOpts{})
	require.NoError(t, err)
	assert.Equal(t, manager, got)
}

func TestChainReaderNextCommitteeID(t *testing.T) {
	backend := newFakeBackend()
	respondMethod(t, backend, "nextCommitteeId", uint64(7))

	reader := newTestReader(t, backend)
	id, err := reader.NextCommitteeID(&bind.CallOpts{})
	require.NoError(t, err)
	assert.Equal(t, uint64(7), id)
}

func TestChainReaderGetCommitteeByID(t *testing.T) {
	backend := newFakeBackend()
	want := contractKeyManager.KeyManagerCommittee{
		Id:                    3,
		RegisteredBlockNumber: big.NewInt(128),
		EffectiveTimestamp:    1_700_000_000,
		Members: []contractKeyManager.KeyManagerCommitteeMember{
			{
				SigKey:             []byte{0x01, 0x02},
				DhKey:              []byte{0x03, 0x04},
				DkgKey:             []byte{0x05, 0x06},
				NetworkAddress:     "node0.example.com:8000",
				BatchPosterAddress: "0x0000000000000000000000000000000000000042",
				SigKeyAddress:      common.HexToAddress("0x0000000000000000000000000000000000000043"),
			},
		},
	}
	respondMethod(t, backend, "getCommitteeById", want)

	reader := newTestReader(t, backend)
	got, err := reader.GetCommitteeByID(&bind.CallOpts{}, 3)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestChainReaderCallFailure(t *testing.T) {
	backend := newFakeBackend()
	// No canned responses: every call reverts.

	reader := newTestReader(t, backend)
	_, err := reader.Manager(&bind.CallOpts{})
	assert.Error(t, err)

	_, err = reader.NextCommitteeID(&bind.CallOpts{})
	assert.Error(t, err)

	_, err = reader.GetCommitteeByID(&bind.CallOpts{}, 0)
	assert.Error(t, err)
}
