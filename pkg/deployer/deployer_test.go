package deployer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timeboost-labs/keymanager-contracts/pkg/logging"
)

func newTestAuth(t *testing.T, backend *fakeBackend) (*bind.TransactOpts, common.Address) {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	auth, err := bind.NewKeyedTransactorWithChainID(key, backend.chainID)
	require.NoError(t, err)

	return auth, crypto.PubkeyToAddress(key.PublicKey)
}

func TestDeployKeyManagerContract(t *testing.T) {
	backend := newFakeBackend()
	auth, from := newTestAuth(t, backend)
	manager := common.HexToAddress("0x71C7656EC7ab88b098defB751B7401B5f6d8976F")

	d := NewDeployer(backend, logging.NoopLogger{})
	proxyAddr, err := d.DeployKeyManagerContract(context.Background(), auth, manager)
	require.NoError(t, err)

	// Implementation first, proxy second; addresses follow the sender's
	// nonce sequence.
	require.Len(t, backend.txs, 2)
	implAddr := crypto.CreateAddress(from, 0)
	assert.Equal(t, crypto.CreateAddress(from, 1), proxyAddr)
	assert.NotEqual(t, implAddr, proxyAddr)

	implTx, proxyTx := backend.txs[0], backend.txs[1]
	assert.Nil(t, implTx.To())
	assert.Nil(t, proxyTx.To())

	// The proxy's constructor arguments carry the implementation address and
	// the encoded initialize(manager) call.
	assert.True(t, bytes.Contains(proxyTx.Data(), common.LeftPadBytes(implAddr.Bytes(), 32)),
		"proxy constructor args should contain the implementation address")

	initData, err := initializeCalldata(manager)
	require.NoError(t, err)
	assert.True(t, bytes.Contains(proxyTx.Data(), initData),
		"proxy constructor args should contain the initialize calldata")
}

func TestDeployKeyManagerContractTwiceYieldsDistinctProxies(t *testing.T) {
	backend := newFakeBackend()
	auth, _ := newTestAuth(t, backend)
	manager := common.HexToAddress("0x0000000000000000000000000000000000000042")

	d := NewDeployer(backend, logging.NoopLogger{})

	first, err := d.DeployKeyManagerContract(context.Background(), auth, manager)
	require.NoError(t, err)
	second, err := d.DeployKeyManagerContract(context.Background(), auth, manager)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, backend.txs, 4)
}

func TestDeployKeyManagerContractRevertedTx(t *testing.T) {
	backend := newFakeBackend()
	backend.revertNext = true
	auth, _ := newTestAuth(t, backend)

	d := NewDeployer(backend, logging.NoopLogger{})
	_, err := d.DeployKeyManagerContract(context.Background(), auth, common.Address{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeploymentReverted)

	// The failed implementation deploy must stop the sequence before the
	// proxy transaction goes out.
	assert.Len(t, backend.txs, 1)
}

func TestDeployKeyManagerContractMissingContractAddress(t *testing.T) {
	backend := newFakeBackend()
	backend.omitAddressNext = true
	auth, _ := newTestAuth(t, backend)

	d := NewDeployer(backend, logging.NoopLogger{})
	_, err := d.DeployKeyManagerContract(context.Background(), auth, common.Address{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoContractAddress)
	assert.Len(t, backend.txs, 1)
}

func TestDeployKeyManagerContractSubmissionFailure(t *testing.T) {
	backend := newFakeBackend()
	backend.sendErr = errors.New("nonce too low")
	auth, _ := newTestAuth(t, backend)

	d := NewDeployer(backend, logging.NoopLogger{})
	_, err := d.DeployKeyManagerContract(context.Background(), auth, common.Address{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "submit KeyManager deployment")
	assert.Empty(t, backend.txs)
}

func TestDeployKeyManagerContractConvenienceWrapper(t *testing.T) {
	backend := newFakeBackend()
	auth, from := newTestAuth(t, backend)

	proxyAddr, err := DeployKeyManagerContract(context.Background(), backend, auth, common.Address{}, nil)
	require.NoError(t, err)
	assert.Equal(t, crypto.CreateAddress(from, 1), proxyAddr)
}

func TestInitializeCalldata(t *testing.T) {
	manager := common.HexToAddress("0x71C7656EC7ab88b098defB751B7401B5f6d8976F")

	data, err := initializeCalldata(manager)
	require.NoError(t, err)

	// 4-byte selector of initialize(address) plus one ABI word.
	require.Len(t, data, 36)
	assert.Equal(t, []byte{0xc4, 0xd6, 0x6d, 0xe8}, data[:4])
	assert.Equal(t, common.LeftPadBytes(manager.Bytes(), 32), data[4:])
}
