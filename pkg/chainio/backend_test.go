package chainio

import (
	"context"
	"encoding/hex"
	"errors"
	"math/big"
	"sync"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// fakeBackend mines submitted transactions instantly and answers contract
// calls from a canned response table keyed by 4-byte method selector.
type fakeBackend struct {
	mu        sync.Mutex
	chainID   *big.Int
	nonce     uint64
	blockNum  uint64
	txs       []*types.Transaction
	receipts  map[common.Hash]*types.Receipt
	responses map[string][]byte

	revertNext bool
	callErr    error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		chainID:   big.NewInt(1337),
		receipts:  make(map[common.Hash]*types.Receipt),
		responses: make(map[string][]byte),
	}
}

func (f *fakeBackend) respond(selector, output []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[hex.EncodeToString(selector)] = output
}

func (f *fakeBackend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x60}, nil
}

func (f *fakeBackend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.callErr != nil {
		return nil, f.callErr
	}
	if len(call.Data) < 4 {
		return nil, errors.New("call data too short")
	}
	output, ok := f.responses[hex.EncodeToString(call.Data[:4])]
	if !ok {
		return nil, errors.New("execution reverted")
	}
	return output, nil
}

// PendingCodeAt must report deployed code: the transactor refuses to
// estimate gas against an address with no contract behind it.
func (f *fakeBackend) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return []byte{0x60}, nil
}

func (f *fakeBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.nonce, nil
}

func (f *fakeBackend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (f *fakeBackend) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (f *fakeBackend) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	return 500_000, nil
}

func (f *fakeBackend) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &types.Header{
		Number:  new(big.Int).SetUint64(f.blockNum + 1),
		BaseFee: big.NewInt(1_000_000_000),
	}, nil
}

func (f *fakeBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.blockNum++
	receipt := &types.Receipt{
		TxHash:      tx.Hash(),
		Status:      types.ReceiptStatusSuccessful,
		GasUsed:     60_000,
		BlockNumber: new(big.Int).SetUint64(f.blockNum),
	}
	if f.revertNext {
		receipt.Status = types.ReceiptStatusFailed
		f.revertNext = false
	}

	f.txs = append(f.txs, tx)
	f.receipts[tx.Hash()] = receipt
	f.nonce = tx.Nonce() + 1
	return nil
}

func (f *fakeBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	receipt, ok := f.receipts[txHash]
	if !ok {
		return nil, ethereum.NotFound
	}
	return receipt, nil
}

func (f *fakeBackend) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	return nil, nil
}

func (f *fakeBackend) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	return nil, errors.New("not supported")
}
