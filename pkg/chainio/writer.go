package chainio

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	gethcommon "github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/timeboost-labs/keymanager-contracts/pkg/bindings/contractKeyManager"
	"github.com/timeboost-labs/keymanager-contracts/pkg/deployer"
	"github.com/timeboost-labs/keymanager-contracts/pkg/logging"
)

// ErrTransactionReverted indicates a state-changing call was mined but
// reverted on chain.
var ErrTransactionReverted = errors.New("transaction reverted")

type KeyManagerWriter interface {
	SetNextCommittee(
		ctx context.Context,
		effectiveTimestamp uint64,
		members []contractKeyManager.KeyManagerCommitteeMember,
	) (*gethtypes.Receipt, error)
}

// ChainWriter submits state-changing KeyManager calls and waits for their
// receipts. The transactor it is built with must hold the manager key, the
// contract rejects committee registrations from anyone else.
type ChainWriter struct {
	keyManager *contractKeyManager.KeyManager
	backend    deployer.ContractBackend
	auth       *bind.TransactOpts
	logger     logging.Logger
}

var _ KeyManagerWriter = (*ChainWriter)(nil)

func NewChainWriter(
	keyManager *contractKeyManager.KeyManager,
	backend deployer.ContractBackend,
	auth *bind.TransactOpts,
	logger logging.Logger,
) *ChainWriter {
	return &ChainWriter{
		keyManager: keyManager,
		backend:    backend,
		auth:       auth,
		logger:     logger,
	}
}

func BuildChainWriter(
	keyManagerAddr gethcommon.Address,
	backend deployer.ContractBackend,
	auth *bind.TransactOpts,
	logger logging.Logger,
) (*ChainWriter, error) {
	contractBindings, err := NewContractBindings(keyManagerAddr, backend, logger)
	if err != nil {
		return nil, err
	}
	return NewChainWriter(contractBindings.KeyManager, backend, auth, logger), nil
}

// SetNextCommittee registers the members of the committee that takes over
// at effectiveTimestamp and waits for the transaction to be mined. The
// contract assigns the committee id and announces it via CommitteeCreated.
func (w *ChainWriter) SetNextCommittee(
	ctx context.Context,
	effectiveTimestamp uint64,
	members []contractKeyManager.KeyManagerCommitteeMember,
) (*gethtypes.Receipt, error) {
	opts := *w.auth
	opts.Context = ctx

	tx, err := w.keyManager.SetNextCommittee(&opts, effectiveTimestamp, members)
	if err != nil {
		w.logger.Error("Failed to submit setNextCommittee", "effectiveTimestamp", effectiveTimestamp, "err", err)
		return nil, err
	}
	w.logger.Info("Submitted setNextCommittee", "effectiveTimestamp", effectiveTimestamp, "members", len(members), "txHash", tx.Hash().Hex())

	receipt, err := bind.WaitMined(ctx, w.backend, tx)
	if err != nil {
		return nil, err
	}
	if receipt.Status != gethtypes.ReceiptStatusSuccessful {
		w.logger.Error("setNextCommittee reverted", "txHash", tx.Hash().Hex())
		return receipt, ErrTransactionReverted
	}

	w.logger.Info("setNextCommittee mined", "txHash", tx.Hash().Hex(), "gasUsed", receipt.GasUsed)
	return receipt, nil
}
