package chainio

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	gethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/timeboost-labs/keymanager-contracts/pkg/bindings/contractKeyManager"
	"github.com/timeboost-labs/keymanager-contracts/pkg/logging"
)

type KeyManagerReader interface {
	Manager(opts *bind.CallOpts) (gethcommon.Address, error)

	NextCommitteeID(opts *bind.CallOpts) (uint64, error)

	GetCommitteeByID(
		opts *bind.CallOpts,
		id uint64,
	) (contractKeyManager.KeyManagerCommittee, error)
}

type ChainReader struct {
	logger     logging.Logger
	keyManager *contractKeyManager.KeyManager
}

var _ KeyManagerReader = (*ChainReader)(nil)

func NewChainReader(
	keyManager *contractKeyManager.KeyManager,
	logger logging.Logger,
) *ChainReader {
	return &ChainReader{
		keyManager: keyManager,
		logger:     logger,
	}
}

func BuildChainReader(
	keyManagerAddr gethcommon.Address,
	backend bind.ContractBackend,
	logger logging.Logger,
) (*ChainReader, error) {
	contractBindings, err := NewContractBindings(keyManagerAddr, backend, logger)
	if err != nil {
		return nil, err
	}
	return NewChainReader(contractBindings.KeyManager, logger), nil
}

// Manager returns the account authorized to register committees.
func (r *ChainReader) Manager(opts *bind.CallOpts) (gethcommon.Address, error) {
	manager, err := r.keyManager.Manager(opts)
	if err != nil {
		r.logger.Error("Failed to read manager", "err", err)
		return gethcommon.Address{}, err
	}
	return manager, nil
}

// NextCommitteeID returns the id the next registered committee will get.
func (r *ChainReader) NextCommitteeID(opts *bind.CallOpts) (uint64, error) {
	id, err := r.keyManager.NextCommitteeId(opts)
	if err != nil {
		r.logger.Error("Failed to read nextCommitteeId", "err", err)
		return 0, err
	}
	return id, nil
}

// GetCommitteeByID returns the committee registered under id.
func (r *ChainReader) GetCommitteeByID(opts *bind.CallOpts, id uint64) (contractKeyManager.KeyManagerCommittee, error) {
	committee, err := r.keyManager.GetCommitteeById(opts, id)
	if err != nil {
		r.logger.Error("Failed to read committee", "id", id, "err", err)
		return contractKeyManager.KeyManagerCommittee{}, err
	}
	return committee, nil
}
