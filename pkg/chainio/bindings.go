package chainio

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	gethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/timeboost-labs/keymanager-contracts/pkg/bindings/contractKeyManager"
	"github.com/timeboost-labs/keymanager-contracts/pkg/logging"
)

// ContractBindings bundles the bound KeyManager contract. All interaction
// goes through the proxy address, never the implementation directly.
type ContractBindings struct {
	KeyManagerAddr gethcommon.Address
	KeyManager     *contractKeyManager.KeyManager
}

func NewContractBindings(
	keyManagerAddr gethcommon.Address,
	backend bind.ContractBackend,
	logger logging.Logger,
) (*ContractBindings, error) {
	keyManager, err := contractKeyManager.NewKeyManager(keyManagerAddr, backend)
	if err != nil {
		logger.Error("Failed to bind KeyManager contract", "err", err)
		return nil, err
	}

	return &ContractBindings{
		KeyManagerAddr: keyManagerAddr,
		KeyManager:     keyManager,
	}, nil
}
