package deployer

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/timeboost-labs/keymanager-contracts/pkg/bindings/contractERC1967Proxy"
	"github.com/timeboost-labs/keymanager-contracts/pkg/bindings/contractKeyManager"
	"github.com/timeboost-labs/keymanager-contracts/pkg/logging"
)

// ContractBackend is the minimal chain connection the deployer needs:
// submit transactions and await their receipts. It is satisfied by
// *ethclient.Client and by in-process test backends alike.
type ContractBackend interface {
	bind.ContractBackend
	bind.DeployBackend
}

var (
	// ErrNoContractAddress indicates a mined deployment receipt without a
	// created-contract address.
	ErrNoContractAddress = errors.New("receipt contains no contract address")

	// ErrDeploymentReverted indicates the deployment transaction was mined
	// but reverted.
	ErrDeploymentReverted = errors.New("deployment transaction reverted")
)

// Deployer deploys the KeyManager contract behind an ERC1967 proxy.
// It performs no retries of its own, transient failures from the backend
// are surfaced to the caller.
type Deployer struct {
	backend ContractBackend
	logger  logging.Logger
}

func NewDeployer(backend ContractBackend, logger logging.Logger) *Deployer {
	if logger == nil {
		logger = logging.NoopLogger{}
	}
	return &Deployer{
		backend: backend,
		logger:  logger,
	}
}

// DeployKeyManagerContract deploys the KeyManager implementation contract,
// then an ERC1967 proxy pointing at it, initialized with the given manager
// address. The two transactions are strictly sequential, the proxy needs the
// implementation address as a constructor argument.
//
// The returned address is the proxy's: the stable, upgradeable entry point
// callers must use for all subsequent interaction.
func (d *Deployer) DeployKeyManagerContract(ctx context.Context, auth *bind.TransactOpts, manager common.Address) (common.Address, error) {
	implAddr, err := d.deploy(ctx, "KeyManager", func() (*types.Transaction, error) {
		_, tx, _, err := contractKeyManager.DeployKeyManager(auth, d.backend)
		return tx, err
	})
	if err != nil {
		return common.Address{}, err
	}

	initData, err := initializeCalldata(manager)
	if err != nil {
		return common.Address{}, fmt.Errorf("pack initialize calldata: %w", err)
	}

	proxyAddr, err := d.deploy(ctx, "KeyManagerProxy", func() (*types.Transaction, error) {
		_, tx, _, err := contractERC1967Proxy.DeployERC1967Proxy(auth, d.backend, implAddr, initData)
		return tx, err
	})
	if err != nil {
		return common.Address{}, err
	}

	d.logger.Info("KeyManager deployment complete",
		"implementation", implAddr.Hex(),
		"proxy", proxyAddr.Hex(),
		"manager", manager.Hex(),
	)
	return proxyAddr, nil
}

// deploy submits one creation transaction, waits for inclusion and extracts
// the created contract's address from the receipt.
func (d *Deployer) deploy(ctx context.Context, name string, submit func() (*types.Transaction, error)) (common.Address, error) {
	d.logger.Info("Deploying contract", "contract", name)

	tx, err := submit()
	if err != nil {
		return common.Address{}, fmt.Errorf("submit %s deployment: %w", name, err)
	}
	d.logger.Info("Waiting for deployment tx to be mined", "contract", name, "txHash", tx.Hash().Hex())

	receipt, err := bind.WaitMined(ctx, d.backend, tx)
	if err != nil {
		return common.Address{}, fmt.Errorf("await %s deployment: %w", name, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return common.Address{}, fmt.Errorf("%s: %w", name, ErrDeploymentReverted)
	}
	if receipt.ContractAddress == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%s: %w", name, ErrNoContractAddress)
	}

	d.logger.Info("Deployment tx mined",
		"contract", name,
		"txHash", tx.Hash().Hex(),
		"gasUsed", receipt.GasUsed,
		"address", receipt.ContractAddress.Hex(),
	)
	return receipt.ContractAddress, nil
}

// initializeCalldata packs the initialize(manager) call the proxy forwards
// to the implementation at construction time.
func initializeCalldata(manager common.Address) ([]byte, error) {
	kmABI, err := contractKeyManager.KeyManagerMetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	return kmABI.Pack("initialize", manager)
}

// DeployKeyManagerContract is a convenience wrapper for one-shot callers.
func DeployKeyManagerContract(ctx context.Context, backend ContractBackend, auth *bind.TransactOpts, manager common.Address, logger logging.Logger) (common.Address, error) {
	return NewDeployer(backend, logger).DeployKeyManagerContract(ctx, auth, manager)
}
