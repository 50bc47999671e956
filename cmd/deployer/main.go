package main

import (
	"fmt"
	"log"
	"math/big"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/urfave/cli/v2"

	"github.com/timeboost-labs/keymanager-contracts/internal/deployer/config"
	"github.com/timeboost-labs/keymanager-contracts/pkg/chainio"
	"github.com/timeboost-labs/keymanager-contracts/pkg/client/signer"
	"github.com/timeboost-labs/keymanager-contracts/pkg/deployer"
	"github.com/timeboost-labs/keymanager-contracts/pkg/events"
	"github.com/timeboost-labs/keymanager-contracts/pkg/logging"
)

func main() {
	app := &cli.App{
		Name:        "keymanager-deployer",
		Usage:       "KeyManager committee contract operations",
		Description: "Deploys the KeyManager contract behind an ERC1967 proxy and watches committee registrations.",
		Commands: []*cli.Command{
			{
				Name:   "deploy",
				Usage:  "Deploy the implementation and proxy, print the proxy address",
				Action: runDeploy,
			},
			{
				Name:   "watch",
				Usage:  "Stream CommitteeCreated events from a deployed proxy",
				Action: runWatch,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalln("Application failed. Message:", err)
	}
}

func setup(process logging.ProcessName) (logging.Logger, error) {
	if err := config.Init(); err != nil {
		return nil, err
	}
	if err := logging.InitServiceLogger(logging.LoggerConfig{
		ProcessName:   process,
		IsDevelopment: config.IsDevMode(),
	}); err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}
	return logging.GetServiceLogger(), nil
}

func runDeploy(cliCtx *cli.Context) error {
	logger, err := setup(logging.DeployerProcess)
	if err != nil {
		return err
	}
	defer logging.Shutdown()

	ctx, stop := signal.NotifyContext(cliCtx.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	account, err := signer.FromMnemonic(config.GetMnemonic(), config.GetAccountIndex())
	if err != nil {
		return err
	}
	logger.Info("Deploying as", "account", account.Address().Hex())

	client, err := ethclient.DialContext(ctx, config.GetRPCUrl())
	if err != nil {
		return fmt.Errorf("dial rpc endpoint %s: %w", config.GetRPCUrl(), err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("fetch chain id: %w", err)
	}
	auth, err := account.NewTransactor(chainID)
	if err != nil {
		return err
	}

	manager := common.HexToAddress(config.GetManagerAddress())
	proxyAddr, err := deployer.DeployKeyManagerContract(ctx, client, auth, manager, logger)
	if err != nil {
		return err
	}

	fmt.Println(proxyAddr.Hex())
	return nil
}

func runWatch(cliCtx *cli.Context) error {
	logger, err := setup(logging.EventsProcess)
	if err != nil {
		return err
	}
	defer logging.Shutdown()

	if config.GetKeyManagerAddress() == "" {
		return fmt.Errorf("KEY_MANAGER_ADDRESS must be set to watch events")
	}

	ctx, stop := signal.NotifyContext(cliCtx.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clients, err := chainio.BuildClients(ctx, chainio.ClientsConfig{
		RPCURL:            config.GetRPCUrl(),
		WSURL:             config.GetWsRPCUrl(),
		KeyManagerAddress: common.HexToAddress(config.GetKeyManagerAddress()),
		MaxRetries:        config.GetWsMaxRetries(),
		RetryInterval:     config.GetWsRetryInterval(),
	}, nil, logger)
	if err != nil {
		return err
	}
	defer clients.Close()

	sink := make(chan *events.CommitteeCreated, 16)
	sub, err := clients.Subscriber.SubscribeCommitteeCreated(ctx, nil, sink)
	if err != nil {
		return err
	}
	defer sub.Unsubscribe()

	logger.Info("Watching for CommitteeCreated events", "keyManager", config.GetKeyManagerAddress())
	for {
		select {
		case ev := <-sink:
			logger.Info("Committee registered",
				"id", ev.Id,
				"effectiveTimestamp", ev.EffectiveTimestamp,
				"txHash", ev.Raw.TxHash.Hex(),
				"block", ev.Raw.BlockNumber,
			)
			committee, err := clients.Reader.GetCommitteeByID(nil, ev.Id)
			if err != nil {
				logger.Warn("Failed to load committee details", "id", ev.Id, "err", err)
				continue
			}
			logger.Info("Committee details",
				"id", committee.Id,
				"members", len(committee.Members),
				"registeredBlock", bigString(committee.RegisteredBlockNumber),
			)
		case err := <-sub.Err():
			if err != nil {
				return fmt.Errorf("subscription ended: %w", err)
			}
			return nil
		case <-ctx.Done():
			logger.Info("Shutting down")
			return nil
		}
	}
}

func bigString(n *big.Int) string {
	if n == nil {
		return "0"
	}
	return n.String()
}
