package chainio

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/timeboost-labs/keymanager-contracts/pkg/env"
	"github.com/timeboost-labs/keymanager-contracts/pkg/events"
	"github.com/timeboost-labs/keymanager-contracts/pkg/logging"
)

// ClientsConfig describes the endpoints and contract address the chain
// clients are built against.
type ClientsConfig struct {
	// RPCURL is the http(s) endpoint used for calls and transactions.
	RPCURL string

	// WSURL is the ws(s) endpoint used for event subscriptions.
	WSURL string

	// KeyManagerAddress is the proxy address of the KeyManager contract.
	KeyManagerAddress gethcommon.Address

	// MaxRetries and RetryInterval shape the websocket dial policy.
	// Zero values fall back to the defaults.
	MaxRetries    int
	RetryInterval time.Duration
}

func (c ClientsConfig) Validate() error {
	if !env.IsValidRPCURL(c.RPCURL) {
		return fmt.Errorf("rpc endpoint %q is not an http:// or https:// URL", c.RPCURL)
	}
	if !env.IsValidWebSocketURL(c.WSURL) {
		return fmt.Errorf("websocket endpoint %q is not a ws:// or wss:// URL", c.WSURL)
	}
	if c.KeyManagerAddress == (gethcommon.Address{}) {
		return fmt.Errorf("KeyManager address is not set")
	}
	return nil
}

// Clients bundles the reader, writer and subscriber for one KeyManager
// deployment. Writer is nil when no transactor was supplied.
type Clients struct {
	Reader     *ChainReader
	Writer     *ChainWriter
	Subscriber *ChainSubscriber

	EthClient *ethclient.Client
	WSClient  *events.Client
}

func (c *Clients) Close() {
	if c.EthClient != nil {
		c.EthClient.Close()
	}
	if c.WSClient != nil {
		c.WSClient.Close()
	}
}

// BuildClients dials both endpoints and wires up the chain clients. auth
// may be nil for read-only use.
func BuildClients(ctx context.Context, cfg ClientsConfig, auth *bind.TransactOpts, logger logging.Logger) (*Clients, error) {
	if logger == nil {
		logger = logging.NoopLogger{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid clients config: %w", err)
	}

	ethClient, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc endpoint %s: %w", cfg.RPCURL, err)
	}

	wsCfg := events.DefaultConfig(cfg.WSURL)
	if cfg.MaxRetries > 0 {
		wsCfg.MaxRetries = cfg.MaxRetries
	}
	if cfg.RetryInterval > 0 {
		wsCfg.RetryInterval = cfg.RetryInterval
	}
	wsClient, err := events.Open(ctx, wsCfg, logger)
	if err != nil {
		ethClient.Close()
		return nil, err
	}

	reader, err := BuildChainReader(cfg.KeyManagerAddress, ethClient, logger)
	if err != nil {
		ethClient.Close()
		wsClient.Close()
		return nil, err
	}

	var writer *ChainWriter
	if auth != nil {
		writer, err = BuildChainWriter(cfg.KeyManagerAddress, ethClient, auth, logger)
		if err != nil {
			ethClient.Close()
			wsClient.Close()
			return nil, err
		}
	}

	subscriber := NewChainSubscriber(wsClient, cfg.KeyManagerAddress, logger)

	logger.Info("Chain clients ready",
		"keyManager", cfg.KeyManagerAddress.Hex(),
		"rpc", cfg.RPCURL,
		"ws", cfg.WSURL,
		"writer", writer != nil,
	)
	return &Clients{
		Reader:     reader,
		Writer:     writer,
		Subscriber: subscriber,
		EthClient:  ethClient,
		WSClient:   wsClient,
	}, nil
}
