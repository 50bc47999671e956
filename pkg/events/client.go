package events

import (
	"context"
	"errors"
	"fmt"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/timeboost-labs/keymanager-contracts/pkg/logging"
	"github.com/timeboost-labs/keymanager-contracts/pkg/retry"
)

// ErrConnectionFailed indicates the websocket endpoint could not be reached
// within the configured dial policy.
var ErrConnectionFailed = errors.New("could not establish subscription connection")

// LogSubscriber is the slice of the node API the subscription machinery
// needs. *ethclient.Client and *Client both satisfy it, as do in-process
// test fakes.
type LogSubscriber interface {
	SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error)
}

// Client is a websocket connection to a node, established with retries.
type Client struct {
	eth    *ethclient.Client
	logger logging.Logger
}

// Open dials the configured websocket endpoint, retrying at a fixed
// interval until it connects or the attempt budget is spent.
func Open(ctx context.Context, cfg Config, logger logging.Logger) (*Client, error) {
	if logger == nil {
		logger = logging.NoopLogger{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid subscription config: %w", err)
	}

	logger.Info("Connecting to subscription endpoint", "url", cfg.URL, "maxRetries", cfg.MaxRetries)

	eth, err := retry.Retry(ctx, func() (*ethclient.Client, error) {
		return ethclient.DialContext(ctx, cfg.URL)
	}, dialRetryConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %w", ErrConnectionFailed, cfg.URL, err)
	}

	logger.Info("Connected to subscription endpoint", "url", cfg.URL)
	return &Client{eth: eth, logger: logger}, nil
}

// dialRetryConfig converts the dial policy into a retry budget. MaxRetries
// counts retries after the initial attempt, so the total attempt count is
// MaxRetries+1.
func dialRetryConfig(cfg Config) *retry.Config {
	return retry.FixedIntervalConfig(cfg.MaxRetries+1, cfg.RetryInterval)
}

// SubscribeFilterLogs implements LogSubscriber.
func (c *Client) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	return c.eth.SubscribeFilterLogs(ctx, query, ch)
}

// Eth exposes the underlying ethclient connection for read and write calls
// that share the websocket transport.
func (c *Client) Eth() *ethclient.Client {
	return c.eth
}

func (c *Client) Close() {
	c.eth.Close()
}
