package events

import (
	"errors"
	"fmt"
	"time"

	"github.com/timeboost-labs/keymanager-contracts/pkg/env"
)

const (
	// DefaultMaxRetries is how many times Open re-dials after a failed
	// first attempt before giving up on the endpoint.
	DefaultMaxRetries = 12

	// DefaultRetryInterval is the fixed pause between dial attempts.
	DefaultRetryInterval = 5 * time.Second
)

// Config describes a websocket subscription endpoint and its dial policy.
type Config struct {
	// URL is the ws:// or wss:// endpoint of the node.
	URL string

	// MaxRetries caps how many times a failed dial is retried after the
	// initial attempt.
	MaxRetries int

	// RetryInterval is the fixed delay between dial attempts.
	RetryInterval time.Duration
}

// DefaultConfig returns the dial policy used in production: a dozen
// attempts, five seconds apart.
func DefaultConfig(url string) Config {
	return Config{
		URL:           url,
		MaxRetries:    DefaultMaxRetries,
		RetryInterval: DefaultRetryInterval,
	}
}

func (c Config) Validate() error {
	if env.IsEmpty(c.URL) {
		return errors.New("subscription endpoint URL is empty")
	}
	if !env.IsValidWebSocketURL(c.URL) {
		return fmt.Errorf("subscription endpoint %q is not a ws:// or wss:// URL", c.URL)
	}
	if c.MaxRetries <= 0 {
		return errors.New("MaxRetries must be > 0")
	}
	if c.RetryInterval <= 0 {
		return errors.New("RetryInterval must be positive")
	}
	return nil
}
