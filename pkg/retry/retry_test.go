package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timeboost-labs/keymanager-contracts/pkg/logging"
)

func TestRetry(t *testing.T) {
	logger := logging.NoopLogger{}

	tests := []struct {
		name           string
		failures       int
		config         *Config
		expectedResult string
		expectError    bool
	}{
		{
			name:           "success on first try",
			failures:       0,
			config:         DefaultConfig(),
			expectedResult: "success",
		},
		{
			name:     "success after retries",
			failures: 2,
			config: &Config{
				MaxRetries:    3,
				InitialDelay:  time.Millisecond,
				MaxDelay:      10 * time.Millisecond,
				BackoffFactor: 2.0,
				JitterFactor:  0.1,
			},
			expectedResult: "success",
		},
		{
			name:     "failure after all retries",
			failures: 3,
			config: &Config{
				MaxRetries:    2,
				InitialDelay:  time.Millisecond,
				MaxDelay:      10 * time.Millisecond,
				BackoffFactor: 2.0,
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			operation := func() (string, error) {
				calls++
				if calls <= tt.failures {
					return "", errors.New("operation failed")
				}
				return "success", nil
			}

			result, err := Retry(context.Background(), operation, tt.config, logger)
			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, tt.config.MaxRetries, calls)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedResult, result)
		})
	}
}

func TestRetry_ContextCancelled_StopsRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Retry(ctx, func() (int, error) {
		return 0, errors.New("never succeeds")
	}, DefaultConfig(), logging.NoopLogger{})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetry_InvalidConfig_ReturnsError(t *testing.T) {
	config := &Config{
		MaxRetries:    0,
		InitialDelay:  time.Millisecond,
		MaxDelay:      time.Millisecond,
		BackoffFactor: 2.0,
	}

	_, err := Retry(context.Background(), func() (int, error) { return 1, nil }, config, logging.NoopLogger{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid retry config")
}

func TestFixedIntervalConfig(t *testing.T) {
	config := FixedIntervalConfig(12, 5*time.Second)
	require.NoError(t, config.Validate())
	assert.Equal(t, 12, config.MaxRetries)
	assert.Equal(t, 5*time.Second, config.InitialDelay)
	assert.Equal(t, 1.0, config.BackoffFactor)

	// A fixed interval config must never grow its delay.
	assert.Equal(t, 5*time.Second, nextDelay(config.InitialDelay, config.BackoffFactor, config.MaxDelay))
}

func TestRetryFunc(t *testing.T) {
	calls := 0
	err := RetryFunc(context.Background(), func() error {
		calls++
		if calls < 2 {
			return errors.New("not yet")
		}
		return nil
	}, &Config{
		MaxRetries:    3,
		InitialDelay:  time.Millisecond,
		MaxDelay:      time.Millisecond,
		BackoffFactor: 1.0,
	}, logging.NoopLogger{})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
