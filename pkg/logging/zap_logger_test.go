package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZapLogger_ValidConfig_CreatesLoggerSuccessfully(t *testing.T) {
	tests := []struct {
		name   string
		config LoggerConfig
	}{
		{
			name: "development mode",
			config: LoggerConfig{
				ProcessName:   TestProcess,
				IsDevelopment: true,
			},
		},
		{
			name: "production mode",
			config: LoggerConfig{
				ProcessName:   DeployerProcess,
				IsDevelopment: false,
			},
		},
		{
			name: "events process",
			config: LoggerConfig{
				ProcessName:   EventsProcess,
				IsDevelopment: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewZapLogger(tt.config)

			assert.NoError(t, err)
			assert.NotNil(t, logger)
			assert.NotNil(t, logger.sugarLogger)
		})
	}
}

func TestNewZapLogger_CreatesLogDirectory(t *testing.T) {
	config := LoggerConfig{
		ProcessName:   TestProcess,
		IsDevelopment: true,
	}

	logger, err := NewZapLogger(config)
	require.NoError(t, err)
	require.NotNil(t, logger)

	logDir := filepath.Join(BaseDataDir, LogsDir, string(TestProcess))
	info, err := os.Stat(logDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	t.Cleanup(func() { _ = os.RemoveAll(BaseDataDir) })
}

func TestZapLogger_With_ReturnsChildLogger(t *testing.T) {
	logger, err := NewZapLogger(NewDefaultConfig(TestProcess))
	require.NoError(t, err)

	child := logger.With("component", "test")
	assert.NotNil(t, child)
	assert.NotSame(t, logger, child)

	// Both parent and child must stay usable.
	logger.Info("parent message")
	child.Info("child message", "key", "value")

	t.Cleanup(func() { _ = os.RemoveAll(BaseDataDir) })
}

func TestGetServiceLogger_Uninitialized_Panics(t *testing.T) {
	if manager.serviceLogger != nil {
		t.Skip("service logger already initialized by another test")
	}
	assert.Panics(t, func() { GetServiceLogger() })
}

func TestInitServiceLogger_InitializesOnce(t *testing.T) {
	err := InitServiceLogger(NewDefaultConfig(TestProcess))
	require.NoError(t, err)

	first := GetServiceLogger()
	require.NotNil(t, first)

	// A second init is a no-op, the same logger stays registered.
	err = InitServiceLogger(NewDefaultConfig(DeployerProcess))
	require.NoError(t, err)
	assert.Same(t, first, GetServiceLogger())

	t.Cleanup(func() { _ = os.RemoveAll(BaseDataDir) })
}
