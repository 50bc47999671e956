package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"

	"github.com/timeboost-labs/keymanager-contracts/pkg/env"
	"github.com/timeboost-labs/keymanager-contracts/pkg/events"
)

var (
	devMode bool

	rpcURL   string
	wsRPCURL string

	mnemonic     string
	accountIndex uint32

	managerAddress    string
	keyManagerAddress string

	wsMaxRetries    int
	wsRetryInterval time.Duration
)

// Init loads .env and validates everything the deployer needs up front.
// KEY_MANAGER_ADDRESS stays optional, it only exists after a deployment.
func Init() error {
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("error loading .env file: %w", err)
	}

	devMode = env.GetEnvBool("DEV_MODE", false)

	rpcURL = env.GetEnvString("RPC_URL", "")
	if !env.IsValidRPCURL(rpcURL) {
		return fmt.Errorf("invalid RPC_URL: %q", rpcURL)
	}

	wsRPCURL = env.GetEnvString("WS_RPC_URL", "")
	if !env.IsValidWebSocketURL(wsRPCURL) {
		return fmt.Errorf("invalid WS_RPC_URL: %q", wsRPCURL)
	}

	mnemonic = env.GetEnvString("MNEMONIC", "")
	if !env.IsValidMnemonic(mnemonic) {
		return fmt.Errorf("invalid MNEMONIC: must be 12, 15, 18, 21 or 24 words")
	}
	accountIndex = env.GetEnvUint32("ACCOUNT_INDEX", 0)

	managerAddress = env.GetEnvString("MANAGER_ADDRESS", "")
	if !env.IsValidEthAddress(managerAddress) {
		return fmt.Errorf("invalid MANAGER_ADDRESS: %q", managerAddress)
	}

	keyManagerAddress = env.GetEnvString("KEY_MANAGER_ADDRESS", "")
	if !env.IsEmpty(keyManagerAddress) && !env.IsValidEthAddress(keyManagerAddress) {
		return fmt.Errorf("invalid KEY_MANAGER_ADDRESS: %q", keyManagerAddress)
	}

	wsMaxRetries = env.GetEnvInt("WS_MAX_RETRIES", events.DefaultMaxRetries)
	if wsMaxRetries <= 0 {
		return fmt.Errorf("invalid WS_MAX_RETRIES: %d", wsMaxRetries)
	}
	wsRetryInterval = env.GetEnvDuration("WS_RETRY_INTERVAL", events.DefaultRetryInterval)
	if wsRetryInterval <= 0 {
		return fmt.Errorf("invalid WS_RETRY_INTERVAL: %s", wsRetryInterval)
	}

	return nil
}

func IsDevMode() bool { return devMode }

func GetRPCUrl() string { return rpcURL }

func GetWsRPCUrl() string { return wsRPCURL }

func GetMnemonic() string { return mnemonic }

func GetAccountIndex() uint32 { return accountIndex }

func GetManagerAddress() string { return managerAddress }

func GetKeyManagerAddress() string { return keyManagerAddress }

func GetWsMaxRetries() int { return wsMaxRetries }

func GetWsRetryInterval() time.Duration { return wsRetryInterval }
