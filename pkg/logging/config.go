package logging

const (
	BaseDataDir = "data"
	LogsDir     = "logs"
)

// ProcessName type to ensure valid process names
type ProcessName string

const (
	DeployerProcess ProcessName = "deployer"
	EventsProcess   ProcessName = "events"
	ChainIOProcess  ProcessName = "chainio"
	TestProcess     ProcessName = "test"
)

type LoggerConfig struct {
	ProcessName   ProcessName
	IsDevelopment bool
}

func NewDefaultConfig(processName ProcessName) LoggerConfig {
	return LoggerConfig{
		ProcessName:   processName,
		IsDevelopment: true,
	}
}
