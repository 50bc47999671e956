package logging

import "sync"

type loggerManager struct {
	serviceLogger Logger
	once          sync.Once
}

var manager = &loggerManager{}

func InitServiceLogger(config LoggerConfig) error {
	var err error
	manager.once.Do(func() {
		manager.serviceLogger, err = NewZapLogger(config)
	})
	return err
}

func GetServiceLogger() Logger {
	if manager.serviceLogger == nil {
		panic("logger not initialized")
	}
	return manager.serviceLogger
}

// Shutdown safely cleans up the logger
func Shutdown() {
	if zl, ok := manager.serviceLogger.(*ZapLogger); ok && zl != nil {
		// Ignore sync errors on shutdown as they're expected for stdout
		_ = zl.sugarLogger.Sync()
		_ = zl.rotator.Close()
	}
}
