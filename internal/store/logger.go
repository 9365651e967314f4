package store

import (
	"fmt"
	"log/slog"
)

// driverLogger routes the driver's internal log lines to slog.
type driverLogger struct {
	logger *slog.Logger
}

func (l driverLogger) Error(name string, id string, err error) {
	l.logger.Error("neo4j driver error", "driver", name, "id", id, "error", err)
}

func (l driverLogger) Warnf(name string, id string, msg string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(msg, args...), "driver", name, "id", id)
}

// Infof is logged at debug level; the driver is chatty about pool state.
func (l driverLogger) Infof(name string, id string, msg string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(msg, args...), "driver", name, "id", id)
}

func (l driverLogger) Debugf(name string, id string, msg string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(msg, args...), "driver", name, "id", id)
}
