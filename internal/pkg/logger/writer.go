package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// LogWriter 供 gorm logger 使用的 Printf 适配, SQL 日志以 gorm 子logger 输出
type LogWriter struct {
	logger *zap.Logger
}

func (l *LogWriter) Printf(format string, args ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func GetWriter() *LogWriter {
	return &LogWriter{logger: Log.Named("gorm").WithOptions(zap.WithCaller(false))}
}
