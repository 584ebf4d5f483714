package config

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	namedLoggersMu sync.Mutex
	namedLoggers   = map[string]*logrus.Logger{}
	namedLevel     = logrus.InfoLevel
)

// NamedLogger creates named package logger.
func NamedLogger(name string) *logrus.Logger {
	namedLoggersMu.Lock()
	defer namedLoggersMu.Unlock()

	if logger, ok := namedLoggers[name]; ok {
		return logger
	}
	logger := &logrus.Logger{
		Out: os.Stderr,
		Formatter: &CustomTextFormatter{
			TextFormatter: logrus.TextFormatter{
				ForceColors:      true,
				CallerPrettyfier: hideCaller,
			},
			name: name,
		},
		Hooks:        make(logrus.LevelHooks),
		Level:        namedLevel,
		ReportCaller: true,
	}
	namedLoggers[name] = logger
	return logger
}

// SetLoggingLevel changes the level of every named logger, present and future.
func SetLoggingLevel(level logrus.Level) {
	namedLoggersMu.Lock()
	defer namedLoggersMu.Unlock()

	namedLevel = level
	for _, logger := range namedLoggers {
		logger.SetLevel(level)
	}
}

// CustomTextFormatter ...
type CustomTextFormatter struct {
	logrus.TextFormatter
	name string
}

// Format renders a single log entry prefixed with the logger name and the
// location of the logging call.
func (f *CustomTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	file, no := "?", 0
	if entry.HasCaller() {
		file, no = path.Base(entry.Caller.File), entry.Caller.Line
	}
	entry.Message = fmt.Sprintf("[%s][%-15s:%03d] %s", f.name, file, no, entry.Message)
	return f.TextFormatter.Format(entry)
}

// hideCaller keeps the caller out of the text fields, Format already prints it.
func hideCaller(*runtime.Frame) (string, string) {
	return "", ""
}
