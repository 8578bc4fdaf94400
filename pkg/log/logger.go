package log

import (
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

// Level controls which messages reach the sink
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level:.4s}]%{color:reset} %{message}`,
)

var (
	leveledBackend logging.LeveledBackend
	currentLevel   = Notice
)

// Logger is a leveled logger tagged with a module name
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for a module
func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetSink redirects every logger to w. The current level is kept.
func SetSink(w io.Writer) {
	backend := logging.NewLogBackend(w, "", 0)
	leveledBackend = logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	logging.SetBackend(leveledBackend)
	SetLevel(currentLevel)
}

// SetLevel sets the verbosity for all modules
func SetLevel(level Level) {
	currentLevel = level
	leveledBackend.SetLevel(toLogging(level), "")
}

func toLogging(level Level) logging.Level {
	switch level {
	case Debug:
		return logging.DEBUG
	case Info:
		return logging.INFO
	case Warning:
		return logging.WARNING
	case Error:
		return logging.ERROR
	default:
		return logging.NOTICE
	}
}

// Printer adapts a Logger to the Printf interface used by the renderer.
// Lines are logged at info level with any trailing newline removed.
type Printer struct {
	Logger Logger
}

// Printf logs a formatted line at info level
func (p Printer) Printf(format string, args ...interface{}) {
	p.Logger.Infof(strings.TrimSuffix(format, "\n"), args...)
}

func init() {
	SetSink(os.Stdout)
}
