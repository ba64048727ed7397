package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

const logFlags = log.Ldate | log.Ltime | log.Lshortfile

var (
	Info  *log.Logger
	Warn  *log.Logger
	Error *log.Logger
	Debug *log.Logger
	Trace *log.Logger

	currentLevel LogLevel
)

func StringToLogLevel(value string) LogLevel {
	switch strings.ToLower(value) {
	case "error":
		return ERROR
	case "warn":
		return WARN
	case "info":
		return INFO
	case "debug":
		return DEBUG
	case "trace":
		return TRACE
	}
	log.Printf("Invalid log level: '%s'. Returning INFO", value)
	return INFO
}

func (s LogLevel) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	}
	return "UNKNOWN"
}

// Loggers discard everything until Initialize is called so that library
// code can log unconditionally.
func init() {
	InitializeWithWriter(ERROR, io.Discard, io.Discard)
}

func Initialize(logLevel LogLevel) {
	InitializeWithWriter(logLevel, os.Stderr, os.Stdout)
	Info.Printf("Initialized loggers: '%s'", logLevel.String())
}

// InitializeWithWriter routes errors to errorWriter and every other enabled
// level to writer. Levels above logLevel are discarded.
func InitializeWithWriter(logLevel LogLevel, errorWriter io.Writer, writer io.Writer) {
	currentLevel = logLevel
	levelWriter := func(level LogLevel, w io.Writer) io.Writer {
		if logLevel >= level {
			return w
		}
		return io.Discard
	}

	Error = log.New(levelWriter(ERROR, errorWriter), "ERROR: ", logFlags)
	Warn = log.New(levelWriter(WARN, writer), "WARN:  ", logFlags)
	Info = log.New(levelWriter(INFO, writer), "INFO:  ", logFlags)
	Debug = log.New(levelWriter(DEBUG, writer), "DEBUG: ", logFlags)
	Trace = log.New(levelWriter(TRACE, writer), "TRACE: ", logFlags)
}

// IsLogLevel reports whether messages of level are written. Use it to skip
// computing expensive log arguments.
func IsLogLevel(level LogLevel) bool {
	return currentLevel >= level
}
