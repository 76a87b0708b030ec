package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type logLevel int

const (
	levelError logLevel = iota
	levelWarn
	levelInfo
	levelDebug
	levelTrace
)

func (l logLevel) String() string {
	switch l {
	case levelError:
		return "error"
	case levelWarn:
		return "warn"
	case levelInfo:
		return "info"
	case levelDebug:
		return "debug"
	case levelTrace:
		return "trace"
	default:
		return "unknown"
	}
}

var errUnknownLogLevel = errors.New("unknown log level")

// parseLogLevel accepts error, warn, info, debug and trace.
func parseLogLevel(value string) (logLevel, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "error":
		return levelError, nil
	case "warn":
		return levelWarn, nil
	case "info":
		return levelInfo, nil
	case "debug":
		return levelDebug, nil
	case "trace":
		return levelTrace, nil
	default:
		return levelError, fmt.Errorf("%w: %q", errUnknownLogLevel, value)
	}
}

var (
	debugEnabled bool
	debugLevel   = levelDebug
	debugMu      sync.Mutex
	debugOut     io.Writer
	sessionID    = uuid.NewString()
)

func EnableDebugLogging(enabled bool, level logLevel) {
	debugMu.Lock()
	defer debugMu.Unlock()
	debugEnabled = enabled
	debugLevel = level
}

func debugLogPath() string {
	return filepath.Join(os.TempDir(), "tetris-tui-debug.log")
}

// setLogOutput replaces the log sink. A nil writer falls back to the temp file.
func setLogOutput(w io.Writer) {
	debugMu.Lock()
	defer debugMu.Unlock()
	debugOut = w
}

func logf(level logLevel, format string, args ...any) {
	debugMu.Lock()
	defer debugMu.Unlock()
	if !debugEnabled || level > debugLevel {
		return
	}
	if debugOut == nil {
		file, err := os.OpenFile(debugLogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return
		}
		debugOut = file
	}
	timestamp := time.Now().Format(time.RFC3339)
	message := fmt.Sprintf(format, args...)
	message = strings.ReplaceAll(message, "\n", " ")
	_, _ = fmt.Fprintf(debugOut, "%s %s session=%s %s\n", timestamp, level, sessionID, message)
}

func ErrorLogf(format string, args ...any) { logf(levelError, format, args...) }
func WarnLogf(format string, args ...any) { logf(levelWarn, format, args...) }
func InfoLogf(format string, args ...any) { logf(levelInfo, format, args...) }
func DebugLogf(format string, args ...any) { logf(levelDebug, format, args...) }
func TraceLogf(format string, args ...any) { logf(levelTrace, format, args...) }
