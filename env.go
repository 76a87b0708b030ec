package main

import (
	"os"
	"strings"
)

const (
	envConfigDir = "TETRIS_TUI_CONFIG_DIR"
	envDebug     = "TETRIS_TUI_DEBUG"
	envLogLevel  = "TETRIS_TUI_LOG_LEVEL"
)

// defaultLogLevel can be baked in at build time with -ldflags "-X main.defaultLogLevel=trace".
var defaultLogLevel = "debug"

func debugFromEnv() bool {
	return strings.EqualFold(strings.TrimSpace(os.Getenv(envDebug)), "true")
}

func logLevelFromEnv() string {
	if value := strings.TrimSpace(os.Getenv(envLogLevel)); value != "" {
		return value
	}
	return defaultLogLevel
}
