package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	level := flag.String("log-level", logLevelFromEnv(), "log level: error, warn, info, debug, trace")
	seed := flag.Int64("seed", 0, "random seed for the piece sequence (0 picks one from the clock)")
	theme := flag.String("theme", "", "theme name for this run")
	flag.Parse()

	enabled := *debug || debugFromEnv()
	parsed, levelErr := parseLogLevel(*level)
	if levelErr != nil {
		parsed = levelDebug
	}
	EnableDebugLogging(enabled, parsed)
	if levelErr != nil {
		WarnLogf("log level: %v, using %s", levelErr, parsed)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	InfoLogf("tetris-tui start debug=%v level=%s seed=%d log=%s", enabled, parsed, *seed, debugLogPath())

	config, err := loadConfig()
	if err != nil {
		WarnLogf("load config: %v", err)
	}
	if *theme != "" {
		if themeIndexByName(*theme) < 0 {
			WarnLogf("unknown theme %q", *theme)
		} else {
			config.Theme = *theme
		}
	}

	ctx, err := initAudioContext()
	if err != nil {
		WarnLogf("audio unavailable: %v", err)
	}
	sound := NewSoundEngine(ctx, audioSampleRate, config.Sound)

	rng := rand.New(rand.NewSource(*seed))
	program := tea.NewProgram(NewModel(config, rng, sound), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		ErrorLogf("program error: %v", err)
		os.Exit(1)
	}
}
