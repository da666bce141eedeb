// Command hedgecop-tty plays the game in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/automoto/hedgecop/assets"
	"github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/game"
	"github.com/automoto/hedgecop/progress"
	"github.com/automoto/hedgecop/terminal"
	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "hedgecop.toml", "optional TOML file overriding game tuning")
	savePath := flag.String("save", defaultSavePath(), "progress file")
	logPath := flag.String("log", "", "write log output to this file instead of discarding it")
	flag.Parse()

	// The terminal belongs to tcell while the game runs.
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	if err := config.LoadOverrides(*configPath); err != nil {
		log.Printf("Warning: Ignoring config overrides: %v", err)
		config.Reset()
	}

	levels, err := assets.LoadLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load levels: %v\n", err)
		os.Exit(1)
	}
	g := game.New(levels, &progress.FileStore{Path: *savePath})

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	beeper := terminal.NewBeeper()
	if err := beeper.Initialize(); err != nil {
		log.Printf("Warning: Audio initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	runErr := terminal.NewApp(g, screen, beeper).Run(ctx)
	stop()

	beeper.Close()
	screen.Fini()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "%v\n", runErr)
		os.Exit(1)
	}
}

func defaultSavePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "hedgecop-progress.json"
	}
	return filepath.Join(dir, "hedgecop", "progress.json")
}
