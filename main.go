package main

import (
	"flag"
	"log"

	"github.com/automoto/hedgecop/assets"
	"github.com/automoto/hedgecop/config"
	"github.com/automoto/hedgecop/desktop"
	"github.com/automoto/hedgecop/fonts"
	"github.com/automoto/hedgecop/game"
	"github.com/automoto/hedgecop/progress"
)

func main() {
	configPath := flag.String("config", "hedgecop.toml", "optional TOML file overriding game tuning")
	writeDefaults := flag.String("write-config", "", "write the default tuning to this path and exit")
	flag.Parse()

	if *writeDefaults != "" {
		if err := config.WriteDefaults(*writeDefaults); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		return
	}
	if err := config.LoadOverrides(*configPath); err != nil {
		log.Printf("Warning: Ignoring config overrides: %v", err)
		config.Reset()
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Progress and settings share the gdata directory. Without it the game
	// still runs, it just forgets everything on exit.
	var store progress.Store
	var settings desktop.SettingsStore
	if gd, err := progress.OpenGdata(config.C.AppID); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else {
		store = gd
		settings = gd
	}

	g := game.New(assets.MustLoadLevels(), store)
	if err := desktop.Run(g, settings); err != nil {
		log.Fatal(err)
	}
}
