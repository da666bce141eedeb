package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/BurntSushi/toml"
)

// overrides mirrors the tunable sections of a TOML settings file. Sections
// that are absent keep their current values.
type overrides struct {
	Game        *Config            `toml:"game"`
	Player      *PlayerConfig      `toml:"player"`
	Weapons     *WeaponsConfig     `toml:"weapons"`
	Enemy       *EnemyConfig       `toml:"enemy"`
	Collectible *CollectibleConfig `toml:"collectible"`
	Spawner     *SpawnerConfig     `toml:"spawner"`
	Score       *ScoreConfig       `toml:"score"`
	Camera      *CameraConfig      `toml:"camera"`
	Loop        *LoopConfig        `toml:"loop"`
}

// LoadOverrides applies a TOML settings file on top of the defaults. A missing
// file is not an error.
func LoadOverrides(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	o := overrides{
		Game:        C,
		Player:      &Player,
		Weapons:     &Weapons,
		Enemy:       &Enemy,
		Collectible: &Collectible,
		Spawner:     &Spawner,
		Score:       &Score,
		Camera:      &Camera,
		Loop:        &Loop,
	}

	md, err := toml.DecodeFile(path, &o)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("Warning: Unknown setting %q in %s", key.String(), path)
	}
	return nil
}

// WriteDefaults writes the current tuning to path so it can be edited.
func WriteDefaults(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	o := overrides{
		Game:        C,
		Player:      &Player,
		Weapons:     &Weapons,
		Enemy:       &Enemy,
		Collectible: &Collectible,
		Spawner:     &Spawner,
		Score:       &Score,
		Camera:      &Camera,
		Loop:        &Loop,
	}
	return toml.NewEncoder(f).Encode(o)
}
