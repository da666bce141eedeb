package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/hedgecop/collision"
	cfg "github.com/automoto/hedgecop/config"
	"github.com/lafriks/go-tiled"
)

// Object group names understood by the loader.
const (
	GroupPlatforms        = "Platforms"
	GroupPlayerSpawn      = "PlayerSpawn"
	GroupEnemySpawn       = "EnemySpawn"
	GroupCollectibleSpawn = "CollectibleSpawn"
	GroupExit             = "Exit"
)

// Load parses a TMX file into a Level. It takes an fs.FS so callers can pass
// the embedded levels or a fstest.MapFS in tests.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:    levelMap.Properties.GetString("name"),
		Width:   float64(levelMap.Width * levelMap.TileWidth),
		Height:  float64(levelMap.Height * levelMap.TileHeight),
		Victory: cfg.VictoryCondition(levelMap.Properties.GetString("victory")),
	}
	if level.Name == "" {
		level.Name = strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")
	}
	if level.Victory == "" {
		level.Victory = cfg.VictoryReachExit
	}
	if level.Width <= 0 || level.Height <= 0 {
		return nil, fmt.Errorf("level %s has no area", tmxPath)
	}

	var hasSpawn, hasExit bool
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlatforms:
			for _, o := range og.Objects {
				kind := cfg.PlatformLedge
				if objectClass(o) == "ground" {
					kind = cfg.PlatformGround
				}
				level.Platforms = append(level.Platforms, Platform{
					Rect: collision.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Kind: kind,
				})
			}
		case GroupPlayerSpawn:
			if len(og.Objects) > 0 {
				level.PlayerStartX = og.Objects[0].X
				level.PlayerStartY = og.Objects[0].Y
				hasSpawn = true
			}
		case GroupEnemySpawn:
			for _, o := range og.Objects {
				kind := objectClass(o)
				if _, err := cfg.ParseEnemyKind(kind); err != nil {
					return nil, fmt.Errorf("level %s: %w", tmxPath, err)
				}
				level.EnemySpawns = append(level.EnemySpawns, SpawnDescriptor{
					X:           o.X,
					Y:           o.Y,
					Type:        kind,
					PatrolRange: o.Properties.GetFloat("patrolRange"),
				})
			}
		case GroupCollectibleSpawn:
			for _, o := range og.Objects {
				kind := objectClass(o)
				if _, err := cfg.ParseCollectibleKind(kind); err != nil {
					return nil, fmt.Errorf("level %s: %w", tmxPath, err)
				}
				level.CollectibleSpawns = append(level.CollectibleSpawns, SpawnDescriptor{
					X:    o.X,
					Y:    o.Y,
					Type: kind,
				})
			}
		case GroupExit:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				level.Exit = collision.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
				hasExit = true
			}
		}
	}

	if !hasSpawn {
		return nil, fmt.Errorf("level %s has no %s object", tmxPath, GroupPlayerSpawn)
	}
	if level.Victory == cfg.VictoryReachExit && !hasExit {
		return nil, fmt.Errorf("level %s has no %s object", tmxPath, GroupExit)
	}

	level.GroundY = level.Height
	for _, p := range level.Platforms {
		if p.Kind == cfg.PlatformGround && p.Rect.Y < level.GroundY {
			level.GroundY = p.Rect.Y
		}
	}

	return level, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys and returns them
// sorted by file name and numbered from 1.
func LoadAll(fsys fs.FS, levelsDir string) ([]*Level, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}
	sort.Strings(matches)

	levels := make([]*Level, 0, len(matches))
	for i, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, err
		}
		level.Number = i + 1
		levels = append(levels, level)
	}
	return levels, nil
}

func objectClass(o *tiled.Object) string {
	if o.Class != "" {
		return o.Class
	}
	return o.Type //nolint:staticcheck // TMX uses type= attribute
}
