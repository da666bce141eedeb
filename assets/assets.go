package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/hedgecop/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelsDir is the directory holding the .tmx files inside FS.
const LevelsDir = "levels"

// FS exposes the embedded assets.
func FS() fs.FS {
	return assetFS
}

// LoadLevels parses every embedded level in file-name order.
func LoadLevels() ([]*leveldata.Level, error) {
	return leveldata.LoadAll(assetFS, LevelsDir)
}

// MustLoadLevels is LoadLevels for startup code that cannot continue without levels.
func MustLoadLevels() []*leveldata.Level {
	levels, err := LoadLevels()
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}
	return levels
}
