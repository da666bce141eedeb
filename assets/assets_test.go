package assets

import (
	"testing"

	cfg "github.com/automoto/hedgecop/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLevelsLoad(t *testing.T) {
	levels, err := LoadLevels()
	require.NoError(t, err)
	require.Len(t, levels, 3)

	for i, level := range levels {
		assert.Equal(t, i+1, level.Number)
		assert.NotEmpty(t, level.Name)
		assert.NotEmpty(t, level.Platforms)
		assert.NotEmpty(t, level.EnemySpawns)
		assert.NotEmpty(t, level.CollectibleSpawns)
		assert.Equal(t, cfg.VictoryReachExit, level.Victory)
		assert.Less(t, level.Exit.Right(), level.Width+1, "exit sits inside the level")
		assert.Equal(t, 330.0, level.GroundY)
	}

	assert.Equal(t, "Night Market", levels[0].Name)
}
