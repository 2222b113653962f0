package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedArena(t *testing.T) {
	arena, err := LoadArena("arena.tmx")
	require.NoError(t, err)

	assert.Equal(t, 800, arena.Width)
	assert.Equal(t, 600, arena.Height)
	assert.Equal(t, 400.0, arena.PlayerSpawn.X)
	assert.Equal(t, 300.0, arena.PlayerSpawn.Y)
	require.Len(t, arena.Enemies, 2)
	assert.Equal(t, "Circler", arena.Enemies[0].EnemyType)
	assert.Equal(t, "Lancer", arena.Enemies[1].EnemyType)

	names, err := ArenaNames()
	require.NoError(t, err)
	assert.Contains(t, names, "arena")
}
