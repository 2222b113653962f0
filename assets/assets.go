package assets

import (
	"embed"
	"io/fs"
	"path"

	"github.com/automoto/telegraph/leveldata"
)

var (
	//go:embed levels/*.tmx
	assetFS embed.FS
)

const levelsDir = "levels"

// LevelFS exposes the embedded level files.
func LevelFS() fs.FS {
	return assetFS
}

// LoadArena loads an embedded level by file name, e.g. "arena.tmx".
func LoadArena(name string) (*leveldata.Arena, error) {
	return leveldata.LoadArena(assetFS, path.Join(levelsDir, name))
}

// MustLoadArena is LoadArena for startup paths.
func MustLoadArena(name string) *leveldata.Arena {
	arena, err := LoadArena(name)
	if err != nil {
		panic(err)
	}
	return arena
}

// ArenaNames lists the embedded levels.
func ArenaNames() ([]string, error) {
	_, names, err := leveldata.LoadAllArenas(assetFS, levelsDir)
	return names, err
}
