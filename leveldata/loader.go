package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	cfg "github.com/automoto/telegraph/config"
	"github.com/lafriks/go-tiled"
)

var (
	ErrNoPlayerSpawn     = errors.New("no PlayerSpawn object")
	ErrUnknownAttackType = errors.New("unknown attack type")
	ErrNonFiniteProperty = errors.New("property is NaN or infinite")
)

// LoadArena parses a TMX file into an Arena. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	foundPlayer := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			if len(og.Objects) > 0 && !foundPlayer {
				o := og.Objects[0]
				arena.PlayerSpawn = Spawn{X: o.X, Y: o.Y}
				foundPlayer = true
			}
		case "EnemySpawn":
			for _, o := range og.Objects {
				spawn, err := parseEnemy(o)
				if err != nil {
					return nil, fmt.Errorf("%s: object %d: %w", tmxPath, o.ID, err)
				}
				arena.Enemies = append(arena.Enemies, spawn)
			}
		}
	}
	if !foundPlayer {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoPlayerSpawn)
	}

	// Keep enemy order stable regardless of editor object order
	sort.SliceStable(arena.Enemies, func(i, j int) bool {
		if arena.Enemies[i].X != arena.Enemies[j].X {
			return arena.Enemies[i].X < arena.Enemies[j].X
		}
		return arena.Enemies[i].Y < arena.Enemies[j].Y
	})

	return arena, nil
}

func parseEnemy(o *tiled.Object) (EnemySpawn, error) {
	spawn := EnemySpawn{
		Spawn:     Spawn{X: o.X, Y: o.Y},
		EnemyType: o.Properties.GetString(PropEnemyType),
		Overrides: map[string]float64{},
	}
	if spawn.EnemyType == "" {
		spawn.EnemyType = o.Type
	}

	if s := o.Properties.GetString(PropAttackType); s != "" {
		at, err := cfg.ParseAttackType(s)
		if err != nil {
			return EnemySpawn{}, fmt.Errorf("%w: %q", ErrUnknownAttackType, s)
		}
		spawn.AttackType = &at
	}

	for _, name := range floatProps {
		raw := o.Properties.GetString(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return EnemySpawn{}, fmt.Errorf("property %s: %w", name, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return EnemySpawn{}, fmt.Errorf("property %s: %w (%q)", name, ErrNonFiniteProperty, raw)
		}
		spawn.Overrides[name] = v
	}
	return spawn, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		arena, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		arenas[arena.Name] = arena
		names = append(names, arena.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
