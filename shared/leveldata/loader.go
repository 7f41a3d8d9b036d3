package leveldata

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/automoto/riftbrawl/config"
	"github.com/lafriks/go-tiled"
)

// ErrNoLevels is returned when a directory holds no .tmx files.
var ErrNoLevels = errors.New("no levels found")

const (
	arenaGroup = "Arena"
	spawnGroup = "PlayerSpawn"
)

// properties is satisfied by go-tiled property lists.
type properties interface {
	Get(name string) []string
	GetString(name string) string
	GetInt(name string) int
	GetFloat(name string) float64
}

// LoadLevel parses a TMX file into a level definition. The first object of
// the Arena group sets the bounds, with its bottom edge as the floor, and its
// properties override gravity, maxVelocityX, background and spawnCount. Without
// an Arena group the whole map is the arena. Objects of the PlayerSpawn group
// become spawn points; without them spawnCount points are spread evenly along
// the floor.
func LoadLevel(fsys fs.FS, tmxPath string) (*LevelDef, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	def := &LevelDef{
		Name:         strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:        float64(levelMap.Width * levelMap.TileWidth),
		Height:       float64(levelMap.Height * levelMap.TileHeight),
		Gravity:      config.Physics.Gravity,
		MaxVelocityX: config.Physics.MaxVelocityX,
	}
	def.Origin = Point{X: 0, Y: def.Height}
	spawnCount := config.Physics.SpawnCount

	for _, og := range levelMap.ObjectGroups {
		if og.Name != arenaGroup || len(og.Objects) == 0 {
			continue
		}
		o := og.Objects[0]
		def.Origin = Point{X: o.X, Y: o.Y + o.Height}
		def.Width = o.Width
		def.Height = o.Height

		def.Gravity = floatProp(o.Properties, "gravity", def.Gravity)
		def.MaxVelocityX = floatProp(o.Properties, "maxVelocityX", def.MaxVelocityX)
		def.Background = o.Properties.GetString("background")
		if len(o.Properties.Get("spawnCount")) > 0 {
			spawnCount = o.Properties.GetInt("spawnCount")
		}
		break
	}

	if def.Width <= 0 || def.Height <= 0 {
		return nil, fmt.Errorf("level %s: arena must have a positive size, got %gx%g", tmxPath, def.Width, def.Height)
	}

	type spawn struct {
		Point
		index int
	}
	var spawns []spawn
	for _, og := range levelMap.ObjectGroups {
		if og.Name != spawnGroup {
			continue
		}
		for _, o := range og.Objects {
			spawns = append(spawns, spawn{
				Point: Point{X: o.X, Y: o.Y},
				index: o.Properties.GetInt("spawnIndex"),
			})
		}
	}

	if len(spawns) > 0 {
		// Left to right, spawnIndex breaks ties.
		slices.SortStableFunc(spawns, func(a, b spawn) int {
			return cmp.Or(cmp.Compare(a.X, b.X), cmp.Compare(a.index, b.index))
		})
		for _, s := range spawns {
			def.SpawnPoints = append(def.SpawnPoints, s.Point)
		}
	} else {
		if spawnCount < 1 {
			return nil, fmt.Errorf("level %s: spawnCount must be at least 1, got %d", tmxPath, spawnCount)
		}
		def.SpawnPoints = EvenSpawnPoints(def.Origin, def.Width, spawnCount)
	}

	return def, nil
}

// EvenSpawnPoints spreads n points along the floor from the left wall to the
// right wall. A single point sits in the middle.
func EvenSpawnPoints(origin Point, width float64, n int) []Point {
	if n == 1 {
		return []Point{{X: origin.X + width/2, Y: origin.Y}}
	}
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: origin.X + float64(i)*width/float64(n-1), Y: origin.Y}
	}
	return points
}

func floatProp(props properties, name string, fallback float64) float64 {
	if len(props.Get(name)) == 0 {
		return fallback
	}
	return props.GetFloat(name)
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each
// one, and returns them keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*LevelDef, []string, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("%w in %s", ErrNoLevels, levelsDir)
	}

	levels := make(map[string]*LevelDef, len(matches))
	names := make([]string, 0, len(matches))

	for _, p := range matches {
		def, err := LoadLevel(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		levels[def.Name] = def
		names = append(names, def.Name)
	}

	slices.Sort(names)
	return levels, names, nil
}
