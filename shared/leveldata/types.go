// Package leveldata provides arena definitions parsed from TMX files.
// It has no dependencies on donburi or resolv, only plain data.
package leveldata

// Point is a position in level coordinates. Y grows downward.
type Point struct {
	X, Y float64
}

// LevelDef describes one arena. The playable area spans x in
// [Origin.X, Origin.X+Width] and y in [Origin.Y-Height, Origin.Y].
type LevelDef struct {
	Name         string
	Origin       Point
	Width        float64
	Height       float64
	Gravity      float64
	MaxVelocityX float64
	Background   string
	SpawnPoints  []Point // On the floor unless the map places them
}
