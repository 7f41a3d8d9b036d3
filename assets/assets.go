// Package assets embeds the default arenas and characters.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/riftbrawl/content"
	"github.com/automoto/riftbrawl/shared/leveldata"
)

const (
	LevelsDir     = "levels"
	CharactersDir = "characters"
)

var (
	//go:embed levels/*.tmx
	levelFS embed.FS

	//go:embed characters/*.yaml
	characterFS embed.FS
)

func Levels() fs.FS     { return levelFS }
func Characters() fs.FS { return characterFS }

// LoadLevels returns the embedded arenas keyed by name, plus the sorted names.
func LoadLevels() (map[string]*leveldata.LevelDef, []string, error) {
	return leveldata.LoadAllLevels(levelFS, LevelsDir)
}

func MustLoadLevels() (map[string]*leveldata.LevelDef, []string) {
	levels, names, err := LoadLevels()
	if err != nil {
		panic(fmt.Sprintf("assets: %v", err))
	}
	return levels, names
}

// LoadCharacters fills reg with the embedded characters.
func LoadCharacters(reg *content.Registry) error {
	return reg.Load(characterFS, CharactersDir)
}
