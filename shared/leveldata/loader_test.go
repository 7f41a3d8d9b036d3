package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/riftbrawl/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mapHeader = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="40" height="20" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="5">
`

const arenaTMX = mapHeader + ` <objectgroup id="1" name="Arena">
  <object id="1" name="bounds" x="20" y="-1000" width="600" height="1000">
   <properties>
    <property name="background" value="sky"/>
    <property name="gravity" type="float" value="1200"/>
    <property name="maxVelocityX" type="float" value="650.5"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="2" x="500" y="0">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
   <point/>
  </object>
  <object id="3" x="100" y="0">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

const evenTMX = mapHeader + ` <objectgroup id="1" name="Arena">
  <object id="1" x="0" y="-1000" width="500" height="1000">
   <properties>
    <property name="spawnCount" type="int" value="3"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

const bareTMX = mapHeader + `</map>
`

func TestLoadLevelReadsArena(t *testing.T) {
	fsys := fstest.MapFS{"levels/arena.tmx": {Data: []byte(arenaTMX)}}

	def, err := LoadLevel(fsys, "levels/arena.tmx")
	require.NoError(t, err)

	assert.Equal(t, "arena", def.Name)
	assert.Equal(t, Point{X: 20, Y: 0}, def.Origin)
	assert.Equal(t, 600.0, def.Width)
	assert.Equal(t, 1000.0, def.Height)
	assert.Equal(t, 1200.0, def.Gravity)
	assert.Equal(t, 650.5, def.MaxVelocityX)
	assert.Equal(t, "sky", def.Background)
	assert.Equal(t, []Point{{X: 100, Y: 0}, {X: 500, Y: 0}}, def.SpawnPoints)
}

func TestLoadLevelSpreadsDefaultSpawns(t *testing.T) {
	fsys := fstest.MapFS{"even.tmx": {Data: []byte(evenTMX)}}

	def, err := LoadLevel(fsys, "even.tmx")
	require.NoError(t, err)

	assert.Equal(t, []Point{{X: 0, Y: 0}, {X: 250, Y: 0}, {X: 500, Y: 0}}, def.SpawnPoints)
	assert.Equal(t, config.Physics.Gravity, def.Gravity)
	assert.Equal(t, config.Physics.MaxVelocityX, def.MaxVelocityX)
}

func TestLoadLevelWithoutArenaUsesMap(t *testing.T) {
	fsys := fstest.MapFS{"bare.tmx": {Data: []byte(bareTMX)}}

	def, err := LoadLevel(fsys, "bare.tmx")
	require.NoError(t, err)

	assert.Equal(t, 640.0, def.Width)
	assert.Equal(t, 320.0, def.Height)
	assert.Equal(t, Point{X: 0, Y: 320}, def.Origin)
	assert.Len(t, def.SpawnPoints, config.Physics.SpawnCount)
	assert.Equal(t, Point{X: 64, Y: 320}, def.SpawnPoints[1])
}

func TestLoadLevelErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.tmx": {Data: []byte("<map")},
		"flat.tmx": {Data: []byte(mapHeader + ` <objectgroup id="1" name="Arena">
  <object id="1" x="0" y="0" width="100" height="0"/>
 </objectgroup>
</map>
`)},
	}

	_, err := LoadLevel(fsys, "missing.tmx")
	assert.ErrorContains(t, err, "load TMX missing.tmx")

	_, err = LoadLevel(fsys, "broken.tmx")
	assert.Error(t, err)

	_, err = LoadLevel(fsys, "flat.tmx")
	assert.ErrorContains(t, err, "positive size")
}

func TestEvenSpawnPoints(t *testing.T) {
	assert.Equal(t, []Point{{X: 60, Y: 5}}, EvenSpawnPoints(Point{X: 10, Y: 5}, 100, 1))

	points := EvenSpawnPoints(Point{}, 500, 11)
	require.Len(t, points, 11)
	assert.Equal(t, 0.0, points[0].X)
	assert.Equal(t, 50.0, points[1].X)
	assert.Equal(t, 500.0, points[10].X)
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/zeta.tmx":  {Data: []byte(evenTMX)},
		"levels/arena.tmx": {Data: []byte(arenaTMX)},
		"levels/notes.txt": {Data: []byte("ignored")},
	}

	levels, names, err := LoadAllLevels(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"arena", "zeta"}, names)
	assert.Len(t, levels, 2)
	assert.Equal(t, "sky", levels["arena"].Background)

	_, _, err = LoadAllLevels(fstest.MapFS{}, "levels")
	assert.ErrorIs(t, err, ErrNoLevels)
}
