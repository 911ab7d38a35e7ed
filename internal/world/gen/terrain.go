package gen

import (
	"github.com/OCharnyshevich/minecraft-world/internal/world"
	"github.com/OCharnyshevich/minecraft-world/internal/world/block"
)

const (
	seaLevel   = 62
	dirtDepth  = 3
	maxTerrain = world.YSize - 1

	forestHeight = 8
)

// TerrainGenerator produces rolling hills from two octave noise fields:
// bedrock floor, stone body, a dirt band, grass on top and water up to sea
// level. Ore veins, trees and flowers are scattered afterwards.
type TerrainGenerator struct {
	base   *Noise
	detail *Noise
	deco   decorator
}

// NewTerrainGenerator creates a TerrainGenerator from a seed.
func NewTerrainGenerator(seed int64) *TerrainGenerator {
	return &TerrainGenerator{
		base:   NewNoise(seed),
		detail: NewNoise(seed + 1),
		deco:   decorator{seed: seed},
	}
}

func (g *TerrainGenerator) Generate(pos world.ChunkPos) *world.Chunk {
	c := world.NewChunk()
	var h heights
	for x := 0; x < world.XSize; x++ {
		for z := 0; z < world.ZSize; z++ {
			gp := world.ChunkToGlobal(pos, world.Pos{X: x, Z: z})
			h[x][z] = g.HeightAt(gp.X, gp.Z)
			g.fillColumn(c, x, z, h[x][z])
			c.SetBiome(world.ColumnIndex(x, z), biomeFor(h[x][z]))
		}
	}
	g.deco.decorate(c, pos, &h)
	c.Place(pos)
	return c
}

func (g *TerrainGenerator) HeightAt(x, z int) int {
	base := g.base.Octaves(float64(x)/128, float64(z)/128, 5, 0.5)
	detail := g.detail.Octaves(float64(x)/32, float64(z)/32, 3, 0.5)
	h := int(seaLevel + base*20 + detail*4)
	return max(1, min(h, maxTerrain))
}

func (g *TerrainGenerator) fillColumn(c *world.Chunk, x, z, height int) {
	set := func(y int, id block.ID) {
		_ = c.SetBlock(world.Pos{X: x, Y: y, Z: z}, id)
	}

	set(0, block.Bedrock)
	top := block.Grass
	if height <= seaLevel+1 {
		top = block.Sand
	}
	for y := 1; y <= height; y++ {
		switch {
		case y == height:
			set(y, top)
		case y >= height-dirtDepth:
			set(y, block.Dirt)
		default:
			set(y, block.Stone)
		}
	}
	for y := height + 1; y <= seaLevel; y++ {
		set(y, block.WaterSource)
	}
}

func biomeFor(height int) block.Biome {
	switch {
	case height < seaLevel:
		return block.BiomeOcean
	case height <= seaLevel+1:
		return block.BiomeBeach
	case height >= seaLevel+forestHeight:
		return block.BiomeForest
	default:
		return block.BiomePlains
	}
}
