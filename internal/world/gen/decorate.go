package gen

import (
	"math/rand/v2"

	"github.com/OCharnyshevich/minecraft-world/internal/world"
	"github.com/OCharnyshevich/minecraft-world/internal/world/block"
)

// Log and leaves meta values.
const (
	woodOak   uint8 = 0
	woodBirch uint8 = 2
)

type oreConfig struct {
	id       block.ID
	minY     int
	maxY     int
	veinSize int
	attempts int
}

var ores = []oreConfig{
	{block.CoalOre, 1, 128, 12, 20},
	{block.IronOre, 1, 64, 8, 20},
	{block.GoldOre, 1, 32, 8, 2},
	{block.DiamondOre, 1, 16, 6, 1},
	{block.RedstoneOre, 1, 16, 6, 8},
	{block.LapisOre, 1, 32, 6, 1},
}

// decorator places ore veins, trees and flowers into a generated chunk.
// Features never cross the chunk border.
type decorator struct {
	seed int64
}

type heights = [world.XSize][world.ZSize]int

func (d decorator) rng(pos world.ChunkPos, salt uint64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(d.seed), uint64(pos.X)*341873128712+uint64(pos.Z)*132897987541+salt))
}

func (d decorator) decorate(c *world.Chunk, pos world.ChunkPos, h *heights) {
	d.placeOres(c, d.rng(pos, 500), h)
	d.placeTrees(c, d.rng(pos, 600), h)
}

func (d decorator) placeOres(c *world.Chunk, rng *rand.Rand, h *heights) {
	for _, ore := range ores {
		for range ore.attempts {
			x, z := rng.IntN(world.XSize), rng.IntN(world.ZSize)
			y := ore.minY + rng.IntN(ore.maxY-ore.minY)
			if y >= h[x][z] {
				continue
			}
			placeVein(c, x, y, z, ore, rng, h)
		}
	}
}

// placeVein random-walks from the start voxel, replacing stone only.
func placeVein(c *world.Chunk, x, y, z int, ore oreConfig, rng *rand.Rand, h *heights) {
	for range ore.veinSize {
		p := world.Pos{X: x, Y: y, Z: z}
		if p.InChunk() && y >= 1 && y < h[x][z] {
			if v, err := c.Block(p); err == nil && v.Material == block.Stone {
				_ = c.SetBlock(p, ore.id)
			}
		}
		switch rng.IntN(6) {
		case 0:
			x++
		case 1:
			x--
		case 2:
			y++
		case 3:
			y--
		case 4:
			z++
		case 5:
			z--
		}
	}
}

func treesForBiome(b block.Biome) int {
	switch b {
	case block.BiomeForest:
		return 6
	case block.BiomePlains:
		return 1
	default:
		return 0
	}
}

func (d decorator) placeTrees(c *world.Chunk, rng *rand.Rand, h *heights) {
	centre := c.Biome(world.ColumnIndex(world.XSize/2, world.ZSize/2))
	for range treesForBiome(centre) {
		x, z := rng.IntN(world.XSize), rng.IntN(world.ZSize)
		y := h[x][z]
		if v, err := c.Block(world.Pos{X: x, Y: y, Z: z}); err != nil || v.Material != block.Grass {
			continue
		}
		wood := woodOak
		if c.Biome(world.ColumnIndex(x, z)) == block.BiomeForest && rng.IntN(3) == 0 {
			wood = woodBirch
		}
		placeTree(c, x, y+1, z, wood, rng)
	}

	for range 4 {
		x, z := rng.IntN(world.XSize), rng.IntN(world.ZSize)
		p := world.Pos{X: x, Y: h[x][z] + 1, Z: z}
		if !p.InChunk() {
			continue
		}
		below, _ := c.Block(world.Pos{X: x, Y: h[x][z], Z: z})
		here, _ := c.Block(p)
		if below.Material != block.Grass || here.Material != block.Air {
			continue
		}
		flower := block.YellowFlower
		if rng.IntN(2) == 0 {
			flower = block.CyanFlower
		}
		_ = c.SetBlock(p, flower)
	}
}

// placeTree grows a trunk of 4-6 logs with a leaf canopy around its top.
func placeTree(c *world.Chunk, x, baseY, z int, wood uint8, rng *rand.Rand) {
	trunk := 4 + rng.IntN(3)
	if baseY+trunk+2 > world.YSize {
		return
	}
	for y := baseY; y < baseY+trunk; y++ {
		_ = c.SetBlock(world.Pos{X: x, Y: y, Z: z}, block.Log, wood)
	}

	leafBase := baseY + trunk - 2
	for dy := range 4 {
		radius := 2
		if dy >= 2 {
			radius = 1
		}
		for dx := -radius; dx <= radius; dx++ {
			for dz := -radius; dz <= radius; dz++ {
				// Round off the wide layers.
				if radius == 2 && abs(dx) == 2 && abs(dz) == 2 && rng.IntN(2) == 0 {
					continue
				}
				p := world.Pos{X: x + dx, Y: leafBase + dy, Z: z + dz}
				if !p.InChunk() {
					continue
				}
				if v, err := c.Block(p); err == nil && v.Material == block.Air {
					_ = c.SetBlock(p, block.Leaves, wood)
				}
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
