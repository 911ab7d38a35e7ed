package gen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OCharnyshevich/minecraft-world/internal/world"
	"github.com/OCharnyshevich/minecraft-world/internal/world/block"
)

// DefaultLayers is the classic superflat stack: bedrock, two dirt, grass.
const DefaultLayers = "bedrock,2*dirt,grass"

// FlatGenerator fills layer i at y == i across the whole chunk. Heights
// above the last layer are air.
type FlatGenerator struct {
	layers []block.ID
}

// NewFlatGenerator creates a FlatGenerator from a bottom-up layer list.
func NewFlatGenerator(layers ...block.ID) *FlatGenerator {
	if len(layers) > world.YSize {
		layers = layers[:world.YSize]
	}
	return &FlatGenerator{layers: append([]block.ID(nil), layers...)}
}

func (g *FlatGenerator) Generate(pos world.ChunkPos) *world.Chunk {
	c := world.NewChunk()
	for x := 0; x < world.XSize; x++ {
		for z := 0; z < world.ZSize; z++ {
			for y, id := range g.layers {
				// Layers are bounded by YSize, so the position is always valid.
				_ = c.SetBlock(world.Pos{X: x, Y: y, Z: z}, id)
			}
			c.SetBiome(world.ColumnIndex(x, z), block.BiomePlains)
		}
	}
	c.Place(pos)
	return c
}

func (g *FlatGenerator) HeightAt(_, _ int) int {
	for y := len(g.layers) - 1; y >= 0; y-- {
		if g.layers[y] != block.Air {
			return y
		}
	}
	return 0
}

// Layers returns the generator's layer list in superflat notation.
func (g *FlatGenerator) Layers() string {
	return FormatLayers(g.layers)
}

// ParseLayers parses superflat notation: comma-separated material names or
// ids, each optionally prefixed by "N*" and by a "minecraft:" namespace.
// An empty string yields DefaultLayers.
func ParseLayers(s string) ([]block.ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = DefaultLayers
	}
	var out []block.ID
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		count := 1
		if n, name, ok := strings.Cut(part, "*"); ok {
			c, err := strconv.Atoi(n)
			if err != nil || c < 1 {
				return nil, fmt.Errorf("layer %q: bad count", part)
			}
			count, part = c, name
		}
		id, ok := block.ByName(strings.TrimPrefix(part, "minecraft:"))
		if !ok {
			return nil, fmt.Errorf("layer %q: unknown material", part)
		}
		for range count {
			out = append(out, id)
		}
	}
	if len(out) > world.YSize {
		return nil, fmt.Errorf("%d layers exceed chunk height %d", len(out), world.YSize)
	}
	return out, nil
}

// FormatLayers is the inverse of ParseLayers, collapsing runs as "N*name".
func FormatLayers(layers []block.ID) string {
	var parts []string
	for i := 0; i < len(layers); {
		j := i
		for j < len(layers) && layers[j] == layers[i] {
			j++
		}
		if n := j - i; n > 1 {
			parts = append(parts, fmt.Sprintf("%d*%s", n, layers[i]))
		} else {
			parts = append(parts, layers[i].String())
		}
		i = j
	}
	return strings.Join(parts, ",")
}
