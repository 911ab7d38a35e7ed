// Package gen fills chunks from templates: flat layer stacks and seeded
// noise terrain.
package gen

import (
	"fmt"

	"github.com/OCharnyshevich/minecraft-world/internal/world"
)

// Generator produces chunk contents deterministically.
type Generator interface {
	// Generate returns a new chunk placed at pos.
	Generate(pos world.ChunkPos) *world.Chunk
	// HeightAt returns the y of the highest solid voxel of a global column.
	HeightAt(x, z int) int
}

// New returns the generator registered under kind ("flat" or "terrain").
func New(kind string, seed int64, layers string) (Generator, error) {
	switch kind {
	case "flat", "":
		ls, err := ParseLayers(layers)
		if err != nil {
			return nil, err
		}
		return NewFlatGenerator(ls...), nil
	case "terrain":
		return NewTerrainGenerator(seed), nil
	default:
		return nil, fmt.Errorf("unknown generator %q", kind)
	}
}

// Fill generates a side×side square of chunks in the grid corner and returns
// them in row order, ready for world.FromChunks.
func Fill(g Generator, side int) []*world.Chunk {
	chunks := make([]*world.Chunk, 0, side*side)
	for x := 0; x < side; x++ {
		for z := 0; z < side; z++ {
			chunks = append(chunks, g.Generate(world.ChunkPos{X: x, Z: z}))
		}
	}
	return chunks
}
