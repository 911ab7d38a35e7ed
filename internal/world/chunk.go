package world

import (
	"fmt"

	"github.com/OCharnyshevich/minecraft-world/internal/world/block"
)

// Chunk is a dense XSize×YSize×ZSize block of voxels plus one biome per
// column. Voxel attributes live in parallel arrays addressed by LinearIndex.
type Chunk struct {
	pos    ChunkPos
	placed bool

	materials  [ChunkVolume]block.ID
	meta       [ChunkVolume]uint8
	skyLight   [ChunkVolume]uint8
	blockLight [ChunkVolume]uint8
	biomes     [ColumnCount]block.Biome
}

// NewChunk returns an unplaced chunk filled with air.
func NewChunk() *Chunk {
	return &Chunk{}
}

// Pos returns the chunk's grid position. ok is false until the chunk has
// been placed into a world or decoded from a file.
func (c *Chunk) Pos() (pos ChunkPos, ok bool) {
	return c.pos, c.placed
}

// Place stamps the chunk with a grid position. A World addresses the voxels
// of a stored chunk by the slot holding it, so re-stamping a stored chunk does
// not move it.
func (c *Chunk) Place(pos ChunkPos) {
	c.pos = pos
	c.placed = true
}

// Cell returns the attributes of the voxel at linear index i.
func (c *Chunk) Cell(i int) Cell {
	return Cell{
		Material:   c.materials[i],
		Meta:       c.meta[i],
		SkyLight:   c.skyLight[i],
		BlockLight: c.blockLight[i],
	}
}

// SetCell replaces the attributes of the voxel at linear index i.
func (c *Chunk) SetCell(i int, cell Cell) error {
	if i < 0 || i >= ChunkVolume {
		return fmt.Errorf("voxel index %d: %w", i, ErrPositionOutOfBounds)
	}
	if err := cell.Validate(); err != nil {
		return err
	}
	c.materials[i] = cell.Material
	c.meta[i] = cell.Meta
	c.skyLight[i] = cell.SkyLight
	c.blockLight[i] = cell.BlockLight
	return nil
}

// Block returns the voxel at a chunk-local position.
func (c *Chunk) Block(local Pos) (Voxel, error) {
	if !local.InChunk() {
		return Voxel{}, fmt.Errorf("local %v: %w", local, ErrPositionOutOfBounds)
	}
	return c.voxel(LinearIndex(local)), nil
}

// SetBlock sets the material of the voxel at a chunk-local position. Meta is
// replaced only when given; light is left untouched.
func (c *Chunk) SetBlock(local Pos, material block.ID, meta ...uint8) error {
	if !local.InChunk() {
		return fmt.Errorf("local %v: %w", local, ErrPositionOutOfBounds)
	}
	i := LinearIndex(local)
	if len(meta) > 0 {
		if meta[0] > maxNibble {
			return fmt.Errorf("meta %d: %w", meta[0], ErrNibbleRange)
		}
		c.meta[i] = meta[0]
	}
	c.materials[i] = material
	return nil
}

// Biome returns the biome of the column at index col (see ColumnIndex).
// col must be in [0, ColumnCount).
func (c *Chunk) Biome(col int) block.Biome {
	return c.biomes[col]
}

// SetBiome sets the biome of the column at index col, which must be in
// [0, ColumnCount).
func (c *Chunk) SetBiome(col int, b block.Biome) {
	c.biomes[col] = b
}

// Voxels yields every voxel of the chunk in linear order.
func (c *Chunk) Voxels(yield func(Voxel) bool) {
	for i := range ChunkVolume {
		if !yield(c.voxel(i)) {
			return
		}
	}
}

// Equal reports whether two chunks hold the same position and data.
func (c *Chunk) Equal(o *Chunk) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.pos == o.pos && c.placed == o.placed &&
		c.materials == o.materials &&
		c.meta == o.meta &&
		c.skyLight == o.skyLight &&
		c.blockLight == o.blockLight &&
		c.biomes == o.biomes
}

func (c *Chunk) String() string {
	if !c.placed {
		return "chunk{unplaced}"
	}
	return fmt.Sprintf("chunk{%v}", c.pos)
}

func (c *Chunk) voxel(i int) Voxel {
	return Voxel{Cell: c.Cell(i), pos: ChunkToGlobal(c.pos, IndexToLocal(i))}
}
