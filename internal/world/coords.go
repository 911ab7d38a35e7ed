package world

import "fmt"

// Chunk and grid dimensions.
const (
	XSize = 16
	YSize = 128
	ZSize = 16

	// ChunkVolume is the number of voxels held by one chunk.
	ChunkVolume = XSize * YSize * ZSize // 32768
	// ColumnCount is the number of vertical columns (and biome entries) per chunk.
	ColumnCount = XSize * ZSize // 256

	// ChunksPerDirection is the side length of the square chunk grid.
	ChunksPerDirection = 32
	// SlotCount is the fixed number of chunk slots in a world.
	SlotCount = ChunksPerDirection * ChunksPerDirection // 1024
)

// Pos is a voxel position, either global (world space) or local to a chunk.
type Pos struct {
	X, Y, Z int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// InChunk reports whether p is a valid chunk-local position.
func (p Pos) InChunk() bool {
	return p.X >= 0 && p.X < XSize &&
		p.Y >= 0 && p.Y < YSize &&
		p.Z >= 0 && p.Z < ZSize
}

// ChunkPos is a position in the chunk grid. The world has a single vertical
// layer of chunks, so there is no Y component.
type ChunkPos struct {
	X, Z int
}

func (c ChunkPos) String() string {
	return fmt.Sprintf("[%d,%d]", c.X, c.Z)
}

// InGrid reports whether c addresses one of the world's slots.
func (c ChunkPos) InGrid() bool {
	return c.X >= 0 && c.X < ChunksPerDirection &&
		c.Z >= 0 && c.Z < ChunksPerDirection
}

// GlobalToChunk splits a global position into the chunk that contains it and
// the position local to that chunk. Division floors, so local X and Z are
// never negative. Y is copied unchanged: there is only one layer of chunks,
// and a Y outside [0, YSize) must stay visible to bounds checks.
func GlobalToChunk(p Pos) (ChunkPos, Pos) {
	c := ChunkPos{X: floorDiv(p.X, XSize), Z: floorDiv(p.Z, ZSize)}
	local := Pos{X: floorMod(p.X, XSize), Y: p.Y, Z: floorMod(p.Z, ZSize)}
	return c, local
}

// ChunkToGlobal is the inverse of GlobalToChunk. Y is copied unchanged.
func ChunkToGlobal(c ChunkPos, local Pos) Pos {
	return Pos{
		X: c.X*XSize + local.X,
		Y: local.Y,
		Z: c.Z*ZSize + local.Z,
	}
}

// LinearIndex returns the voxel index of a chunk-local position. Y varies
// fastest, then Z, then X. local must satisfy InChunk.
func LinearIndex(local Pos) int {
	return local.Y + local.Z*YSize + local.X*ZSize*YSize
}

// IndexToLocal is the inverse of LinearIndex.
func IndexToLocal(i int) Pos {
	col := i / YSize
	return Pos{X: col / ZSize, Y: i % YSize, Z: col % ZSize}
}

// ColumnIndex returns the biome index of the column at local x, z.
func ColumnIndex(x, z int) int {
	return x*ZSize + z
}

// SlotIndex maps a grid position to its slot, row-major by X.
func SlotIndex(c ChunkPos) int {
	return c.X*ChunksPerDirection + c.Z
}

// SlotPos is the inverse of SlotIndex.
func SlotPos(i int) ChunkPos {
	return ChunkPos{X: i / ChunksPerDirection, Z: i % ChunksPerDirection}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
