package world

import (
	"fmt"
	"iter"
	"math"

	"github.com/OCharnyshevich/minecraft-world/internal/world/block"
)

// Slot is one cell of the chunk grid: either Empty or holding a chunk.
// The zero value is Empty.
type Slot struct {
	chunk *Chunk
}

// Occupied returns a slot holding c. A nil chunk yields an Empty slot.
func Occupied(c *Chunk) Slot {
	return Slot{chunk: c}
}

// Empty reports whether the slot holds no chunk.
func (s Slot) Empty() bool {
	return s.chunk == nil
}

// Chunk returns the slot's chunk, if any.
func (s Slot) Chunk() (*Chunk, bool) {
	return s.chunk, s.chunk != nil
}

// World is the in-memory chunk grid. It always has exactly SlotCount slots.
type World struct {
	slots [SlotCount]Slot
}

// New returns a world in which every slot is Empty.
func New() *World {
	return &World{}
}

// FromChunks builds a world from a square list of chunks. The list is read
// row by row (len = side², chunk i lands at grid (i/side, i%side)) and the
// rest of the grid is padded with Empty slots. Nil entries become Empty.
func FromChunks(chunks []*Chunk) (*World, error) {
	side := int(math.Sqrt(float64(len(chunks))))
	if side*side != len(chunks) || side > ChunksPerDirection {
		return nil, fmt.Errorf("%d chunks: %w", len(chunks), ErrNotSquare)
	}
	w := New()
	seen := make(map[*Chunk]int, len(chunks))
	for i, c := range chunks {
		if c == nil {
			continue
		}
		if j, dup := seen[c]; dup {
			return nil, fmt.Errorf("chunks %d and %d: %w", j, i, ErrChunkShared)
		}
		seen[c] = i
		pos := ChunkPos{X: i / side, Z: i % side}
		c.Place(pos)
		w.slots[SlotIndex(pos)] = Occupied(c)
	}
	return w, nil
}

// Slot returns the slot at index i, which must be in [0, SlotCount).
func (w *World) Slot(i int) Slot {
	return w.slots[i]
}

// SetSlot replaces the slot at index i, stamping an occupied slot's chunk
// with the matching grid position. A chunk already held by another slot is
// rejected with ErrChunkShared.
func (w *World) SetSlot(i int, s Slot) error {
	if i < 0 || i >= SlotCount {
		return fmt.Errorf("slot %d: %w", i, ErrPositionOutOfBounds)
	}
	if c, ok := s.Chunk(); ok {
		for j, other := range w.slots {
			if j != i && other.chunk == c {
				return fmt.Errorf("chunk already in slot %d %v: %w", j, SlotPos(j), ErrChunkShared)
			}
		}
		c.Place(SlotPos(i))
	}
	w.slots[i] = s
	return nil
}

// Chunk returns the slot at grid position pos.
func (w *World) Chunk(pos ChunkPos) (Slot, error) {
	if !pos.InGrid() {
		return Slot{}, fmt.Errorf("chunk %v: %w", pos, ErrPositionOutOfBounds)
	}
	return w.slots[SlotIndex(pos)], nil
}

// SetChunk stores c at grid position pos, overwriting any position c carried
// before. A nil chunk empties the slot.
func (w *World) SetChunk(pos ChunkPos, c *Chunk) error {
	if !pos.InGrid() {
		return fmt.Errorf("chunk %v: %w", pos, ErrPositionOutOfBounds)
	}
	return w.SetSlot(SlotIndex(pos), Occupied(c))
}

// Voxel returns the voxel at a global position.
func (w *World) Voxel(p Pos) (Voxel, error) {
	c, i, err := w.locate(p)
	if err != nil {
		return Voxel{}, err
	}
	return Voxel{Cell: c.Cell(i), pos: p}, nil
}

// UpdateVoxel sets the material of the voxel at p in place. Meta is replaced
// only when given; light is untouched.
func (w *World) UpdateVoxel(p Pos, material block.ID, meta ...uint8) error {
	c, i, err := w.locate(p)
	if err != nil {
		return err
	}
	return c.SetBlock(IndexToLocal(i), material, meta...)
}

// ReplaceVoxel overwrites the voxel at v.Pos() with v's attributes.
func (w *World) ReplaceVoxel(v Voxel) error {
	c, i, err := w.locate(v.pos)
	if err != nil {
		return err
	}
	return c.SetCell(i, v.Cell)
}

// NonEmptyCount returns the number of occupied slots.
func (w *World) NonEmptyCount() int {
	n := 0
	for _, s := range w.slots {
		if !s.Empty() {
			n++
		}
	}
	return n
}

// EmptyCount returns the number of empty slots.
func (w *World) EmptyCount() int {
	return SlotCount - w.NonEmptyCount()
}

// Slots yields every slot with its index. The slot list is captured when
// iteration starts.
func (w *World) Slots() iter.Seq2[int, Slot] {
	return func(yield func(int, Slot) bool) {
		snapshot := w.slots
		for i, s := range snapshot {
			if !yield(i, s) {
				return
			}
		}
	}
}

// NonEmptyChunks yields the occupied chunks in slot order.
func (w *World) NonEmptyChunks() iter.Seq[*Chunk] {
	return func(yield func(*Chunk) bool) {
		for _, s := range w.Slots() {
			if c, ok := s.Chunk(); ok && !yield(c) {
				return
			}
		}
	}
}

// AllVoxels yields every voxel of every occupied chunk, chunks in slot order
// and voxels in linear order. Positions come from the holding slot.
func (w *World) AllVoxels() iter.Seq[Voxel] {
	return func(yield func(Voxel) bool) {
		for si, s := range w.Slots() {
			c, ok := s.Chunk()
			if !ok {
				continue
			}
			cpos := SlotPos(si)
			for i := range ChunkVolume {
				v := Voxel{Cell: c.Cell(i), pos: ChunkToGlobal(cpos, IndexToLocal(i))}
				if !yield(v) {
					return
				}
			}
		}
	}
}

func (w *World) String() string {
	return fmt.Sprintf("world{chunks=%d empty=%d}", w.NonEmptyCount(), w.EmptyCount())
}

// locate resolves a global position to its chunk and linear index.
func (w *World) locate(p Pos) (*Chunk, int, error) {
	cpos, local := GlobalToChunk(p)
	if !cpos.InGrid() || !local.InChunk() {
		return nil, 0, fmt.Errorf("voxel %v: %w", p, ErrPositionOutOfBounds)
	}
	c, ok := w.slots[SlotIndex(cpos)].Chunk()
	if !ok {
		return nil, 0, fmt.Errorf("voxel %v: chunk %v is empty: %w", p, cpos, ErrPositionOutOfBounds)
	}
	return c, LinearIndex(local), nil
}
