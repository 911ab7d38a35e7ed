package region

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/OCharnyshevich/minecraft-world/internal/world"
	"github.com/OCharnyshevich/minecraft-world/internal/world/block"
)

const (
	// BlockSize is the storage unit of the file layout. Records are padded to
	// a multiple of it and offsets are counted in it.
	BlockSize = 4096

	headerSize  = 4
	nibbleBytes = world.ChunkVolume / 2

	// PayloadSize is the length of a chunk record without its header:
	// materials, meta, sky light, block light, biomes.
	PayloadSize = world.ChunkVolume + 3*nibbleBytes + world.ColumnCount // 82432

	// RecordBlocks is the number of storage blocks one populated chunk
	// occupies.
	RecordBlocks = (headerSize + PayloadSize + BlockSize - 1) / BlockSize // 21
)

// ErrCorruptChunk is returned when a chunk record or index entry is
// inconsistent with the file layout.
var ErrCorruptChunk = errors.New("corrupt chunk")

// EncodeSlot encodes an occupied slot's chunk. Empty slots encode to nil.
func EncodeSlot(s world.Slot) []byte {
	c, ok := s.Chunk()
	if !ok {
		return nil
	}
	return EncodeChunk(c)
}

// EncodeChunk encodes a chunk as a length-prefixed record padded with zeros
// to a multiple of BlockSize.
//
// Layout: [length:4 LE][materials][meta][sky light][block light][biomes],
// where length counts the header itself and the nibble sections hold two
// voxels per byte, the first voxel in the high nibble.
func EncodeChunk(c *world.Chunk) []byte {
	n := headerSize + PayloadSize
	buf := make([]byte, paddedSize(n))
	binary.LittleEndian.PutUint32(buf, uint32(n))

	materials, meta, sky, light, biomes := sections(buf[headerSize:n])
	for i := range world.ChunkVolume {
		cell := c.Cell(i)
		materials[i] = byte(cell.Material)
		setNibble(meta, i, cell.Meta)
		setNibble(sky, i, cell.SkyLight)
		setNibble(light, i, cell.BlockLight)
	}
	for col := range world.ColumnCount {
		biomes[col] = byte(c.Biome(col))
	}
	return buf
}

// DecodeChunk decodes a record produced by EncodeChunk and places the chunk
// at pos. Trailing padding after the declared length is ignored.
func DecodeChunk(rec []byte, pos world.ChunkPos) (*world.Chunk, error) {
	if len(rec) < headerSize {
		return nil, fmt.Errorf("record of %d bytes has no header: %w", len(rec), ErrCorruptChunk)
	}
	declared := binary.LittleEndian.Uint32(rec)
	switch {
	case declared == 0:
		return nil, fmt.Errorf("declared length is 0: %w", ErrCorruptChunk)
	case declared < headerSize:
		return nil, fmt.Errorf("declared length %d is shorter than the header: %w", declared, ErrCorruptChunk)
	case uint64(declared) > uint64(len(rec)):
		return nil, fmt.Errorf("declared length %d exceeds record of %d bytes: %w", declared, len(rec), ErrCorruptChunk)
	}
	payload := rec[headerSize:declared]
	if len(payload) != PayloadSize {
		return nil, fmt.Errorf("payload is %d bytes, want %d: %w", len(payload), PayloadSize, ErrCorruptChunk)
	}

	c := world.NewChunk()
	materials, meta, sky, light, biomes := sections(payload)
	for i := range world.ChunkVolume {
		cell := world.Cell{
			Material:   block.ID(materials[i]),
			Meta:       nibble(meta, i),
			SkyLight:   nibble(sky, i),
			BlockLight: nibble(light, i),
		}
		if err := c.SetCell(i, cell); err != nil {
			return nil, err
		}
	}
	for col := range world.ColumnCount {
		c.SetBiome(col, block.Biome(biomes[col]))
	}
	c.Place(pos)
	return c, nil
}

// PackNibbles packs 4-bit values two per byte, the first value of each pair
// in the high nibble. An odd trailing value gets a zero low nibble.
func PackNibbles(values []uint8) []byte {
	out := make([]byte, (len(values)+1)/2)
	for i, v := range values {
		setNibble(out, i, v)
	}
	return out
}

// UnpackNibbles is the inverse of PackNibbles for even-length input.
func UnpackNibbles(packed []byte) []uint8 {
	out := make([]uint8, len(packed)*2)
	for i := range out {
		out[i] = nibble(packed, i)
	}
	return out
}

// sections splits a payload into its five fixed-size parts.
func sections(payload []byte) (materials, meta, sky, light, biomes []byte) {
	off := 0
	next := func(n int) []byte {
		s := payload[off : off+n : off+n]
		off += n
		return s
	}
	materials = next(world.ChunkVolume)
	meta = next(nibbleBytes)
	sky = next(nibbleBytes)
	light = next(nibbleBytes)
	biomes = next(world.ColumnCount)
	return
}

// setNibble stores a 4-bit value at index i: even indexes use the high
// nibble, odd indexes the low one.
func setNibble(arr []byte, i int, v uint8) {
	b := &arr[i/2]
	if i%2 == 0 {
		*b = (*b & 0x0F) | (v&0x0F)<<4
	} else {
		*b = (*b & 0xF0) | v&0x0F
	}
}

func nibble(arr []byte, i int) uint8 {
	if i%2 == 0 {
		return arr[i/2] >> 4
	}
	return arr[i/2] & 0x0F
}

func paddedSize(n int) int {
	return blocksFor(n) * BlockSize
}

func blocksFor(n int) int {
	return (n + BlockSize - 1) / BlockSize
}
