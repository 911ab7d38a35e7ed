package region

import (
	"fmt"

	"github.com/OCharnyshevich/minecraft-world/internal/world"
)

const (
	entrySize = 4
	// IndexSize is the size of the allocation index at the start of the file.
	IndexSize = world.SlotCount * entrySize

	maxReserved  = 0xFF
	maxDataIndex = 1<<24 - 1
)

// Entry is one allocation index entry: [reserved blocks:1][data index:3 LE].
// A data index of 0 means the slot holds no data; block 0 is the index
// itself and can never start a record.
type Entry struct {
	Reserved  uint8
	DataIndex uint32
}

// Empty reports whether the entry points at no data.
func (e Entry) Empty() bool {
	return e.DataIndex == 0
}

// Offset returns the byte offset of the entry's record.
func (e Entry) Offset() int64 {
	return int64(e.DataIndex) * BlockSize
}

// Index maps every slot of the world grid to its record location.
type Index [world.SlotCount]Entry

// Allocate lays out records in slot order, starting at block 1, with no
// gaps. records[i] is the encoded record of slot i, nil for an Empty slot.
func Allocate(records [][]byte) (*Index, error) {
	if len(records) != world.SlotCount {
		return nil, fmt.Errorf("allocate: %d records, want %d", len(records), world.SlotCount)
	}
	var ix Index
	next := 1
	for i, rec := range records {
		if len(rec) == 0 {
			continue
		}
		reserved := blocksFor(len(rec))
		if reserved > maxReserved {
			return nil, fmt.Errorf("allocate slot %d: record needs %d blocks, max %d", i, reserved, maxReserved)
		}
		if next > maxDataIndex {
			return nil, fmt.Errorf("allocate slot %d: data index %d overflows 24 bits", i, next)
		}
		ix[i] = Entry{Reserved: uint8(reserved), DataIndex: uint32(next)}
		next += reserved
	}
	return &ix, nil
}

// Bytes encodes the index as IndexSize bytes.
func (ix *Index) Bytes() []byte {
	buf := make([]byte, IndexSize)
	for i, e := range ix {
		off := i * entrySize
		buf[off] = e.Reserved
		buf[off+1] = byte(e.DataIndex)
		buf[off+2] = byte(e.DataIndex >> 8)
		buf[off+3] = byte(e.DataIndex >> 16)
	}
	return buf
}

// ParseIndex decodes the allocation index from the first IndexSize bytes of b.
func ParseIndex(b []byte) (*Index, error) {
	if len(b) < IndexSize {
		return nil, fmt.Errorf("allocation index is %d bytes, want %d: %w", len(b), IndexSize, ErrCorruptChunk)
	}
	var ix Index
	for i := range ix {
		off := i * entrySize
		ix[i] = Entry{
			Reserved:  b[off],
			DataIndex: uint32(b[off+1]) | uint32(b[off+2])<<8 | uint32(b[off+3])<<16,
		}
	}
	return &ix, nil
}
