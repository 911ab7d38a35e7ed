// Package region reads and writes the single-file world format: a one-block
// allocation index followed by block-aligned chunk records.
package region

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/OCharnyshevich/minecraft-world/internal/world"
)

// Encode serializes the whole world: the allocation index, then every
// occupied slot's record in slot order.
func Encode(w *world.World) ([]byte, error) {
	records := make([][]byte, world.SlotCount)
	total := IndexSize
	for i, s := range w.Slots() {
		records[i] = EncodeSlot(s)
		total += len(records[i])
	}

	ix, err := Allocate(records)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(total)
	buf.Write(ix.Bytes())
	for _, rec := range records {
		buf.Write(rec)
	}
	return buf.Bytes(), nil
}

// Decode parses a world file. On error no world is returned.
func Decode(data []byte) (*world.World, error) {
	ix, err := ParseIndex(data)
	if err != nil {
		return nil, err
	}

	w := world.New()
	for i, e := range ix {
		if e.Empty() {
			continue
		}
		pos := world.SlotPos(i)
		rec, err := record(data, e)
		if err != nil {
			return nil, fmt.Errorf("slot %d %v: %w", i, pos, err)
		}
		c, err := DecodeChunk(rec, pos)
		if err != nil {
			return nil, fmt.Errorf("slot %d %v: %w", i, pos, err)
		}
		if err := w.SetSlot(i, world.Occupied(c)); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Load reads and decodes the world file at path.
func Load(path string) (*world.World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read world file: %w", err)
	}
	w, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return w, nil
}

// Save encodes w and writes it to path, creating parent directories and
// replacing any existing file. The file is not touched if encoding fails.
func Save(path string, w *world.World) error {
	data, err := Encode(w)
	if err != nil {
		return fmt.Errorf("encode world: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create world dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write world file: %w", err)
	}
	return nil
}

// record returns the bytes reserved for an index entry, clipped to the end
// of the file.
func record(data []byte, e Entry) ([]byte, error) {
	off := e.Offset()
	if off+headerSize > int64(len(data)) {
		return nil, fmt.Errorf("data index %d is beyond end of file (%d bytes): %w", e.DataIndex, len(data), ErrCorruptChunk)
	}
	if binary.LittleEndian.Uint32(data[off:]) == 0 {
		return nil, fmt.Errorf("index claims data at block %d but the record header is blank: %w", e.DataIndex, ErrCorruptChunk)
	}
	end := min(off+int64(e.Reserved)*BlockSize, int64(len(data)))
	if end < off+headerSize {
		// Reserved is 0 but a record is present.
		return nil, fmt.Errorf("entry at block %d reserves no blocks: %w", e.DataIndex, ErrCorruptChunk)
	}
	return data[off:end], nil
}
