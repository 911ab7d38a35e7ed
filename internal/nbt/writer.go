// Package nbt reads and writes named binary tag trees. Both byte orders are
// supported; level descriptors use little-endian.
package nbt

import (
	"encoding/binary"
	"io"
	"math"
)

// Tag type IDs.
const (
	TagEnd       byte = 0
	TagByte      byte = 1
	TagShort     byte = 2
	TagInt       byte = 3
	TagLong      byte = 4
	TagFloat     byte = 5
	TagDouble    byte = 6
	TagByteArray byte = 7
	TagString    byte = 8
	TagList      byte = 9
	TagCompound  byte = 10
	TagIntArray  byte = 11
	TagLongArray byte = 12
)

// Writer writes tag data to an io.Writer. All write methods accumulate
// errors internally; call Err() after writing to check for failures.
type Writer struct {
	w     io.Writer
	order binary.ByteOrder
	err   error
}

// NewWriter creates a Writer using the given byte order for numbers and
// length prefixes.
func NewWriter(w io.Writer, order binary.ByteOrder) *Writer {
	return &Writer{w: w, order: order}
}

// Err returns the first error encountered during writing.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) write(data []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write(data)
}

func (w *Writer) putByte(v byte) {
	w.write([]byte{v})
}

func (w *Writer) putUint16(v uint16) {
	var buf [2]byte
	w.order.PutUint16(buf[:], v)
	w.write(buf[:])
}

func (w *Writer) putUint32(v uint32) {
	var buf [4]byte
	w.order.PutUint32(buf[:], v)
	w.write(buf[:])
}

func (w *Writer) putUint64(v uint64) {
	var buf [8]byte
	w.order.PutUint64(buf[:], v)
	w.write(buf[:])
}

func (w *Writer) putString(s string) {
	w.putUint16(uint16(len(s)))
	w.write([]byte(s))
}

func (w *Writer) writeTagHeader(tagType byte, name string) {
	w.putByte(tagType)
	w.putString(name)
}

// BeginCompound writes a compound tag header. Use name="" for the root.
func (w *Writer) BeginCompound(name string) {
	w.writeTagHeader(TagCompound, name)
}

// EndCompound closes the innermost compound.
func (w *Writer) EndCompound() {
	w.putByte(TagEnd)
}

// WriteTagByte writes a named byte tag.
func (w *Writer) WriteTagByte(name string, v byte) {
	w.writeTagHeader(TagByte, name)
	w.putByte(v)
}

// WriteShort writes a named short tag.
func (w *Writer) WriteShort(name string, v int16) {
	w.writeTagHeader(TagShort, name)
	w.putUint16(uint16(v))
}

// WriteInt writes a named int tag.
func (w *Writer) WriteInt(name string, v int32) {
	w.writeTagHeader(TagInt, name)
	w.putUint32(uint32(v))
}

// WriteLong writes a named long tag.
func (w *Writer) WriteLong(name string, v int64) {
	w.writeTagHeader(TagLong, name)
	w.putUint64(uint64(v))
}

// WriteFloat writes a named float tag.
func (w *Writer) WriteFloat(name string, v float32) {
	w.writeTagHeader(TagFloat, name)
	w.putUint32(math.Float32bits(v))
}

// WriteDouble writes a named double tag.
func (w *Writer) WriteDouble(name string, v float64) {
	w.writeTagHeader(TagDouble, name)
	w.putUint64(math.Float64bits(v))
}

// WriteByteArray writes a named byte array tag.
func (w *Writer) WriteByteArray(name string, v []byte) {
	w.writeTagHeader(TagByteArray, name)
	w.putUint32(uint32(len(v)))
	w.write(v)
}

// WriteString writes a named string tag.
func (w *Writer) WriteString(name string, v string) {
	w.writeTagHeader(TagString, name)
	w.putString(v)
}

// WriteIntArray writes a named int array tag.
func (w *Writer) WriteIntArray(name string, v []int32) {
	w.writeTagHeader(TagIntArray, name)
	w.putUint32(uint32(len(v)))
	for _, val := range v {
		w.putUint32(uint32(val))
	}
}

// BeginList writes a named list tag header. The caller writes count
// unnamed payloads of elemType after it.
func (w *Writer) BeginList(name string, elemType byte, count int32) {
	w.writeTagHeader(TagList, name)
	w.putByte(elemType)
	w.putUint32(uint32(count))
}

// ListInt writes one int element of an open list.
func (w *Writer) ListInt(v int32) {
	w.putUint32(uint32(v))
}

// ListString writes one string element of an open list.
func (w *Writer) ListString(v string) {
	w.putString(v)
}
