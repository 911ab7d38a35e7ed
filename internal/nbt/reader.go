package nbt

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrMalformed is returned when tag data cannot be parsed.
var ErrMalformed = errors.New("malformed tag data")

// maxDepth bounds compound/list nesting.
const maxDepth = 512

// Compound is a decoded compound tag: child name to value.
//
// Values are byte, int16, int32, int64, float32, float64, []byte, string,
// List, Compound, []int32 or []int64 depending on the tag type.
type Compound map[string]any

// List is a decoded list tag.
type List struct {
	Elem  byte
	Items []any
}

// Int returns the child name as an int64 if it holds any integer tag.
func (c Compound) Int(name string) (int64, bool) {
	switch v := c[name].(type) {
	case byte:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	}
	return 0, false
}

// String returns the child name if it holds a string tag.
func (c Compound) String(name string) (string, bool) {
	s, ok := c[name].(string)
	return s, ok
}

// Compound returns the child name if it holds a compound tag.
func (c Compound) Compound(name string) (Compound, bool) {
	v, ok := c[name].(Compound)
	return v, ok
}

// Reader decodes tag data from an io.Reader.
type Reader struct {
	r     io.Reader
	order binary.ByteOrder
	buf   [8]byte
}

// NewReader creates a Reader using the given byte order.
func NewReader(r io.Reader, order binary.ByteOrder) *Reader {
	return &Reader{r: r, order: order}
}

// ReadRoot reads a named root compound.
func (r *Reader) ReadRoot() (name string, root Compound, err error) {
	t, err := r.u8()
	if err != nil {
		return "", nil, err
	}
	if t != TagCompound {
		return "", nil, fmt.Errorf("root tag type %d, want compound: %w", t, ErrMalformed)
	}
	if name, err = r.str(); err != nil {
		return "", nil, err
	}
	v, err := r.payload(TagCompound, 0)
	if err != nil {
		return "", nil, err
	}
	return name, v.(Compound), nil
}

func (r *Reader) payload(t byte, depth int) (any, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("nesting deeper than %d: %w", maxDepth, ErrMalformed)
	}
	switch t {
	case TagByte:
		return r.u8()
	case TagShort:
		v, err := r.u16()
		return int16(v), err
	case TagInt:
		v, err := r.u32()
		return int32(v), err
	case TagLong:
		v, err := r.u64()
		return int64(v), err
	case TagFloat:
		v, err := r.u32()
		return math.Float32frombits(v), err
	case TagDouble:
		v, err := r.u64()
		return math.Float64frombits(v), err
	case TagByteArray:
		n, err := r.length()
		if err != nil {
			return nil, err
		}
		// Grow with the input rather than trusting the declared length.
		b, err := io.ReadAll(io.LimitReader(r.r, int64(n)))
		if err != nil {
			return nil, err
		}
		if len(b) != n {
			return nil, fmt.Errorf("byte array declares %d bytes, got %d: %w", n, len(b), ErrMalformed)
		}
		return b, nil
	case TagString:
		return r.str()
	case TagList:
		elem, err := r.u8()
		if err != nil {
			return nil, err
		}
		n, err := r.length()
		if err != nil {
			return nil, err
		}
		l := List{Elem: elem, Items: make([]any, 0, min(n, 1024))}
		for range n {
			v, err := r.payload(elem, depth+1)
			if err != nil {
				return nil, err
			}
			l.Items = append(l.Items, v)
		}
		return l, nil
	case TagCompound:
		c := Compound{}
		for {
			ct, err := r.u8()
			if err != nil {
				return nil, err
			}
			if ct == TagEnd {
				return c, nil
			}
			name, err := r.str()
			if err != nil {
				return nil, err
			}
			if c[name], err = r.payload(ct, depth+1); err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
		}
	case TagIntArray:
		n, err := r.length()
		if err != nil {
			return nil, err
		}
		out := make([]int32, 0, min(n, 1024))
		for range n {
			v, err := r.u32()
			if err != nil {
				return nil, err
			}
			out = append(out, int32(v))
		}
		return out, nil
	case TagLongArray:
		n, err := r.length()
		if err != nil {
			return nil, err
		}
		out := make([]int64, 0, min(n, 1024))
		for range n {
			v, err := r.u64()
			if err != nil {
				return nil, err
			}
			out = append(out, int64(v))
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown tag type %d: %w", t, ErrMalformed)
}

func (r *Reader) read(n int) ([]byte, error) {
	if _, err := io.ReadFull(r.r, r.buf[:n]); err != nil {
		return nil, r.wrap(err)
	}
	return r.buf[:n], nil
}

func (r *Reader) u8() (byte, error) {
	b, err := r.read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) u16() (uint16, error) {
	b, err := r.read(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(b), nil
}

func (r *Reader) u32() (uint32, error) {
	b, err := r.read(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(b), nil
}

func (r *Reader) u64() (uint64, error) {
	b, err := r.read(8)
	if err != nil {
		return 0, err
	}
	return r.order.Uint64(b), nil
}

func (r *Reader) length() (int, error) {
	v, err := r.u32()
	if err != nil {
		return 0, err
	}
	if int32(v) < 0 {
		return 0, fmt.Errorf("negative length %d: %w", int32(v), ErrMalformed)
	}
	return int(v), nil
}

func (r *Reader) str() (string, error) {
	n, err := r.u16()
	if err != nil {
		return "", err
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r.r, b); err != nil {
		return "", r.wrap(err)
	}
	return string(b), nil
}

func (r *Reader) wrap(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("unexpected end of data: %w", ErrMalformed)
	}
	return err
}
