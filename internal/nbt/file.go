package nbt

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// FileVersion is the only storage version accepted in file headers.
const FileVersion = 3

const fileHeaderSize = 8

// ErrUnsupportedVersion is returned for a file header with a version other
// than FileVersion.
var ErrUnsupportedVersion = errors.New("unsupported file version")

// WrapFile prepends the file header [version:4 LE][body length:4 LE].
func WrapFile(body []byte) []byte {
	out := make([]byte, fileHeaderSize, fileHeaderSize+len(body))
	binary.LittleEndian.PutUint32(out[0:4], FileVersion)
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(body)))
	return append(out, body...)
}

// UnwrapFile checks the file header and returns the body it declares.
func UnwrapFile(data []byte) ([]byte, error) {
	if len(data) < fileHeaderSize {
		return nil, fmt.Errorf("file header is %d bytes: %w", len(data), ErrMalformed)
	}
	if v := binary.LittleEndian.Uint32(data[0:4]); v != FileVersion {
		return nil, fmt.Errorf("version %d: %w", v, ErrUnsupportedVersion)
	}
	n := binary.LittleEndian.Uint32(data[4:8])
	body := data[fileHeaderSize:]
	if uint64(n) > uint64(len(body)) {
		return nil, fmt.Errorf("header declares %d bytes, file has %d: %w", n, len(body), ErrMalformed)
	}
	return body[:n], nil
}
