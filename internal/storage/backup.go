package storage

import (
	"archive/tar"
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// ErrBadArchive is returned by Restore for archives holding anything other
// than the game files.
var ErrBadArchive = errors.New("bad backup archive")

var gameFiles = []string{LevelFile, ChunksFile, EntitiesFile}

// Backup writes the game files into a zstd-compressed tar archive at dst.
// The archive is built in a temp file and renamed into place, so a failed
// backup leaves any previous archive at dst untouched.
func (s *Storage) Backup(dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	tmp := dst + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	total, err := s.writeArchive(f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close archive: %w", cerr)
	}
	if err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	s.log.Info("backup written", "path", dst, "bytes", total)
	return nil
}

func (s *Storage) writeArchive(w io.Writer) (int64, error) {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return 0, err
	}
	defer enc.Close()
	tw := tar.NewWriter(enc)

	var total int64
	for _, name := range gameFiles {
		data, err := os.ReadFile(s.path(name))
		if err != nil {
			if os.IsNotExist(err) && name == EntitiesFile {
				continue
			}
			return 0, fmt.Errorf("read %s: %w", name, err)
		}
		hdr := &tar.Header{Name: name, Mode: 0o644, Size: int64(len(data)), Typeflag: tar.TypeReg}
		if err := tw.WriteHeader(hdr); err != nil {
			return 0, fmt.Errorf("tar header %s: %w", name, err)
		}
		if _, err := tw.Write(data); err != nil {
			return 0, fmt.Errorf("tar write %s: %w", name, err)
		}
		total += int64(len(data))
	}
	if err := tw.Close(); err != nil {
		return 0, fmt.Errorf("close tar: %w", err)
	}
	if err := enc.Close(); err != nil {
		return 0, fmt.Errorf("close zstd: %w", err)
	}
	return total, nil
}

// Restore extracts an archive written by Backup into the game directory,
// replacing the files it contains.
func (s *Storage) Restore(src string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return err
	}
	defer dec.Close()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", s.dir, err)
	}

	tr := tar.NewReader(bufio.NewReader(dec))
	restored := 0
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read archive: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg || !isGameFile(hdr.Name) {
			return fmt.Errorf("entry %q: %w", hdr.Name, ErrBadArchive)
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			return fmt.Errorf("read %s: %w", hdr.Name, err)
		}
		if err := s.atomicWrite(s.path(hdr.Name), data); err != nil {
			return fmt.Errorf("restore %s: %w", hdr.Name, err)
		}
		s.log.Debug("restored file", "name", hdr.Name, "bytes", len(data))
		restored++
	}
	if restored == 0 {
		return fmt.Errorf("no game files: %w", ErrBadArchive)
	}
	s.log.Info("backup restored", "path", src, "files", restored)
	return nil
}

func isGameFile(name string) bool {
	for _, n := range gameFiles {
		if name == n {
			return true
		}
	}
	return false
}
