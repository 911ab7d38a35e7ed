// Package render draws images of a world.
package render

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/OCharnyshevich/minecraft-world/internal/world"
	"github.com/OCharnyshevich/minecraft-world/internal/world/block"
)

const (
	mapWidth  = world.ChunksPerDirection * world.XSize
	mapHeight = world.ChunksPerDirection * world.ZSize
)

// HeightMap returns one pixel per global column, grey level = y of the
// highest non-air voxel. Columns of empty chunks stay black. The image is
// rotated so north is up: global X runs top to bottom, Z right to left.
func HeightMap(w *world.World) *image.NRGBA {
	img := imaging.New(mapWidth, mapHeight, color.Black)
	for v := range w.AllVoxels() {
		if v.Material == block.Air {
			continue
		}
		p := v.Pos()
		y := uint8(p.Y)
		// AllVoxels walks y upward within a column, so the last write wins.
		img.SetNRGBA(p.X, p.Z, color.NRGBA{R: y, G: y, B: y, A: 0xFF})
	}
	return imaging.Rotate270(img)
}

// SaveHeightMap renders the height map and writes it to path, creating the
// parent directory. The format follows the file extension.
func SaveHeightMap(w *world.World, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if err := imaging.Save(HeightMap(w), path); err != nil {
		return fmt.Errorf("save height map: %w", err)
	}
	return nil
}
