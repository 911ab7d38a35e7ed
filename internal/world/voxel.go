package world

import (
	"fmt"

	"github.com/OCharnyshevich/minecraft-world/internal/world/block"
)

// maxNibble is the largest value a 4-bit field can hold.
const maxNibble = 0xF

// Cell holds the stored attributes of one voxel.
type Cell struct {
	Material   block.ID
	Meta       uint8 // 4 bits
	SkyLight   uint8 // 4 bits
	BlockLight uint8 // 4 bits
}

// Validate checks that every 4-bit field fits in a nibble.
func (c Cell) Validate() error {
	if c.Meta > maxNibble || c.SkyLight > maxNibble || c.BlockLight > maxNibble {
		return fmt.Errorf("meta=%d sky=%d light=%d: %w", c.Meta, c.SkyLight, c.BlockLight, ErrNibbleRange)
	}
	return nil
}

// Voxel is a Cell together with its global position. The position is fixed
// when the voxel is created.
type Voxel struct {
	Cell
	pos Pos
}

// NewVoxel returns a voxel at the given global position.
func NewVoxel(pos Pos, cell Cell) (Voxel, error) {
	if err := cell.Validate(); err != nil {
		return Voxel{}, err
	}
	return Voxel{Cell: cell, pos: pos}, nil
}

// Pos returns the voxel's global position.
func (v Voxel) Pos() Pos {
	return v.pos
}

// IsTransparent reports whether the voxel's material is see-through.
func (v Voxel) IsTransparent() bool {
	return v.Material.IsTransparent()
}

func (v Voxel) String() string {
	return fmt.Sprintf("%s%s meta=%d sky=%d light=%d", v.Material, v.pos, v.Meta, v.SkyLight, v.BlockLight)
}
