package gen

import (
	"testing"

	"github.com/OCharnyshevich/minecraft-world/internal/world"
	"github.com/OCharnyshevich/minecraft-world/internal/world/block"
)

func TestFlatGeneratorLayers(t *testing.T) {
	g := NewFlatGenerator(block.Bedrock, block.Dirt, block.Dirt, block.Grass)
	c := g.Generate(world.ChunkPos{X: 1, Z: 2})

	want := map[int]block.ID{0: block.Bedrock, 1: block.Dirt, 2: block.Dirt, 3: block.Grass, 4: block.Air, 127: block.Air}
	for x := 0; x < world.XSize; x++ {
		for z := 0; z < world.ZSize; z++ {
			for y, id := range want {
				v, err := c.Block(world.Pos{X: x, Y: y, Z: z})
				if err != nil {
					t.Fatal(err)
				}
				if v.Material != id {
					t.Fatalf("Block(%d,%d,%d) = %v, want %v", x, y, z, v.Material, id)
				}
			}
			if b := c.Biome(world.ColumnIndex(x, z)); b != block.BiomePlains {
				t.Fatalf("biome(%d,%d) = %d, want plains", x, z, b)
			}
		}
	}
	if pos, ok := c.Pos(); !ok || pos != (world.ChunkPos{X: 1, Z: 2}) {
		t.Errorf("Pos() = %v %v", pos, ok)
	}
	if h := g.HeightAt(0, 0); h != 3 {
		t.Errorf("HeightAt = %d, want 3", h)
	}
}

func TestFlatGeneratorMissingLayersAreAir(t *testing.T) {
	g := NewFlatGenerator(block.Stone, block.Air, block.Glass)
	c := g.Generate(world.ChunkPos{})
	v, _ := c.Block(world.Pos{X: 0, Y: 1, Z: 0})
	if v.Material != block.Air {
		t.Errorf("y=1 = %v, want air", v.Material)
	}
	if h := g.HeightAt(0, 0); h != 2 {
		t.Errorf("HeightAt = %d, want 2", h)
	}
}

func TestParseLayers(t *testing.T) {
	tests := []struct {
		in   string
		want []block.ID
	}{
		{"", []block.ID{block.Bedrock, block.Dirt, block.Dirt, block.Grass}},
		{"minecraft:bedrock,2*minecraft:dirt,minecraft:grass", []block.ID{block.Bedrock, block.Dirt, block.Dirt, block.Grass}},
		{"stone, 3*sand", []block.ID{block.Stone, block.Sand, block.Sand, block.Sand}},
		{"7,id_200", []block.ID{block.Bedrock, 200}},
	}
	for _, tt := range tests {
		got, err := ParseLayers(tt.in)
		if err != nil {
			t.Errorf("ParseLayers(%q): %v", tt.in, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("ParseLayers(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseLayers(%q) = %v, want %v", tt.in, got, tt.want)
				break
			}
		}
	}

	for _, bad := range []string{"unobtainium", "0*dirt", "x*dirt", "200*stone"} {
		if _, err := ParseLayers(bad); err == nil {
			t.Errorf("ParseLayers(%q) succeeded", bad)
		}
	}
}

func TestFormatLayersRoundTrip(t *testing.T) {
	layers := []block.ID{block.Bedrock, block.Dirt, block.Dirt, block.Grass, 200}
	s := FormatLayers(layers)
	if s != "bedrock,2*dirt,grass,id_200" {
		t.Errorf("FormatLayers = %q", s)
	}
	got, err := ParseLayers(s)
	if err != nil {
		t.Fatal(err)
	}
	if FormatLayers(got) != s {
		t.Errorf("round trip = %q, want %q", FormatLayers(got), s)
	}
}

func TestTerrainGeneratorDeterministic(t *testing.T) {
	a := NewTerrainGenerator(42).Generate(world.ChunkPos{X: 3, Z: 4})
	b := NewTerrainGenerator(42).Generate(world.ChunkPos{X: 3, Z: 4})
	if !a.Equal(b) {
		t.Fatal("same seed produced different chunks")
	}
}

func TestTerrainGeneratorColumns(t *testing.T) {
	g := NewTerrainGenerator(12345)
	c := g.Generate(world.ChunkPos{X: 1, Z: 1})
	for x := 0; x < world.XSize; x++ {
		for z := 0; z < world.ZSize; z++ {
			v, _ := c.Block(world.Pos{X: x, Y: 0, Z: z})
			if v.Material != block.Bedrock {
				t.Fatalf("(%d,0,%d) = %v, want bedrock", x, z, v.Material)
			}
			gp := world.ChunkToGlobal(world.ChunkPos{X: 1, Z: 1}, world.Pos{X: x, Z: z})
			h := g.HeightAt(gp.X, gp.Z)
			if h < 1 || h >= world.YSize {
				t.Fatalf("HeightAt(%d,%d) = %d", gp.X, gp.Z, h)
			}
			top, _ := c.Block(world.Pos{X: x, Y: h, Z: z})
			if top.Material != block.Grass && top.Material != block.Sand {
				t.Fatalf("top of column (%d,%d) = %v", x, z, top.Material)
			}
			if h+1 < world.YSize {
				above, _ := c.Block(world.Pos{X: x, Y: h + 1, Z: z})
				switch above.Material {
				case block.Air, block.WaterSource, block.Log, block.Leaves, block.YellowFlower, block.CyanFlower:
				default:
					t.Fatalf("above column (%d,%d) = %v", x, z, above.Material)
				}
			}
		}
	}
}

func TestTerrainGeneratorPlacesOres(t *testing.T) {
	g := NewTerrainGenerator(7)
	found := map[block.ID]bool{}
	for cx := range 4 {
		for cz := range 4 {
			for v := range g.Generate(world.ChunkPos{X: cx, Z: cz}).Voxels {
				switch v.Material {
				case block.CoalOre, block.IronOre:
					found[v.Material] = true
					if v.Pos().Y == 0 {
						t.Fatalf("ore replaced bedrock at %v", v.Pos())
					}
				}
			}
		}
	}
	if !found[block.CoalOre] || !found[block.IronOre] {
		t.Errorf("expected coal and iron ore in 16 chunks, found %v", found)
	}
}

func TestPlaceTreeStaysInChunk(t *testing.T) {
	c := world.NewChunk()
	rng := NewTerrainGenerator(1).deco.rng(world.ChunkPos{}, 0)
	placeTree(c, 0, 10, 15, woodBirch, rng)

	logs := 0
	for v := range c.Voxels {
		switch v.Material {
		case block.Log:
			logs++
			if v.Meta != woodBirch {
				t.Errorf("log meta = %d, want %d", v.Meta, woodBirch)
			}
		case block.Leaves, block.Air:
		default:
			t.Fatalf("unexpected %v", v)
		}
	}
	if logs < 4 || logs > 6 {
		t.Fatalf("trunk length = %d, want 4-6", logs)
	}
	// Second canopy layer is a full 5x5 square apart from its corners.
	y := 10 + logs - 1
	if v, _ := c.Block(world.Pos{X: 1, Y: y, Z: 14}); v.Material != block.Leaves {
		t.Errorf("(1,%d,14) = %v, want leaves", y, v.Material)
	}
}

func TestNoiseRange(t *testing.T) {
	n := NewNoise(42)
	for i := 0; i < 10000; i++ {
		x := float64(i)*0.37 - 500
		y := float64(i)*0.53 - 500
		if v := n.At(x, y); v < -1 || v > 1 {
			t.Fatalf("At(%f, %f) = %f, out of [-1,1]", x, y, v)
		}
	}
}

func TestNoiseSeedsDiffer(t *testing.T) {
	a, b := NewNoise(1), NewNoise(2)
	same := 0
	for i := 0; i < 100; i++ {
		x, y := float64(i)*0.7, float64(i)*1.3
		if a.At(x, y) == b.At(x, y) {
			same++
		}
	}
	if same == 100 {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestFillAndNew(t *testing.T) {
	g, err := New("flat", 0, "")
	if err != nil {
		t.Fatal(err)
	}
	chunks := Fill(g, 2)
	w, err := world.FromChunks(chunks)
	if err != nil {
		t.Fatal(err)
	}
	if w.NonEmptyCount() != 4 {
		t.Errorf("NonEmptyCount() = %d, want 4", w.NonEmptyCount())
	}
	v, err := w.Voxel(world.Pos{X: 20, Y: 0, Z: 20})
	if err != nil || v.Material != block.Bedrock {
		t.Errorf("Voxel(20,0,20) = %v, %v", v, err)
	}

	if _, err := New("caves", 0, ""); err == nil {
		t.Error("New accepted an unknown generator")
	}
}
