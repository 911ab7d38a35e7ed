// Package block holds the material and biome id tables used by the world
// format, and the render classification of each material.
package block

import (
	"fmt"
	"strconv"
	"strings"
)

// ID is a material id as stored in the world file (one byte per voxel).
type ID byte

// Material ids.
const (
	Air                ID = 0
	Stone              ID = 1
	Grass              ID = 2
	Dirt               ID = 3
	Cobblestone        ID = 4
	Plank              ID = 5
	Sapling            ID = 6
	Bedrock            ID = 7
	Water              ID = 8
	WaterSource        ID = 9
	Lava               ID = 10
	LavaSource         ID = 11
	Sand               ID = 12
	Gravel             ID = 13
	GoldOre            ID = 14
	IronOre            ID = 15
	CoalOre            ID = 16
	Log                ID = 17
	Leaves             ID = 18
	Sponge             ID = 19
	Glass              ID = 20
	LapisOre           ID = 21
	LapisBlock         ID = 22
	Sandstone          ID = 24
	Bed                ID = 26
	PoweredRail        ID = 27
	Cobweb             ID = 30
	DeadShrub          ID = 31
	DeadBush           ID = 32
	Wool               ID = 35
	YellowFlower       ID = 37
	CyanFlower         ID = 38
	BrownMushroom      ID = 39
	RedMushroom        ID = 40
	GoldBlock          ID = 41
	IronBlock          ID = 42
	DoubleStoneSlab    ID = 43
	StoneSlab          ID = 44
	BrickBlock         ID = 45
	TNT                ID = 46
	Bookshelf          ID = 47
	MossyCobblestone   ID = 48
	Obsidian           ID = 49
	Torch              ID = 50
	Fire               ID = 51
	MobSpawner         ID = 52
	WoodenStairs       ID = 53
	Chest              ID = 54
	DiamondOre         ID = 56
	DiamondBlock       ID = 57
	CraftingTable      ID = 58
	WheatSeeds         ID = 59
	Farmland           ID = 60
	Furnace            ID = 61
	BurningFurnace     ID = 62
	SignPost           ID = 63
	WoodenDoor         ID = 64
	Ladder             ID = 65
	Rail               ID = 66
	CobblestoneStairs  ID = 67
	WallSign           ID = 68
	IronDoor           ID = 71
	RedstoneOre        ID = 73
	GlowingRedstoneOre ID = 74
	Snow               ID = 78
	Ice                ID = 79
	SnowBlock          ID = 80
	Cactus             ID = 81
	ClayBlock          ID = 82
	SugarCane          ID = 83
	Fence              ID = 85
	Netherrack         ID = 87
	Trapdoor           ID = 96
	StoneBricks        ID = 98
	IronBars           ID = 101
	GlassPane          ID = 102
	PumpkinSeed        ID = 104
	MelonSeed          ID = 105
	FenceGate          ID = 107
	StoneStairs        ID = 109
	NetherBrick        ID = 112
	SpruceStairs       ID = 134
	CobblestoneWall    ID = 139
	Carrot             ID = 141
	Potato             ID = 142
	WoodenSlab         ID = 158
	HayBale            ID = 170
	Carpet             ID = 171
	Beetroot           ID = 244
	Stonecutter        ID = 245
	NetherReactorCore  ID = 247
)

var names = map[ID]string{
	Air:                "air",
	Stone:              "stone",
	Grass:              "grass",
	Dirt:               "dirt",
	Cobblestone:        "cobblestone",
	Plank:              "plank",
	Sapling:            "sapling",
	Bedrock:            "bedrock",
	Water:              "water",
	WaterSource:        "water_source",
	Lava:               "lava",
	LavaSource:         "lava_source",
	Sand:               "sand",
	Gravel:             "gravel",
	GoldOre:            "gold_ore",
	IronOre:            "iron_ore",
	CoalOre:            "coal_ore",
	Log:                "log",
	Leaves:             "leaves",
	Sponge:             "sponge",
	Glass:              "glass",
	LapisOre:           "lapis_ore",
	LapisBlock:         "lapis_block",
	Sandstone:          "sandstone",
	Bed:                "bed",
	PoweredRail:        "powered_rail",
	Cobweb:             "cobweb",
	DeadShrub:          "dead_shrub",
	DeadBush:           "dead_bush",
	Wool:               "wool",
	YellowFlower:       "yellow_flower",
	CyanFlower:         "cyan_flower",
	BrownMushroom:      "brown_mushroom",
	RedMushroom:        "red_mushroom",
	GoldBlock:          "gold_block",
	IronBlock:          "iron_block",
	DoubleStoneSlab:    "double_stone_slab",
	StoneSlab:          "stone_slab",
	BrickBlock:         "brick_block",
	TNT:                "tnt",
	Bookshelf:          "bookshelf",
	MossyCobblestone:   "mossy_cobblestone",
	Obsidian:           "obsidian",
	Torch:              "torch",
	Fire:               "fire",
	MobSpawner:         "mob_spawner",
	WoodenStairs:       "wooden_stairs",
	Chest:              "chest",
	DiamondOre:         "diamond_ore",
	DiamondBlock:       "diamond_block",
	CraftingTable:      "crafting_table",
	WheatSeeds:         "wheat_seeds",
	Farmland:           "farmland",
	Furnace:            "furnace",
	BurningFurnace:     "burning_furnace",
	SignPost:           "sign_post",
	WoodenDoor:         "wooden_door",
	Ladder:             "ladder",
	Rail:               "rail",
	CobblestoneStairs:  "cobblestone_stairs",
	WallSign:           "wall_sign",
	IronDoor:           "iron_door",
	RedstoneOre:        "redstone_ore",
	GlowingRedstoneOre: "glowing_redstone_ore",
	Snow:               "snow",
	Ice:                "ice",
	SnowBlock:          "snow_block",
	Cactus:             "cactus",
	ClayBlock:          "clay_block",
	SugarCane:          "sugar_cane",
	Fence:              "fence",
	Netherrack:         "netherrack",
	Trapdoor:           "trapdoor",
	StoneBricks:        "stone_bricks",
	IronBars:           "iron_bars",
	GlassPane:          "glass_pane",
	PumpkinSeed:        "pumpkin_seed",
	MelonSeed:          "melon_seed",
	FenceGate:          "fence_gate",
	StoneStairs:        "stone_stairs",
	NetherBrick:        "nether_brick",
	SpruceStairs:       "spruce_stairs",
	CobblestoneWall:    "cobblestone_wall",
	Carrot:             "carrot",
	Potato:             "potato",
	WoodenSlab:         "wooden_slab",
	HayBale:            "hay_bale",
	Carpet:             "carpet",
	Beetroot:           "beetroot",
	Stonecutter:        "stonecutter",
	NetherReactorCore:  "nether_reactor_core",
}

var byName = func() map[string]ID {
	m := make(map[string]ID, len(names))
	for id, n := range names {
		m[n] = id
	}
	return m
}()

var transparent = map[ID]bool{
	Air:         true,
	Water:       true,
	WaterSource: true,
	Leaves:      true,
	Glass:       true,
	PoweredRail: true,
	DeadShrub:   true,
	DeadBush:    true,
	Rail:        true,
	Torch:       true,
	Fence:       true,
	FenceGate:   true,
}

var full = map[ID]bool{
	Stone: true, Grass: true, Dirt: true, Cobblestone: true, Plank: true,
	Bedrock: true, Sand: true, Gravel: true, GoldOre: true, IronOre: true,
	CoalOre: true, Log: true, Sponge: true, LapisOre: true, LapisBlock: true,
	Sandstone: true, Bookshelf: true, MossyCobblestone: true, Obsidian: true,
	Fire: true, MobSpawner: true, WoodenStairs: true, DiamondOre: true,
	DiamondBlock: true, CraftingTable: true, Furnace: true, BurningFurnace: true,
	IronDoor: true, RedstoneOre: true, GlowingRedstoneOre: true, Ice: true,
	SnowBlock: true, ClayBlock: true, Netherrack: true, NetherBrick: true,
}

// String returns the material name, or "id_<n>" for ids without a name.
func (id ID) String() string {
	if n, ok := names[id]; ok {
		return n
	}
	return fmt.Sprintf("id_%d", byte(id))
}

// IsTransparent reports whether voxels below this material show through it.
func (id ID) IsTransparent() bool {
	return transparent[id]
}

// IsFullBlock reports whether the material occupies its whole voxel.
func (id ID) IsFullBlock() bool {
	return full[id]
}

// ByName resolves a material name (case-insensitive), a decimal id or the
// "id_<n>" form printed for unnamed ids.
func ByName(s string) (ID, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if id, ok := byName[s]; ok {
		return id, true
	}
	n, err := strconv.Atoi(strings.TrimPrefix(s, "id_"))
	if err != nil || n < 0 || n > 255 {
		return 0, false
	}
	return ID(n), true
}
