package block

// Biome is a per-column biome id.
type Biome byte

const (
	BiomeOcean  Biome = 0
	BiomePlains Biome = 1
	BiomeDesert Biome = 2
	BiomeForest Biome = 4
	BiomeTaiga  Biome = 5
	BiomeBeach  Biome = 16
)
