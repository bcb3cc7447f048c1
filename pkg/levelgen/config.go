// Package levelgen implements the procedural dungeon pipeline: deriving
// per-level constants, binary-space-partitioning a rectangle into rooms,
// networking the rooms with A*-carved hallways around scattered obstacles,
// smoothing the result with cellular automata, and placing the player,
// enemies and items. See GenerateLevel for the entry point.
package levelgen

import (
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"dungeonflow/pkg/engine/world"
)

// Config is the single immutable configuration record the generation
// pipeline is parameterized by. It is never mutated after construction;
// DeriveConstants reads it to produce the per-level LevelConstants.
type Config struct {
	// Map size growth, spec.md §4.1.
	BaseWidth  int     `yaml:"base_width"`
	MaxWidth   int     `yaml:"max_width"`
	BaseHeight int     `yaml:"base_height"`
	MaxHeight  int     `yaml:"max_height"`
	SizeGrowth float64 `yaml:"size_growth"`

	BaseSplits  int     `yaml:"base_splits"`
	MaxSplits   int     `yaml:"max_splits"`
	SplitGrowth float64 `yaml:"split_growth"`

	BaseObstacles int     `yaml:"base_obstacles"`
	MaxObstacles  int     `yaml:"max_obstacles"`
	BaseItems     int     `yaml:"base_items"`
	MaxItems      int     `yaml:"max_items"`
	BaseEnemies   int     `yaml:"base_enemies"`
	MaxEnemies    int     `yaml:"max_enemies"`
	CountGrowth   float64 `yaml:"count_growth"`

	// BSP / room shape, spec.md §4.2-4.3.
	MinContainerSize int `yaml:"min_container_size"`
	MinRoomSize      int `yaml:"min_room_size"`
	RoomRetryBudget  int `yaml:"room_retry_budget"`

	// Hallway networking, spec.md §4.4.
	ExtraMaximumPercentage float64 `yaml:"extra_maximum_percentage"`
	RemovedConnectionLimit float64 `yaml:"removed_connection_limit"`
	HallwaySize            int     `yaml:"hallway_size"`

	// CellularAutomataIterations is the documented
	// CELLULAR_AUTOMATA_SIMULATION_COUNT. spec.md §9 flags that the source
	// this was distilled from also has a stray hard-coded 15 in one code
	// path; that value is never used here; see spec.md §9 Open Questions.
	CellularAutomataIterations int `yaml:"cellular_automata_iterations"`

	SafeSpawnRadius int `yaml:"safe_spawn_radius"`
	PlaceTries      int `yaml:"place_tries"`

	// ItemWeights / EnemyWeights are the per-type distribution tables the
	// distilled spec left implicit; restored from the Python original's
	// ITEM_DISTRIBUTION / ENEMY_DISTRIBUTION (spec_full.md §12).
	ItemWeights  []TileWeight `yaml:"item_weights"`
	EnemyWeights []TileWeight `yaml:"enemy_weights"`
}

// TileWeight pairs a tile type with its share of the aggregate item/enemy
// count (weights need not sum to 1; each type's count is
// ceil(weight * aggregate)).
type TileWeight struct {
	Tile   world.TileType `yaml:"tile"`
	Weight float64        `yaml:"weight"`
}

// DefaultConfig returns the documented defaults, grounded in the constants
// module of the Python original this core was distilled from
// (MIN_CONTAINER_SIZE=7, MIN_ROOM_SIZE=5, base map 40x20) extended with the
// growth/cap pairs spec.md §4.1 calls for.
func DefaultConfig() Config {
	return Config{
		BaseWidth:  40,
		MaxWidth:   120,
		BaseHeight: 20,
		MaxHeight:  70,
		SizeGrowth: 1.2,

		BaseSplits:  3,
		MaxSplits:   60,
		SplitGrowth: 1.5,

		BaseObstacles: 8,
		MaxObstacles:  80,
		BaseItems:     5,
		MaxItems:      40,
		BaseEnemies:   5,
		MaxEnemies:    40,
		CountGrowth:   1.1,

		MinContainerSize: 7,
		MinRoomSize:      5,
		RoomRetryBudget:  20,

		ExtraMaximumPercentage: 0.15,
		RemovedConnectionLimit: 0.2,
		HallwaySize:            5,

		CellularAutomataIterations: 4,

		SafeSpawnRadius: 5,
		PlaceTries:      15,

		ItemWeights: []TileWeight{
			{Tile: world.HealthPotion, Weight: 0.35},
			{Tile: world.ArmourPotion, Weight: 0.30},
			{Tile: world.HealthBoostPotion, Weight: 0.12},
			{Tile: world.ArmourBoostPotion, Weight: 0.12},
			{Tile: world.SpeedBoostPotion, Weight: 0.06},
			{Tile: world.FireRateBoostPotion, Weight: 0.05},
		},
		EnemyWeights: []TileWeight{
			{Tile: world.Enemy1, Weight: 1.0},
		},
	}
}

// LoadConfig loads a Config from a YAML file, overlaying it onto
// DefaultConfig(). A missing file is not an error — the defaults are
// returned as-is, matching lawnchairsociety-OpenTowerMUD's
// internal/config.LoadConfig. A present-but-unparsable file is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// LevelConstants carries the parameters ConstantsDeriver computed for one
// level: map dimensions plus obstacle/item/enemy counts, including the
// per-type breakdown spec_full.md §12 restores.
type LevelConstants struct {
	Level  int
	Width  int
	Height int

	ObstacleCount int
	ItemCount     int
	EnemyCount    int

	ItemCounts  map[world.TileType]int
	EnemyCounts map[world.TileType]int
}

// DeriveConstants is ConstantsDeriver (spec.md §4.1): a pure function from
// level to a bundle of generation parameters. growth(base, rate, level, cap)
// is applied identically to every scaled quantity.
func DeriveConstants(cfg Config, level int) LevelConstants {
	lc := LevelConstants{
		Level:         level,
		Width:         growth(cfg.BaseWidth, cfg.SizeGrowth, level, cfg.MaxWidth),
		Height:        growth(cfg.BaseHeight, cfg.SizeGrowth, level, cfg.MaxHeight),
		ObstacleCount: growth(cfg.BaseObstacles, cfg.CountGrowth, level, cfg.MaxObstacles),
		ItemCount:     growth(cfg.BaseItems, cfg.CountGrowth, level, cfg.MaxItems),
		EnemyCount:    growth(cfg.BaseEnemies, cfg.CountGrowth, level, cfg.MaxEnemies),
	}
	lc.ItemCounts = distributeCounts(cfg.ItemWeights, lc.ItemCount)
	lc.EnemyCounts = distributeCounts(cfg.EnemyWeights, lc.EnemyCount)
	return lc
}

// SplitIterations returns the split budget for BSPPartitioner, grown and
// capped the same way as the other quantities but kept separate since it
// feeds the partitioner rather than LevelConstants (it is not part of the
// external-facing {level, width, height} contract, spec.md §6).
func (c Config) SplitIterations(level int) int {
	return growth(c.BaseSplits, c.SplitGrowth, level, c.MaxSplits)
}

// growth computes min(round(base * rate^level), cap).
func growth(base int, rate float64, level int, cap int) int {
	v := math.Round(float64(base) * math.Pow(rate, float64(level)))
	if v > float64(cap) {
		return cap
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

// distributeCounts turns a weight table into per-type counts, each
// ceil(weight * total), matching the Python original's
// round(value * generation_constants[ITEM_COUNT]) — rounded here via
// ceiling so a nonzero weight never rounds down to zero for small totals.
func distributeCounts(weights []TileWeight, total int) map[world.TileType]int {
	counts := make(map[world.TileType]int, len(weights))
	for _, w := range weights {
		counts[w.Tile] = int(math.Ceil(w.Weight * float64(total)))
	}
	return counts
}
