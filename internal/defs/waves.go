// internal/defs/waves.go
package defs

// SpawnEntry is a weighted option inside a wave's enemy mix.
type SpawnEntry struct {
	EnemyID string `json:"enemy_id"`
	Weight  int    `json:"weight"`
}

// WaveDefinition describes the composition of a single wave.
type WaveDefinition struct {
	Wave          int          `json:"wave"`
	Count         int          `json:"count"`
	SpawnInterval float64      `json:"spawn_interval"` // seconds between spawns
	Entries       []SpawnEntry `json:"entries"`
}
