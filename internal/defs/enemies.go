// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Health        int     `json:"health"`
	Speed         float64 `json:"speed"`
	Armor         int     `json:"armor"`
	ContactDamage int     `json:"contact_damage"`
	XPReward      int     `json:"xp_reward"`
	Visuals       Visuals `json:"visuals"`
}
