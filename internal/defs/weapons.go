// internal/defs/weapons.go
package defs

// WeaponDefinition holds all the static data for a player weapon.
// MaxPierce applies only to PIERCE weapons, ExplosionRadius only to
// EXPLOSIVE ones; the loader validates both.
type WeaponDefinition struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Variant         WeaponVariant `json:"variant"`
	Damage          int           `json:"damage"`
	ProjectileSpeed float64       `json:"projectile_speed"`
	FireRate        float64       `json:"fire_rate"` // shots per second
	Lifetime        float64       `json:"lifetime"`  // seconds a projectile stays alive
	MaxPierce       int           `json:"max_pierce,omitempty"`
	ExplosionRadius float64       `json:"explosion_radius,omitempty"`
	Visuals         Visuals       `json:"visuals"`
}
