// internal/component/status_effect.go
package component

// Invulnerability indicates that an entity ignores contact damage.
type Invulnerability struct {
	Timer float64 // How much time is left for the effect.
}
