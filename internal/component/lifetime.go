// internal/component/lifetime.go
package component

// Lifetime — оставшееся время жизни сущности в секундах.
// По истечении снаряд возвращается в пул без детонации.
type Lifetime struct {
	Remaining float64
}
