// internal/component/barrier.go
package component

// Barrier — маркер статичного пилона арены. Пилоны останавливают снаряды
// и выталкивают проходящих сквозь них существ, но не имеют здоровья.
type Barrier struct{}
