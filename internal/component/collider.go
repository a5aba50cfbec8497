// internal/component/collider.go
package component

// Collider — круглая область столкновений сущности.
// Роль участника (снаряд, враг, игрок, пилон) определяется тем,
// в каких картах ECS сущность состоит, а не полем коллайдера.
type Collider struct {
	Radius float64
}
