// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в ECS.
type EntityID uint64
