// internal/defs/types.go
package defs

import "image/color"

// WeaponVariant defines how a projectile resolves its hits.
type WeaponVariant string

const (
	VariantNormal    WeaponVariant = "NORMAL"
	VariantPierce    WeaponVariant = "PIERCE"
	VariantExplosive WeaponVariant = "EXPLOSIVE"
)

// Visuals groups the presentation parameters shared by all definitions.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
	StrokeWidth  float64    `json:"stroke_width"`
}
