package game

import "time"

// Plain data components attachable to entities. Slot layout mirrors the
// dense pools: keep these small and value-typed.

// Transform is world position, scale, and rotation in degrees.
type Transform struct {
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

// RigidBody is linear velocity in world units per second.
type RigidBody struct {
	VX, VY float64
}

// Sprite references a texture in the asset store (owned by the rendering
// layer, outside this core) plus the source rect to draw.
type Sprite struct {
	AssetID       string
	Width, Height int
	ZIndex        int
	Fixed         bool // screen-fixed (UI), ignores camera
	SrcX, SrcY    int
}

// BoxCollider is an axis-aligned collision box offset from the transform.
type BoxCollider struct {
	Width, Height    int
	OffsetX, OffsetY float64
}

// Health is current and maximum hit points.
type Health struct {
	Current, Max int
}

// Projectile marks an entity as dealing damage on collision.
type Projectile struct {
	Damage int
}

// Lifetime destroys the entity when Remaining reaches zero.
type Lifetime struct {
	Remaining time.Duration
}
