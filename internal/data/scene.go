package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scene describes the initial entities of a level. Scenes are static asset
// definitions fed into the registry at load time, never written back.
type Scene struct {
	Name     string      `yaml:"name"`
	Entities []EntityDef `yaml:"entities"`
}

// EntityDef lists the components one entity starts with. A nil section
// means the component is absent.
type EntityDef struct {
	Name        string          `yaml:"name"`
	Transform   *TransformDef   `yaml:"transform"`
	RigidBody   *RigidBodyDef   `yaml:"rigidbody"`
	Sprite      *SpriteDef      `yaml:"sprite"`
	BoxCollider *BoxColliderDef `yaml:"boxcollider"`
	Health      *HealthDef      `yaml:"health"`
	Projectile  *ProjectileDef  `yaml:"projectile"`
	Lifetime    *LifetimeDef    `yaml:"lifetime"`
}

type TransformDef struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Scale    float64 `yaml:"scale"`
	Rotation float64 `yaml:"rotation"`
}

type RigidBodyDef struct {
	VX float64 `yaml:"vx"`
	VY float64 `yaml:"vy"`
}

type SpriteDef struct {
	Asset  string `yaml:"asset"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Z      int    `yaml:"z"`
	Fixed  bool   `yaml:"fixed"`
	SrcX   int    `yaml:"src_x"`
	SrcY   int    `yaml:"src_y"`
}

type BoxColliderDef struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type HealthDef struct {
	HP int `yaml:"hp"`
}

type ProjectileDef struct {
	Damage int `yaml:"damage"`
}

type LifetimeDef struct {
	Seconds float64 `yaml:"seconds"`
}

// LoadScene loads a scene definition from a YAML file.
func LoadScene(path string) (*Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	var s Scene
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}
	return &s, nil
}
