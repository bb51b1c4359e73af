package game

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/EvanderRPT/2dgameengine/internal/config"
	"github.com/EvanderRPT/2dgameengine/internal/data"
	"github.com/EvanderRPT/2dgameengine/internal/ecs"
	"github.com/EvanderRPT/2dgameengine/internal/event"
)

// Game is the host: it owns the registry, the event bus, and the system
// runner, and drives the fixed-tick simulation loop. External layers
// (rendering, input, scripting) consume the core only through the
// Registry and Entity contracts.
type Game struct {
	cfg      *config.Config
	log      *zap.Logger
	registry *ecs.Registry
	bus      *event.Bus
	runner   *Runner

	// TickHook, if set, runs at the end of every tick. The scripting
	// layer installs its on_tick bridge here.
	TickHook func(dt time.Duration)
}

func New(cfg *config.Config, log *zap.Logger) *Game {
	registry := ecs.NewRegistry(log)
	registry.Reserve(cfg.Engine.MaxEntities)
	bus := event.NewBus()
	runner := NewRunner()

	movement := NewMovementSystem(registry)
	collision := NewCollisionSystem(registry, bus, log)
	lifetime := NewLifetimeSystem(registry, bus)
	NewDamageSystem(registry, bus, log) // subscription-only, no membership

	registry.AddSystem(movement)
	registry.AddSystem(collision)
	registry.AddSystem(lifetime)

	runner.Register(movement)
	runner.Register(collision)
	runner.Register(lifetime)

	return &Game{
		cfg:      cfg,
		log:      log,
		registry: registry,
		bus:      bus,
		runner:   runner,
	}
}

func (g *Game) Registry() *ecs.Registry { return g.registry }
func (g *Game) Bus() *event.Bus         { return g.bus }

// LoadScene spawns every entity a scene file defines.
func (g *Game) LoadScene(path string) error {
	scene, err := data.LoadScene(path)
	if err != nil {
		return err
	}
	for _, def := range scene.Entities {
		g.Spawn(def)
	}
	g.log.Info("scene loaded",
		zap.String("scene", scene.Name),
		zap.Int("entities", len(scene.Entities)))
	return nil
}

// Spawn creates one entity from a definition. The entity activates into
// systems on the next Update tick.
func (g *Game) Spawn(def data.EntityDef) ecs.Entity {
	r := g.registry
	e := r.CreateEntity()
	if d := def.Transform; d != nil {
		scale := d.Scale
		if scale == 0 {
			scale = 1
		}
		ecs.Add(r, e, Transform{X: d.X, Y: d.Y, ScaleX: scale, ScaleY: scale, Rotation: d.Rotation})
	}
	if d := def.RigidBody; d != nil {
		ecs.Add(r, e, RigidBody{VX: d.VX, VY: d.VY})
	}
	if d := def.Sprite; d != nil {
		ecs.Add(r, e, Sprite{
			AssetID: d.Asset,
			Width:   d.Width, Height: d.Height,
			ZIndex: d.Z, Fixed: d.Fixed,
			SrcX: d.SrcX, SrcY: d.SrcY,
		})
	}
	if d := def.BoxCollider; d != nil {
		ecs.Add(r, e, BoxCollider{
			Width: d.Width, Height: d.Height,
			OffsetX: d.OffsetX, OffsetY: d.OffsetY,
		})
	}
	if d := def.Health; d != nil {
		ecs.Add(r, e, Health{Current: d.HP, Max: d.HP})
	}
	if d := def.Projectile; d != nil {
		ecs.Add(r, e, Projectile{Damage: d.Damage})
	}
	if d := def.Lifetime; d != nil {
		ecs.Add(r, e, Lifetime{Remaining: time.Duration(d.Seconds * float64(time.Second))})
	}
	return e
}

// Tick advances the simulation one step: registry synchronization first
// (activation + kills), then last tick's events, then the phase-ordered
// systems, then the script hook.
func (g *Game) Tick(dt time.Duration) {
	g.registry.Update()
	g.bus.SwapBuffers()
	g.bus.DispatchAll()
	g.runner.Tick(dt)
	if g.TickHook != nil {
		g.TickHook(dt)
	}
}

// Run drives the fixed-tick loop until ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	ticker := time.NewTicker(g.cfg.Engine.TickRate)
	defer ticker.Stop()

	g.log.Info("game loop started", zap.Duration("tick", g.cfg.Engine.TickRate))
	for {
		select {
		case <-ticker.C:
			g.Tick(g.cfg.Engine.TickRate)
		case <-ctx.Done():
			g.log.Info("game loop stopped", zap.Int("entities", g.registry.Len()))
			return nil
		}
	}
}
