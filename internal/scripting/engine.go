package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/EvanderRPT/2dgameengine/internal/ecs"
	"github.com/EvanderRPT/2dgameengine/internal/game"
)

// Engine wraps a single gopher-lua VM exposing the type-erased
// entity/component API to scripts. Single-goroutine access only (game
// loop). Scripts see entities as plain integer handles; component types
// are erased behind one binding per component.
type Engine struct {
	vm       *lua.LState
	registry *ecs.Registry
	log      *zap.Logger
}

// NewEngine creates a Lua engine, installs the engine API, and loads all
// .lua files from the given directory (missing directory is not an error).
func NewEngine(scriptsDir string, registry *ecs.Registry, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, registry: registry, log: log}
	e.registerAPI()

	if err := e.loadDir(scriptsDir); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load scripts: %w", err)
	}
	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// ExecString runs a chunk of Lua source. Used by tests and the console.
func (e *Engine) ExecString(src string) error {
	return e.vm.DoString(src)
}

// OnTick calls the optional Lua on_tick(dt_seconds) hook.
func (e *Engine) OnTick(dt time.Duration) {
	fn := e.vm.GetGlobal("on_tick")
	if fn == lua.LNil {
		return
	}
	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, lua.LNumber(dt.Seconds())); err != nil {
		e.log.Error("lua on_tick error", zap.Error(err))
	}
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}

// registerAPI installs the engine globals scripts call into.
func (e *Engine) registerAPI() {
	r := e.registry
	reg := func(name string, fn lua.LGFunction) {
		e.vm.SetGlobal(name, e.vm.NewFunction(fn))
	}

	reg("create_entity", func(L *lua.LState) int {
		ent := r.CreateEntity()
		L.Push(lua.LNumber(ent.ID()))
		return 1
	})

	reg("kill_entity", func(L *lua.LState) int {
		r.KillEntity(ecs.Entity(L.CheckInt(1)))
		return 0
	})

	reg("entity_count", func(L *lua.LState) int {
		L.Push(lua.LNumber(r.Len()))
		return 1
	})

	reg("add_transform", func(L *lua.LState) int {
		ent := ecs.Entity(L.CheckInt(1))
		scale := 1.0
		if L.GetTop() >= 4 {
			scale = float64(L.CheckNumber(4))
		}
		rotation := 0.0
		if L.GetTop() >= 5 {
			rotation = float64(L.CheckNumber(5))
		}
		ecs.Add(r, ent, game.Transform{
			X:      float64(L.CheckNumber(2)),
			Y:      float64(L.CheckNumber(3)),
			ScaleX: scale, ScaleY: scale,
			Rotation: rotation,
		})
		return 0
	})

	reg("add_rigidbody", func(L *lua.LState) int {
		ecs.Add(r, ecs.Entity(L.CheckInt(1)), game.RigidBody{
			VX: float64(L.CheckNumber(2)),
			VY: float64(L.CheckNumber(3)),
		})
		return 0
	})

	reg("add_sprite", func(L *lua.LState) int {
		ecs.Add(r, ecs.Entity(L.CheckInt(1)), game.Sprite{
			AssetID: L.CheckString(2),
			Width:   L.CheckInt(3),
			Height:  L.CheckInt(4),
			ZIndex:  L.OptInt(5, 0),
		})
		return 0
	})

	reg("add_box_collider", func(L *lua.LState) int {
		ecs.Add(r, ecs.Entity(L.CheckInt(1)), game.BoxCollider{
			Width:  L.CheckInt(2),
			Height: L.CheckInt(3),
		})
		return 0
	})

	reg("add_health", func(L *lua.LState) int {
		hp := L.CheckInt(2)
		ecs.Add(r, ecs.Entity(L.CheckInt(1)), game.Health{Current: hp, Max: hp})
		return 0
	})

	reg("add_projectile", func(L *lua.LState) int {
		ecs.Add(r, ecs.Entity(L.CheckInt(1)), game.Projectile{
			Damage: L.CheckInt(2),
		})
		return 0
	})

	reg("add_lifetime", func(L *lua.LState) int {
		secs := float64(L.CheckNumber(2))
		ecs.Add(r, ecs.Entity(L.CheckInt(1)), game.Lifetime{
			Remaining: time.Duration(secs * float64(time.Second)),
		})
		return 0
	})

	reg("get_position", func(L *lua.LState) int {
		ent := ecs.Entity(L.CheckInt(1))
		if !ecs.Has[game.Transform](r, ent) {
			L.Push(lua.LNil)
			return 1
		}
		t := ecs.Get[game.Transform](r, ent)
		L.Push(lua.LNumber(t.X))
		L.Push(lua.LNumber(t.Y))
		return 2
	})

	reg("set_velocity", func(L *lua.LState) int {
		ent := ecs.Entity(L.CheckInt(1))
		vx := float64(L.CheckNumber(2))
		vy := float64(L.CheckNumber(3))
		if ecs.Has[game.RigidBody](r, ent) {
			rb := ecs.Get[game.RigidBody](r, ent)
			rb.VX, rb.VY = vx, vy
		} else {
			ecs.Add(r, ent, game.RigidBody{VX: vx, VY: vy})
		}
		return 0
	})

	reg("get_health", func(L *lua.LState) int {
		ent := ecs.Entity(L.CheckInt(1))
		if !ecs.Has[game.Health](r, ent) {
			L.Push(lua.LNil)
			return 1
		}
		h := ecs.Get[game.Health](r, ent)
		L.Push(lua.LNumber(h.Current))
		L.Push(lua.LNumber(h.Max))
		return 2
	})
}
