package scripting

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/EvanderRPT/2dgameengine/internal/ecs"
	"github.com/EvanderRPT/2dgameengine/internal/game"
)

func newTestEngine(t *testing.T) (*Engine, *ecs.Registry) {
	t.Helper()
	r := ecs.NewRegistry(zaptest.NewLogger(t))
	eng, err := NewEngine(filepath.Join(t.TempDir(), "missing"), r, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(eng.Close)
	return eng, r
}

func TestMissingScriptsDirIsNotAnError(t *testing.T) {
	eng, _ := newTestEngine(t)
	require.NotNil(t, eng)
}

func TestLoadDirRunsScripts(t *testing.T) {
	dir := t.TempDir()
	src := `e = create_entity()
add_transform(e, 5, 6)
add_rigidbody(e, 1, 2)
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "init.lua"), []byte(src), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not lua"), 0o644))

	r := ecs.NewRegistry(zaptest.NewLogger(t))
	eng, err := NewEngine(dir, r, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer eng.Close()

	require.Equal(t, 1, r.Len())
	r.Update()

	e := ecs.Entity(0)
	require.Equal(t, 5.0, ecs.Get[game.Transform](r, e).X)
	require.Equal(t, 2.0, ecs.Get[game.RigidBody](r, e).VY)
}

func TestLoadDirReportsBrokenScript(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.lua"), []byte("this is not lua ("), 0o644))

	r := ecs.NewRegistry(zaptest.NewLogger(t))
	_, err := NewEngine(dir, r, zaptest.NewLogger(t))
	require.Error(t, err)
}

func TestEntityAPI(t *testing.T) {
	eng, r := newTestEngine(t)

	require.NoError(t, eng.ExecString(`
		e = create_entity()
		add_transform(e, 10, 20)
		add_health(e, 80)
		add_box_collider(e, 16, 16)
	`))
	require.Equal(t, 1, r.Len())
	r.Update()

	e := ecs.Entity(0)
	require.Equal(t, 10.0, ecs.Get[game.Transform](r, e).X)
	require.Equal(t, 20.0, ecs.Get[game.Transform](r, e).Y)
	require.Equal(t, 1.0, ecs.Get[game.Transform](r, e).ScaleX) // default scale
	require.Equal(t, 80, ecs.Get[game.Health](r, e).Max)
	require.Equal(t, 16, ecs.Get[game.BoxCollider](r, e).Width)

	// reads round-trip back into Lua
	require.NoError(t, eng.ExecString(`
		local x, y = get_position(e)
		assert(x == 10 and y == 20, "bad position")
		local hp, max = get_health(e)
		assert(hp == 80 and max == 80, "bad health")
		assert(entity_count() == 1, "bad count")
	`))

	require.NoError(t, eng.ExecString(`kill_entity(e)`))
	r.Update()
	require.Equal(t, 0, r.Len())
}

func TestGetPositionWithoutTransform(t *testing.T) {
	eng, r := newTestEngine(t)
	require.NoError(t, eng.ExecString(`e = create_entity()`))
	r.Update()
	require.NoError(t, eng.ExecString(`assert(get_position(e) == nil)`))
}

func TestSetVelocityAttachesWhenMissing(t *testing.T) {
	eng, r := newTestEngine(t)
	require.NoError(t, eng.ExecString(`
		e = create_entity()
		set_velocity(e, 3, 4)
	`))
	r.Update()

	e := ecs.Entity(0)
	rb := ecs.Get[game.RigidBody](r, e)
	require.Equal(t, 3.0, rb.VX)
	require.Equal(t, 4.0, rb.VY)

	// second call mutates in place instead of re-attaching
	require.NoError(t, eng.ExecString(`set_velocity(e, -1, 0)`))
	require.Equal(t, -1.0, rb.VX)
}

func TestOnTickHook(t *testing.T) {
	eng, _ := newTestEngine(t)

	// without a hook defined, OnTick is a no-op
	eng.OnTick(time.Second)

	require.NoError(t, eng.ExecString(`
		elapsed = 0
		function on_tick(dt)
			elapsed = elapsed + dt
		end
	`))
	eng.OnTick(time.Second)
	eng.OnTick(500 * time.Millisecond)
	require.NoError(t, eng.ExecString(`assert(elapsed == 1.5, "hook not called")`))
}
