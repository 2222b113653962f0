package main

import (
	"testing"
	"time"

	cfg "github.com/automoto/telegraph/config"
	"github.com/gdamore/tcell/v2"
	"github.com/automoto/telegraph/assets"
	"github.com/automoto/telegraph/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	math2 "github.com/yohamta/donburi/features/math"
)

func newTestGame() *Game {
	g := &Game{cols: 80, rows: 30}
	g.arena.w, g.arena.h = 800, 600
	return g
}

func TestCellMapping(t *testing.T) {
	g := newTestGame()

	assert.Equal(t, math2.Vec2{X: 5, Y: 10}, g.toWorld(0, 0))
	assert.Equal(t, math2.Vec2{X: 405, Y: 310}, g.toWorld(40, 15))

	col, row := g.toCell(math2.Vec2{X: 405, Y: 310})
	assert.Equal(t, 40, col)
	assert.Equal(t, 15, row)
}

func TestMouseClickLatchesDashOnce(t *testing.T) {
	g := newTestGame()

	assert.True(t, g.handleInput(tcell.NewEventMouse(40, 15, tcell.Button1, tcell.ModNone)))
	assert.True(t, g.latched[cfg.ActionDash])
	assert.Equal(t, math2.Vec2{X: 405, Y: 310}, g.pointer)

	g.latched = [cfg.ActionCount]bool{}
	g.handleInput(tcell.NewEventMouse(41, 15, tcell.Button1, tcell.ModNone))
	assert.False(t, g.latched[cfg.ActionDash], "drag is not a new click")

	g.handleInput(tcell.NewEventMouse(41, 15, tcell.ButtonNone, tcell.ModNone))
	g.handleInput(tcell.NewEventMouse(41, 15, tcell.Button1, tcell.ModNone))
	assert.True(t, g.latched[cfg.ActionDash])
}

func TestKeys(t *testing.T) {
	g := newTestGame()

	g.handleInput(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	g.handleInput(tcell.NewEventKey(tcell.KeyF3, 0, tcell.ModNone))
	g.handleInput(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	assert.True(t, g.latched[cfg.ActionRestart])
	assert.True(t, g.latched[cfg.ActionPause])
	assert.True(t, g.latched[cfg.ActionDebug])

	assert.False(t, g.handleInput(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, g.handleInput(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)))
}

func TestRestartRebuildsWorld(t *testing.T) {
	g := newTestGame()
	g.level = assets.MustLoadArena(cfg.Arena.Level)
	g.seed = 7
	require.NoError(t, g.reset())

	for i := 0; i < 5; i++ {
		g.tick(1.0 / 60)
	}
	require.Equal(t, uint64(5), systems.GetOrCreateSimulation(g.world).Tick)

	g.latched[cfg.ActionRestart] = true
	g.tick(1.0 / 60)
	assert.Zero(t, systems.GetOrCreateSimulation(g.world).Tick)
	assert.False(t, g.latched[cfg.ActionRestart])
}

func TestPumpEventsStops(t *testing.T) {
	waitExit := func(t *testing.T, exited <-chan struct{}) {
		t.Helper()
		select {
		case <-exited:
		case <-time.After(2 * time.Second):
			t.Fatal("event pump did not exit")
		}
	}

	t.Run("screen finalized", func(t *testing.T) {
		screen := tcell.NewSimulationScreen("UTF-8")
		require.NoError(t, screen.Init())

		exited := make(chan struct{})
		go func() {
			pumpEvents(screen, make(chan tcell.Event, 1), make(chan struct{}))
			close(exited)
		}()
		screen.Fini()
		waitExit(t, exited)
	})

	t.Run("reader gone", func(t *testing.T) {
		screen := tcell.NewSimulationScreen("UTF-8")
		require.NoError(t, screen.Init())
		defer screen.Fini()

		out := make(chan tcell.Event) // nobody reads
		done := make(chan struct{})
		exited := make(chan struct{})
		go func() {
			pumpEvents(screen, out, done)
			close(exited)
		}()
		screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
		close(done)
		waitExit(t, exited)
	})
}
