// Command arena-tui runs the arena in a terminal. Click to dash, SPACE pauses,
// R restarts, F3 toggles the debug line, ESC quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/automoto/telegraph/assets"
	"github.com/automoto/telegraph/components"
	cfg "github.com/automoto/telegraph/config"
	"github.com/automoto/telegraph/gamemath"
	"github.com/automoto/telegraph/leveldata"
	"github.com/automoto/telegraph/random"
	"github.com/automoto/telegraph/systems"
	"github.com/automoto/telegraph/systems/factory"
	"github.com/automoto/telegraph/tags"
	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

var (
	styleHUD    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleGray   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleRed    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleGhost  = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleEnemy  = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	stylePause  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

type Game struct {
	screen tcell.Screen
	world  donburi.World
	level  *leveldata.Arena
	seed   int64
	arena  struct{ w, h float64 }

	cols, rows int
	mouseDown  bool
	latched    [cfg.ActionCount]bool // key presses seen since the last tick
	pointer    math2.Vec2
}

func NewGame(levelName string, seed int64) (*Game, error) {
	arena, err := assets.LoadArena(levelName)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	g := &Game{
		screen: screen,
		level:  arena,
		seed:   seed,
	}
	g.arena.w, g.arena.h = float64(arena.Width), float64(arena.Height)
	g.cols, g.rows = screen.Size()

	if err := g.reset(); err != nil {
		screen.Fini()
		return nil, err
	}
	return g, nil
}

// reset rebuilds the world from the loaded level.
func (g *Game) reset() error {
	w := donburi.NewWorld()
	if err := factory.CreateArena(w, g.level, random.NewPRNG(g.seed)); err != nil {
		return err
	}
	g.world = w
	return nil
}

// cellSize is the world-space size of one terminal cell.
func (g *Game) cellSize() (float64, float64) {
	return g.arena.w / float64(max(g.cols, 1)), g.arena.h / float64(max(g.rows, 1))
}

func (g *Game) toWorld(col, row int) math2.Vec2 {
	cw, ch := g.cellSize()
	return math2.Vec2{X: (float64(col) + 0.5) * cw, Y: (float64(row) + 0.5) * ch}
}

func (g *Game) toCell(p math2.Vec2) (int, int) {
	cw, ch := g.cellSize()
	return int(p.X / cw), int(p.Y / ch)
}

func (g *Game) set(p math2.Vec2, r rune, style tcell.Style) {
	col, row := g.toCell(p)
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return
	}
	g.screen.SetContent(col, row, r, nil, style)
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyF3 {
			g.latched[cfg.ActionDebug] = true
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case ' ':
				g.latched[cfg.ActionPause] = true
			case 'r', 'R':
				g.latched[cfg.ActionRestart] = true
			}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		g.pointer = g.toWorld(col, row)
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !g.mouseDown {
			g.latched[cfg.ActionDash] = true
		}
		g.mouseDown = down

	case *tcell.EventResize:
		g.cols, g.rows = g.screen.Size()
		g.screen.Sync()
	}
	return true
}

func (g *Game) tick(dt float64) {
	input := systems.GetOrCreateInput(g.world)
	input.Advance(g.latched)
	input.Pointer = g.pointer
	g.latched = [cfg.ActionCount]bool{}

	if systems.RestartRequested(g.world) {
		if err := g.reset(); err != nil {
			log.Printf("Warning: restart failed: %v", err)
		}
		return
	}

	systems.Step(g.world, dt)
	systems.DrainSFX(g.world, func(id cfg.SoundID) {
		if id == cfg.SoundDash {
			_ = g.screen.Beep()
		}
	})
}

func (g *Game) draw() {
	g.screen.Clear()
	cw, ch := g.cellSize()
	step := min(cw, ch) / 2

	tags.Enemy.Each(g.world, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.CircleVisible() {
			for row := 0; row < g.rows; row++ {
				for col := 0; col < g.cols; col++ {
					d := gamemath.Distance(g.toWorld(col, row), enemy.CircleCenter)
					switch {
					case d <= enemy.ExpandingRadius:
						g.screen.SetContent(col, row, '▓', nil, styleRed)
					case d <= enemy.CircleRadius:
						g.screen.SetContent(col, row, '░', nil, styleGray)
					}
				}
			}
		}
		for i, r := range enemy.Rays {
			if !enemy.RayVisible(i) {
				continue
			}
			style := styleRed
			if r.IsOuter {
				style = styleGray
			}
			for t := 0.0; t <= r.Length; t += step {
				g.set(gamemath.Add(enemy.Position, gamemath.Scale(r.Direction, t)), '·', style)
			}
		}
		g.set(enemy.Position, 'E', styleEnemy)
	})

	var offset math2.Vec2
	if cameraEntry, ok := components.Camera.First(g.world); ok {
		offset = components.Camera.Get(cameraEntry).Offset
	}
	if playerEntry, ok := tags.Player.First(g.world); ok {
		components.GhostTrail.Get(playerEntry).Each(func(gh components.Ghost) {
			r := '░'
			if gh.Alpha > 0.66 {
				r = '▓'
			} else if gh.Alpha > 0.33 {
				r = '▒'
			}
			g.set(gamemath.Add(gh.Position, offset), r, styleGhost)
		})
		g.set(gamemath.Add(components.Dash.Get(playerEntry).Position, offset), '@', stylePlayer)
	}

	g.print(1, 0, cfg.HUD.Hint+"  SPACE - PAUSE  R - RESTART  ESC - QUIT", styleHUD)
	sim := systems.GetOrCreateSimulation(g.world)
	if cfg.Debug.ShowBodies {
		g.print(1, g.rows-1, fmt.Sprintf("tick %d", sim.Tick), styleHUD)
	}
	if sim.Paused() {
		g.print((g.cols-len(cfg.Pause.Title))/2, g.rows/2, cfg.Pause.Title, stylePause)
	}
	g.screen.Show()
}

func (g *Game) print(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		g.screen.SetContent(x+i, y, r, nil, style)
	}
}

// pumpEvents forwards screen events to out until the screen is finalized or
// done is closed.
func pumpEvents(screen tcell.Screen, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

func (g *Game) run(fps int) {
	frame := time.Second / time.Duration(fps)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(g.screen, eventChan, done)

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case <-ticker.C:
			g.tick(frame.Seconds())
			g.draw()
		}
	}
}

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	level := flag.String("level", cfg.Arena.Level, "embedded level file to load")
	fps := flag.Int("fps", cfg.C.TPS, "simulation steps per second")
	flag.Parse()

	if *fps <= 0 {
		fmt.Fprintln(os.Stderr, "fps must be positive")
		os.Exit(2)
	}

	g, err := NewGame(*level, *seed)
	if err != nil {
		log.Fatalf("arena-tui: %v", err)
	}
	defer g.screen.Fini()

	g.run(*fps)
}
