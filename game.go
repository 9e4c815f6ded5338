package main

import (
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/actionmap/config"
	"github.com/milk9111/actionmap/gesture"
	"github.com/milk9111/actionmap/input"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 640
	baseHeight = 480

	playerSize  = 16
	playerSpeed = 2
	// how many triggered actions the overlay remembers
	historyLen = 8
)

type Game struct {
	cfg     config.Config
	input   *input.Manager
	pointer *gesture.EbitenSource
	watcher *input.Watcher
	overlay *overlayUI

	player  image.Point
	history []string
}

func NewGame(cfg config.Config) (*Game, error) {
	mgr := input.NewManager(input.NewEbitenSampler(), input.WithDebug(cfg.Debug))

	if cfg.Bindings == "" {
		mgr.Initialize()
	} else {
		file, err := input.LoadConfig(cfg.Bindings)
		if err != nil {
			return nil, err
		}
		mgr.InitializeWith(file.Bindings, file.Gestures)
	}

	g := &Game{
		cfg:     cfg,
		input:   mgr,
		pointer: gesture.NewEbitenSource(gesture.NewTracker(mgr, cfg.Debug), cfg.LongPressTicks),
		overlay: newOverlayUI(),
		player:  image.Pt(baseWidth/2, baseHeight/2),
	}

	if cfg.Watch {
		w, err := input.NewWatcher(cfg.Bindings)
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", cfg.Bindings, err)
		}
		g.watcher = w
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if err := g.input.Update(); err != nil {
		return err
	}
	g.pointer.Poll()
	g.reloadBindings()

	if g.input.IsActionTriggered(input.ExitGame) {
		return ebiten.Termination
	}

	if g.input.IsActionPressed(input.MoveCharacterLeft) {
		g.player.X -= playerSpeed
	}
	if g.input.IsActionPressed(input.MoveCharacterRight) {
		g.player.X += playerSpeed
	}
	if g.input.IsActionPressed(input.MoveCharacterUp) {
		g.player.Y -= playerSpeed
	}
	if g.input.IsActionPressed(input.MoveCharacterDown) {
		g.player.Y += playerSpeed
	}
	g.player.X = clamp(g.player.X, 0, baseWidth-playerSize)
	g.player.Y = clamp(g.player.Y, 0, baseHeight-playerSize)

	for _, a := range input.Actions() {
		if g.input.IsActionTriggered(a) {
			g.history = append(g.history, fmt.Sprintf("%d: %s", g.input.Frame(), a))
		}
	}
	if n := len(g.history); n > historyLen {
		g.history = g.history[n-historyLen:]
	}

	g.overlay.refresh(g)
	return nil
}

// reloadBindings stages a reset for every changed binding file. A file
// that fails to parse leaves the active tables in place.
func (g *Game) reloadBindings() {
	if g.watcher == nil {
		return
	}
	for _, name := range g.watcher.Drain() {
		file, err := input.LoadConfig(name)
		if err == nil {
			err = file.Apply(g.input)
		}
		if err != nil {
			log.Printf("input: reload %s: %v", name, err)
			continue
		}
		log.Printf("input: reloaded %s", name)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	vector.FillRect(screen, float32(g.player.X), float32(g.player.Y), playerSize, playerSize, colornames.Orange, false)

	if g.input.IsPointerPressed() {
		p := g.input.PointerPosition()
		clr := colornames.Lightgreen
		if g.input.InventoryRequested() {
			clr = colornames.Gold
		}
		vector.FillCircle(screen, float32(p.X), float32(p.Y), 6, clr, true)
	}

	g.overlay.ui.Draw(screen)
}

func (g *Game) statusText() string {
	m := g.input.PointerMovement()
	return fmt.Sprintf("FPS: %.2f  frame: %d  gamepad: %v\npointer: pressed=%v movement=(%.0f,%.0f)",
		ebiten.ActualFPS(), g.input.Frame(), g.input.IsGamePadConnected(), g.input.IsPointerPressed(), m.X, m.Y)
}

// actionsText lists every action, marking the pressed ones with '*'.
func (g *Game) actionsText() string {
	var b strings.Builder
	for i, a := range input.Actions() {
		if i > 0 {
			b.WriteByte('\n')
		}
		mark := " "
		if g.input.IsActionPressed(a) {
			mark = "*"
		}
		fmt.Fprintf(&b, "%s %s", mark, a)
	}
	return b.String()
}

func (g *Game) historyText() string {
	return "triggered:\n" + strings.Join(g.history, "\n")
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
