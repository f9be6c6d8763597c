package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/nascar/pkg/log"
	"github.com/golangdaddy/nascar/pkg/race"
	"github.com/golangdaddy/nascar/pkg/road"
	"github.com/golangdaddy/nascar/pkg/timeutil"
	"github.com/golangdaddy/nascar/pkg/ui"
)

// Game implements ebiten.Game interface.
type Game struct {
	controller *Controller
	frames     *timeutil.FrameTimer
	renderer   ui.Renderer

	menu        *ui.LevelSelect
	celebration *ui.Celebration
	lastMode    Mode
}

// NewGame wires a controller to the window.
func NewGame(c *Controller, renderer ui.Renderer, clock timeutil.Clock, seed uint64) (*Game, error) {
	menu, err := ui.NewLevelSelect()
	if err != nil {
		return nil, err
	}
	return &Game{
		controller:  c,
		frames:      timeutil.NewFrameTimer(clock),
		renderer:    renderer,
		menu:        menu,
		celebration: ui.NewCelebration(seed),
		lastMode:    c.Mode(),
	}, nil
}

// Update proceeds the game state.
// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	dt := g.frames.Tick()
	ctl := readControls()
	if g.controller.Mode() == ModeLevelSelect {
		if level := g.menu.Update(); level != road.LevelNone {
			ctl.Level = level
		}
	}

	err := g.controller.Update(ctl, dt)
	if errors.Is(err, ErrQuit) {
		return ebiten.Termination
	}
	if err != nil {
		return err
	}

	mode := g.controller.Mode()
	if mode == ModeCelebration {
		if g.lastMode != ModeCelebration {
			g.celebration.Reset()
		}
		g.celebration.Update()
	}
	g.lastMode = mode
	return nil
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.controller.Mode() {
	case ModeLevelSelect:
		g.menu.Draw(screen)
	case ModeRacing, ModeCollision, ModeLapsComplete:
		if snap, ok := g.controller.Snapshot(); ok {
			g.renderer.DrawRace(screen, snap)
		}
	case ModeCelebration:
		g.celebration.Draw(screen, g.controller.CelebrationProgress(), g.controller.RivalName())
	case ModeSummary:
		ui.DrawSummary(screen, g.controller.Summary())
	}
}

// Layout returns the fixed logical screen size; the window scales it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return road.ScreenWidth, road.ScreenHeight
}

// Run opens the window and blocks until the player quits.
func Run(g *Game, scale float64) error {
	ebiten.SetWindowSize(int(road.ScreenWidth*scale), int(road.ScreenHeight*scale))
	ebiten.SetWindowTitle("NASCAR")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

// LogEvents writes race events to the logger. Only the approaching finish
// and the win are logged above debug.
func LogEvents(bus *race.EventBus, logger *log.Logger) {
	bus.SubscribeAll(func(e race.Event) {
		fields := []log.Field{
			log.Stringer("event", e.Type),
			log.Uint64("tick", e.Tick),
			log.Int("lap", e.Lap),
			log.Int("score", e.Score),
		}
		if e.Text != "" {
			fields = append(fields, log.String("text", e.Text))
		}
		switch e.Type {
		case race.EventRaceWon, race.EventFinishApproaching:
			logger.Info("race event", fields...)
		default:
			logger.Debug("race event", fields...)
		}
	})
}
