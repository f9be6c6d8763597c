package game

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/golangdaddy/nascar/pkg/data"
	"github.com/golangdaddy/nascar/pkg/log"
	"github.com/golangdaddy/nascar/pkg/models/summary"
	"github.com/golangdaddy/nascar/pkg/race"
	"github.com/golangdaddy/nascar/pkg/road"
)

// ErrQuit is returned by Update when the player asks to leave the game.
var ErrQuit = errors.New("quit requested")

// CelebrationTime is how long the trophy screen stays up after the last lap.
const CelebrationTime = 4 * time.Second

// Mode is the screen the game is currently on.
type Mode int

const (
	ModeLevelSelect Mode = iota
	ModeRacing
	ModeCollision
	ModeLapsComplete
	ModeCelebration
	ModeSummary
)

func (m Mode) String() string {
	switch m {
	case ModeLevelSelect:
		return "levelSelect"
	case ModeRacing:
		return "racing"
	case ModeCollision:
		return "collision"
	case ModeLapsComplete:
		return "lapsComplete"
	case ModeCelebration:
		return "celebration"
	case ModeSummary:
		return "summary"
	}
	return "unknown"
}

// Controls is what the player asked for during one frame.
type Controls struct {
	Race    race.Input
	Quit    bool
	Restart bool
	Level   road.Level // chosen level, LevelNone if none
}

// Controller moves the game between level select, racing, celebration and
// summary. It owns the current race and forwards its events to the bus.
type Controller struct {
	mode   Mode
	bus    *race.EventBus
	rng    *rand.Rand
	pacing race.Pacing
	logger *log.Logger

	sim       *race.Simulation
	spawns    *race.SpawnSchedule
	rivalName string

	celebrating time.Duration
	summary     summary.Summary
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithSeed makes lanes, praise and rival behaviour reproducible.
func WithSeed(seed uint64) ControllerOption {
	return func(c *Controller) {
		c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithPacing selects how rivals pace themselves in every race.
func WithPacing(p race.Pacing) ControllerOption {
	return func(c *Controller) {
		c.pacing = p
	}
}

// WithLogger sets the parent logger for the controller and its races.
func WithLogger(l *log.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = l
	}
}

// NewController starts at level select. A nil bus gets a private one.
func NewController(bus *race.EventBus, opts ...ControllerOption) *Controller {
	if bus == nil {
		bus = race.NewEventBus()
	}
	c := &Controller{
		mode:   ModeLevelSelect,
		bus:    bus,
		pacing: race.PacingSurge,
		logger: log.Default().Named("game"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		WithSeed(uint64(time.Now().UnixNano()))(c)
	}
	return c
}

// Update advances the current mode by one frame.
func (c *Controller) Update(ctl Controls, dt time.Duration) error {
	if ctl.Quit {
		c.logger.Info("quit", log.Stringer("mode", c.mode))
		return ErrQuit
	}
	switch c.mode {
	case ModeLevelSelect:
		if ctl.Level != road.LevelNone {
			return c.Start(ctl.Level)
		}
	case ModeRacing:
		c.step(ctl.Race, dt)
	case ModeCollision:
		c.summarize()
	case ModeLapsComplete:
		c.mode = ModeCelebration
		c.celebrating = 0
		c.bus.Emit(race.Event{
			Type:  race.EventRaceWon,
			Lap:   c.sim.State().Laps,
			Score: c.sim.State().Score,
		})
	case ModeCelebration:
		c.celebrating += dt
		if c.celebrating >= CelebrationTime {
			c.summarize()
		}
	case ModeSummary:
		if ctl.Restart {
			c.sim = nil
			c.spawns = nil
			c.mode = ModeLevelSelect
			c.logger.Debug("back to level select")
		}
	}
	return nil
}

// Start begins a fresh race on the given level.
func (c *Controller) Start(level road.Level) error {
	cfg, err := road.Preset(level)
	if err != nil {
		return err
	}
	sim, err := race.New(cfg,
		race.WithRand(c.rng),
		race.WithPacing(c.pacing),
		race.WithLogger(c.logger.Named("race")),
	)
	if err != nil {
		return err
	}
	c.sim = sim
	c.spawns = race.NewSpawnSchedule(cfg.SpawnInterval)
	c.rivalName = data.RivalNames[c.rng.IntN(len(data.RivalNames))]
	c.summary = summary.Summary{}
	c.mode = ModeRacing
	c.bus.Emit(race.Event{Type: race.EventRaceStarted, Text: c.rivalName})
	c.logger.Info("race started",
		log.String("race", sim.State().ID.String()),
		log.Stringer("level", level),
		log.String("rival", c.rivalName),
		log.Stringer("pacing", c.pacing),
	)
	return nil
}

func (c *Controller) step(in race.Input, dt time.Duration) {
	for range c.spawns.Advance(dt) {
		c.sim.Spawn()
	}
	res := c.sim.Step(dt, in)
	c.bus.Dispatch(res.Events)

	terminal, ok := res.Terminal()
	if !ok {
		return
	}
	switch terminal.Type {
	case race.EventCollision:
		c.mode = ModeCollision
	case race.EventRaceFinished:
		c.mode = ModeLapsComplete
	}
}

func (c *Controller) summarize() {
	c.summary = c.sim.Summary()
	c.summary.RivalName = c.rivalName
	c.mode = ModeSummary
	c.logger.Info("race summary",
		log.String("race", c.summary.RaceID),
		log.Stringer("outcome", c.summary.Outcome),
		log.Int("score", c.summary.Score),
		log.Bool("won", c.summary.PlayerWon()),
		log.Duration("duration", c.summary.Duration),
	)
}

// Mode returns the current screen.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Bus returns the event bus races report to.
func (c *Controller) Bus() *race.EventBus {
	return c.bus
}

// Snapshot returns the current race for rendering. ok is false when no race
// has been started since the last level select.
func (c *Controller) Snapshot() (snap race.Snapshot, ok bool) {
	if c.sim == nil {
		return race.Snapshot{}, false
	}
	return c.sim.Snapshot(), true
}

// Summary is the record of the last finished race.
func (c *Controller) Summary() summary.Summary {
	return c.summary
}

// RivalName is the rival driver of the current race.
func (c *Controller) RivalName() string {
	return c.rivalName
}

// CelebrationProgress runs from 0 to 1 over the celebration.
func (c *Controller) CelebrationProgress() float64 {
	if c.mode != ModeCelebration {
		return 0
	}
	return min(float64(c.celebrating)/float64(CelebrationTime), 1)
}
