package race

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/samber/lo"

	"github.com/golangdaddy/nascar/pkg/data"
	"github.com/golangdaddy/nascar/pkg/log"
	"github.com/golangdaddy/nascar/pkg/models"
	"github.com/golangdaddy/nascar/pkg/models/car"
	"github.com/golangdaddy/nascar/pkg/models/summary"
	"github.com/golangdaddy/nascar/pkg/road"
	"github.com/golangdaddy/nascar/pkg/vehicle"
)

const (
	// PassDistance is the lap distance gained per dodged obstacle.
	PassDistance = 40.0
	// BoostPassBonus is added to PassDistance while boosting.
	BoostPassBonus = 25.0
	// PraiseLifetime is how long an encouragement message stays up.
	PraiseLifetime = time.Second
)

// Result is what one tick produced.
type Result struct {
	Events []Event
	Ended  bool
}

// Terminal returns the event that ended the race, if this tick ended it.
func (r Result) Terminal() (Event, bool) {
	return lo.Find(r.Events, func(e Event) bool { return e.Type.Terminal() })
}

// Simulation runs one race. It owns the race state and is driven one tick
// at a time from the frame loop.
type Simulation struct {
	cfg   road.TrackConfig
	track road.Track
	state *models.RaceState

	rng    *rand.Rand
	pacing Pacing
	pacer  pacer
	logger *log.Logger

	events  []Event
	ended   bool
	outcome summary.Outcome
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithRand sets the random source used for lanes, praise and rival surges.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulation) {
		s.rng = rng
	}
}

// WithPacing selects the rival pacing strategy.
func WithPacing(p Pacing) Option {
	return func(s *Simulation) {
		s.pacing = p
	}
}

// WithLogger sets the logger race lifecycle messages go to.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) {
		s.logger = l
	}
}

// New validates the track configuration and prepares a race.
func New(cfg road.TrackConfig, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new race: %w", err)
	}
	s := &Simulation{
		cfg:    cfg,
		track:  cfg.Track(),
		state:  models.NewRaceState(cfg),
		pacing: PacingSurge,
		logger: log.Default().Named("race"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed := uint64(time.Now().UnixNano())
		s.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	s.pacer = newPacer(s.pacing, s.rng, cfg.RivalMultiplier)
	s.logger = s.logger.With(log.String("race", s.state.ID.String()))
	return s, nil
}

// Config returns the track configuration of the race.
func (s *Simulation) Config() road.TrackConfig {
	return s.cfg
}

// Track returns the track geometry of the race.
func (s *Simulation) Track() road.Track {
	return s.track
}

// State exposes the live race state. Callers must treat it as read-only.
func (s *Simulation) State() *models.RaceState {
	return s.state
}

// Done reports whether the race has ended.
func (s *Simulation) Done() bool {
	return s.ended
}

// Step advances the race by one tick. Once the race has ended it does nothing.
func (s *Simulation) Step(dt time.Duration, in Input) Result {
	if s.ended {
		return Result{Ended: true}
	}
	s.events = nil
	st := s.state
	st.Ticks++
	st.Elapsed += dt

	speed := vehicle.SteerSpeed(in.Boost)
	if in.Boost && !st.Boosting {
		s.emit(Event{Type: EventBoostStarted})
	}
	st.Boosting = in.Boost

	layout := s.track.Layout(st.TrackDistance)
	if in.SteerLeft {
		st.PlayerX -= speed
	}
	if in.SteerRight {
		st.PlayerX += speed
	}
	st.PlayerX = clampPlayer(layout, st.PlayerX)

	st.Obstacles.Advance(st.ObstacleSpeed)
	if hit := CheckCollision(st.PlayerBox(), st.Obstacles.All()); hit != nil {
		s.crash(hit)
		return s.result()
	}
	for _, c := range st.Obstacles.RemovePassed() {
		s.pass(c)
	}

	st.RivalBoosting = s.pacer.boosting(st.Boosting)
	st.RivalProgress += rivalGain(s.cfg.RivalBase, st.RivalBoosting)

	if s.progress(dt) {
		return s.result()
	}

	if st.Praise.Remaining > 0 {
		st.Praise.Remaining = max(st.Praise.Remaining-dt, 0)
	}
	st.PlayerX = clampPlayer(s.track.Layout(st.TrackDistance), st.PlayerX)
	return s.result()
}

// Summary builds the end-of-race record. It is meaningful once Done is true.
func (s *Simulation) Summary() summary.Summary {
	st := s.state
	return summary.Summary{
		RaceID:         st.ID.String(),
		Level:          st.Level,
		Score:          st.Score,
		PlayerProgress: st.PlayerProgress,
		RivalProgress:  st.RivalProgress,
		Laps:           st.Laps,
		LapsTotal:      st.LapsTotal,
		Outcome:        s.outcome,
		Duration:       st.Elapsed,
	}
}

func (s *Simulation) pass(c *car.Car) {
	st := s.state
	points := s.cfg.ScoreBase
	distance := PassDistance
	if st.Boosting {
		points += s.cfg.ScoreBase / 2
		distance += BoostPassBonus
	}
	st.Score += points
	st.PlayerProgress++
	st.TrackDistance += distance
	s.emit(Event{Type: EventObstaclePassed, Points: points, ObstacleID: c.ID})

	text := data.Praise[s.rng.IntN(len(data.Praise))]
	st.Praise = models.Praise{Text: text, Remaining: PraiseLifetime}
	s.emit(Event{Type: EventPraised, Text: text})
}

func (s *Simulation) crash(hit *car.Car) {
	s.emit(Event{Type: EventCollision, ObstacleID: hit.ID})
	s.end(summary.OutcomeCrashed)
	s.logger.Info("race crashed",
		log.Uint64("obstacle", hit.ID),
		log.Int("score", s.state.Score),
		log.Int("laps", s.state.Laps),
	)
}

func (s *Simulation) end(outcome summary.Outcome) {
	s.ended = true
	s.outcome = outcome
}

func (s *Simulation) emit(e Event) {
	e.Tick = s.state.Ticks
	e.Score = s.state.Score
	if e.Lap == 0 {
		e.Lap = s.state.Laps
	}
	s.events = append(s.events, e)
}

func (s *Simulation) result() Result {
	return Result{Events: s.events, Ended: s.ended}
}

func clampPlayer(l road.Layout, x float64) float64 {
	minX, maxX := l.PlayerBounds()
	return lo.Clamp(x, minX, maxX)
}
