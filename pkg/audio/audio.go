// Package audio plays the procedural sound effects of a race over oto.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/golangdaddy/nascar/pkg/log"
	"github.com/golangdaddy/nascar/pkg/race"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
)

// Sound identifies a sound effect.
type Sound int

const (
	SoundTurbo Sound = iota
	SoundCheer
	SoundPop
	SoundCrash
)

func (s Sound) String() string {
	switch s {
	case SoundTurbo:
		return "turbo"
	case SoundCheer:
		return "cheer"
	case SoundPop:
		return "pop"
	case SoundCrash:
		return "crash"
	}
	return "unknown"
}

// Player plays sound effects without blocking the frame loop.
type Player interface {
	Play(Sound)
	Close() error
}

// Silent is a Player that discards every sound.
type Silent struct{}

func (Silent) Play(Sound)   {}
func (Silent) Close() error { return nil }

// System plays sounds on the default output device.
type System struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	logger *log.Logger

	mu      sync.Mutex
	samples map[Sound][]byte
	closed  bool
}

// New opens the audio device. When no device is available it logs a warning
// and returns a Silent player.
func New(logger *log.Logger, volume float64) Player {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		logger.Warn("audio unavailable, continuing without sound", log.ErrorField(err))
		return Silent{}
	}
	return &System{
		ctx:     ctx,
		ready:   ready,
		volume:  clamp01(volume),
		logger:  logger,
		samples: make(map[Sound][]byte),
	}
}

// Play starts a sound in its own goroutine. Sounds requested before the
// device is ready are dropped.
func (s *System) Play(sound Sound) {
	select {
	case <-s.ready:
	default:
		return
	}
	data := s.buffer(sound)
	if data == nil {
		return
	}
	go func() {
		player := s.ctx.NewPlayer(&soundReader{data: data})
		player.SetVolume(s.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			s.logger.Debug("closing player", log.Stringer("sound", sound), log.ErrorField(err))
		}
	}()
}

// Close stops accepting new sounds.
func (s *System) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *System) buffer(sound Sound) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	if data, ok := s.samples[sound]; ok {
		return data
	}
	data := Generate(sound)
	s.samples[sound] = data
	return data
}

// SoundFor maps race events to their sound effect.
func SoundFor(t race.EventType) (Sound, bool) {
	switch t {
	case race.EventBoostStarted:
		return SoundTurbo, true
	case race.EventRaceWon:
		return SoundCheer, true
	case race.EventLapCompleted:
		return SoundPop, true
	case race.EventCollision:
		return SoundCrash, true
	}
	return 0, false
}

// Attach plays the matching sound for every event on the bus.
func Attach(bus *race.EventBus, p Player) {
	bus.SubscribeAll(func(e race.Event) {
		if sound, ok := SoundFor(e.Type); ok {
			p.Play(sound)
		}
	})
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
