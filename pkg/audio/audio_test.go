package audio

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/nascar/pkg/race"
)

type recorder struct {
	played []Sound
}

func (r *recorder) Play(s Sound)  { r.played = append(r.played, s) }
func (r *recorder) Close() error { return nil }

func TestGenerate(t *testing.T) {
	for _, sound := range []Sound{SoundTurbo, SoundCheer, SoundPop, SoundCrash} {
		t.Run(sound.String(), func(t *testing.T) {
			buf := Generate(sound)
			require.NotEmpty(t, buf)
			require.Zero(t, len(buf)%8, "whole stereo float32 frames")

			for off := 0; off < len(buf); off += 4 {
				v := math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
				require.False(t, math.IsNaN(float64(v)))
				require.LessOrEqual(t, math.Abs(float64(v)), 1.0)
			}
		})
	}
	assert.Nil(t, Generate(Sound(42)))
}

func TestSoundFor(t *testing.T) {
	tests := []struct {
		event race.EventType
		want  Sound
		ok    bool
	}{
		{event: race.EventBoostStarted, want: SoundTurbo, ok: true},
		{event: race.EventRaceWon, want: SoundCheer, ok: true},
		{event: race.EventLapCompleted, want: SoundPop, ok: true},
		{event: race.EventCollision, want: SoundCrash, ok: true},
		{event: race.EventObstaclePassed},
		{event: race.EventRaceFinished},
	}
	for _, tt := range tests {
		t.Run(tt.event.String(), func(t *testing.T) {
			got, ok := SoundFor(tt.event)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestAttach(t *testing.T) {
	bus := race.NewEventBus()
	rec := &recorder{}
	Attach(bus, rec)

	bus.Dispatch([]race.Event{
		{Type: race.EventBoostStarted},
		{Type: race.EventObstaclePassed},
		{Type: race.EventLapCompleted},
		{Type: race.EventRaceFinished},
	})
	bus.Emit(race.Event{Type: race.EventRaceWon})

	assert.Equal(t, []Sound{SoundTurbo, SoundPop, SoundCheer}, rec.played)
}

func TestSilent(t *testing.T) {
	var p Player = Silent{}
	p.Play(SoundCrash)
	assert.NoError(t, p.Close())
}

func TestSoundReader(t *testing.T) {
	r := &soundReader{data: []byte{1, 2, 3, 4, 5}}
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, got)
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-1))
	assert.Equal(t, 0.5, clamp01(0.5))
	assert.Equal(t, 1.0, clamp01(3))
}
