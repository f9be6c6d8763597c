package race

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Pacing selects how the rival decides to boost.
type Pacing int

const (
	// PacingSurge gives the rival its own random boost surges.
	PacingSurge Pacing = iota
	// PacingMirror boosts the rival whenever the player boosts.
	PacingMirror
)

func (p Pacing) String() string {
	if p == PacingMirror {
		return "mirror"
	}
	return "surge"
}

// ParsePacing converts a flag value into a Pacing.
func ParsePacing(s string) (Pacing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "surge":
		return PacingSurge, nil
	case "mirror":
		return PacingMirror, nil
	}
	return PacingSurge, fmt.Errorf("unknown rival pacing %q", s)
}

const (
	rivalRateScale  = 0.1
	rivalBoostScale = 1.2

	surgeChance   = 0.01
	surgeMinTicks = 60
	surgeMaxTicks = 180
)

type pacer interface {
	boosting(playerBoosting bool) bool
}

func newPacer(p Pacing, rng *rand.Rand, multiplier float64) pacer {
	if p == PacingMirror {
		return mirrorPacer{}
	}
	return &surgePacer{
		rng:    rng,
		chance: surgeChance * multiplier,
	}
}

type mirrorPacer struct{}

func (mirrorPacer) boosting(playerBoosting bool) bool {
	return playerBoosting
}

type surgePacer struct {
	rng       *rand.Rand
	chance    float64
	remaining int
}

func (p *surgePacer) boosting(bool) bool {
	if p.remaining == 0 && p.rng.Float64() < p.chance {
		p.remaining = surgeMinTicks + p.rng.IntN(surgeMaxTicks-surgeMinTicks+1)
	}
	if p.remaining > 0 {
		p.remaining--
		return true
	}
	return false
}

// rivalGain is how far the rival advances in one tick.
func rivalGain(base float64, boosting bool) float64 {
	gain := base * rivalRateScale
	if boosting {
		gain *= rivalBoostScale
	}
	return gain
}
