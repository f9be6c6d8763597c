package summary

import (
	"fmt"
	"time"

	"github.com/golangdaddy/nascar/pkg/road"
)

// Outcome is how a race ended.
type Outcome int

const (
	OutcomeCrashed Outcome = iota
	OutcomeLapsComplete
)

func (o Outcome) String() string {
	if o == OutcomeLapsComplete {
		return "finished"
	}
	return "crashed"
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(b []byte) error {
	switch string(b) {
	case "crashed":
		*o = OutcomeCrashed
	case "finished":
		*o = OutcomeLapsComplete
	default:
		return fmt.Errorf("unknown outcome %q", b)
	}
	return nil
}

// Summary is the end-of-race record shown on the summary screen.
type Summary struct {
	RaceID         string        `json:"race_id"`
	Level          road.Level    `json:"level"`
	Score          int           `json:"score"`
	PlayerProgress float64       `json:"player_progress"`
	RivalProgress  float64       `json:"rival_progress"`
	RivalName      string        `json:"rival_name"`
	Laps           int           `json:"laps"`
	LapsTotal      int           `json:"laps_total"`
	Outcome        Outcome       `json:"outcome"`
	Duration       time.Duration `json:"duration"`
}

// PlayerWon compares progress counters only. It is evaluated at race end
// regardless of which car finished its laps.
func (s Summary) PlayerWon() bool {
	return s.PlayerProgress > s.RivalProgress
}

// CompletedLaps reports whether the player took the checkered flag, either
// by wrapping the last lap or by crossing the finish gate on the final lap.
// Laps may still read LapsTotal-1 after a gate crossing.
func (s Summary) CompletedLaps() bool {
	return s.Outcome == OutcomeLapsComplete
}

// Verdict is the one-line result message.
func (s Summary) Verdict() string {
	if s.PlayerWon() {
		return "You won the race!"
	}
	return "You lost the race!"
}
