package race

// Input is the player's intent for one tick.
type Input struct {
	SteerLeft  bool
	SteerRight bool
	Boost      bool
}
