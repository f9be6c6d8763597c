package vehicle

// Every car on the track, player, rival or obstacle, shares one footprint.
const (
	CarWidth  = 60.0
	CarHeight = 100.0
)

// Player handling in pixels per tick.
const (
	PlayerSpeed = 7.0
	BoostSpeed  = 13.0
)

// The player's car sits 20px above the bottom of the 600px play area.
const (
	PlayerY      = 600 - CarHeight - 20
	PlayerStartX = 900/2 - CarWidth/2
)

// PlayerBox returns the player's bounding box for a horizontal position.
func PlayerBox(x float64) Box {
	return NewBox(x, PlayerY, CarWidth, CarHeight)
}

// SteerSpeed returns how far the player moves sideways in one tick.
func SteerSpeed(boosting bool) float64 {
	if boosting {
		return BoostSpeed
	}
	return PlayerSpeed
}
