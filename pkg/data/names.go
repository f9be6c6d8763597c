package data

// Praise holds the encouragement messages flashed after a dodge.
var Praise = []string{
	"Great!",
	"Excellent!",
	"A true expert!",
	"Incredible!",
	"Keep it up!",
}

// RivalNames are the drivers the rival car can be given for a race.
var RivalNames = []string{
	"Dale", "Rusty", "Bobby", "Jeff", "Kyle", "Darrell", "Richard", "Cale",
	"Tony", "Jimmie", "Denny", "Chase", "Ryan", "Kasey", "Terry", "Ricky",
}
