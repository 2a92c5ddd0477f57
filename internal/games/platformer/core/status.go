package core

// Status is the outcome of a level.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the level has been decided.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}
