package model

// Player is a roster member penalties are charged against.
// Players are shared, long-lived reference data.
type Player struct {
	ID   int64
	Name string
}
