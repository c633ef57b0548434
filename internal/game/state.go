// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default mode: the player walks the floor and only
	// sees what is in line of sight.
	StateExplore State = iota
	// StateOverview draws the whole floor, seen or not, for inspecting a
	// generated layout.
	StateOverview
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateOverview:
		return "overview"
	default:
		return "unknown"
	}
}
