package game

// State is a screen of the game. Only StatePlaying runs the simulation.
type State int

const (
	StateTitle State = iota
	StateLevelSelect
	StatePlaying
	StatePaused
	StateLevelComplete
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StateLevelSelect:
		return "level_select"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateLevelComplete:
		return "level_complete"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
