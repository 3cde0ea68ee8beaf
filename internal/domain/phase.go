package domain

// Phase represents the current phase of a game
type Phase string

const (
	PhaseIdle     Phase = "IDLE"      // Waiting for the active player to roll
	PhaseRolling  Phase = "ROLLING"   // A roll has started, resolution pending
	PhaseGameOver Phase = "GAME_OVER" // A player reached the final square
)

// String returns the string representation of the phase
func (p Phase) String() string {
	return string(p)
}

// CanTransitionTo checks if a transition from current phase to target phase is valid
func (p Phase) CanTransitionTo(target Phase) bool {
	validTransitions := map[Phase][]Phase{
		PhaseIdle:     {PhaseRolling, PhaseIdle},
		PhaseRolling:  {PhaseIdle, PhaseGameOver},
		PhaseGameOver: {PhaseIdle}, // Only reset leaves a finished game
	}

	allowed, ok := validTransitions[p]
	if !ok {
		return false
	}

	for _, phase := range allowed {
		if phase == target {
			return true
		}
	}
	return false
}
