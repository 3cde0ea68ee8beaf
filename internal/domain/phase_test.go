package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseTransitions(t *testing.T) {
	tests := []struct {
		from    Phase
		to      Phase
		allowed bool
	}{
		{PhaseIdle, PhaseRolling, true},
		{PhaseIdle, PhaseIdle, true}, // reset while idle
		{PhaseRolling, PhaseIdle, true},
		{PhaseRolling, PhaseGameOver, true},
		{PhaseGameOver, PhaseIdle, true}, // reset
		{PhaseIdle, PhaseGameOver, false},
		{PhaseGameOver, PhaseRolling, false},
		{PhaseGameOver, PhaseGameOver, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "IDLE", PhaseIdle.String())
	assert.Equal(t, "ROLLING", PhaseRolling.String())
	assert.Equal(t, "GAME_OVER", PhaseGameOver.String())
}
