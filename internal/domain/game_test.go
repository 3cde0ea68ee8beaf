package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return NewGame("TEST01")
}

func beginAndResolve(t *testing.T, g *Game, roll int) *MoveResult {
	t.Helper()
	require.NoError(t, g.BeginRoll())
	result, err := g.Resolve(roll)
	require.NoError(t, err)
	return result
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t)

	require.Len(t, g.Players, 2)
	for _, p := range g.Players {
		assert.Equal(t, StartSquare, p.Position)
		assert.NotEmpty(t, p.ID)
	}
	assert.Equal(t, 0, g.ActiveIndex)
	assert.Equal(t, 0, g.LastRoll)
	assert.Nil(t, g.Winner)
	assert.Equal(t, PhaseIdle, g.Phase())

	// The log is seeded with a single info entry
	entries := g.Log.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, EntryInfo, entries[0].Kind)
}

func TestResolvePlainMove(t *testing.T) {
	g := newTestGame(t)

	result := beginAndResolve(t, g, 2)

	assert.Equal(t, 1, result.From)
	assert.Equal(t, 3, result.To)
	assert.Empty(t, result.Transition)
	assert.False(t, result.Overshoot)
	assert.False(t, result.Won)
	assert.Equal(t, 3, g.Players[0].Position)
	assert.Equal(t, 1, g.ActiveIndex, "turn passes to the other player")
	assert.Equal(t, 2, g.LastRoll)
	assert.Equal(t, PhaseIdle, g.Phase())

	// Exactly one move entry was appended
	entries := g.Log.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, EntryMove, entries[0].Kind)
}

func TestResolveLadder(t *testing.T) {
	// Two players start at 1. Player 1 rolls 6, lands on the ladder foot at
	// 7 and climbs to 14.
	g := newTestGame(t)

	result := beginAndResolve(t, g, 6)

	assert.Equal(t, 7, result.Tentative)
	assert.Equal(t, 14, result.To)
	assert.Equal(t, TransitionLadder, result.Transition)
	assert.Equal(t, 14, g.Players[0].Position)
	assert.Equal(t, 1, g.ActiveIndex)

	entries := g.Log.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, EntryLadder, entries[0].Kind)
	assert.Equal(t, EntryMove, entries[1].Kind)
}

func TestResolveSnake(t *testing.T) {
	g := newTestGame(t)
	g.Players[0].Position = 24

	result := beginAndResolve(t, g, 3) // lands on the snake head at 27

	assert.Equal(t, 27, result.Tentative)
	assert.Equal(t, TransitionSnake, result.Transition)
	assert.Equal(t, 5, result.To)
	assert.Less(t, result.To, result.Tentative)
	assert.Equal(t, 5, g.Players[0].Position)

	entries := g.Log.Entries()
	assert.Equal(t, EntrySnake, entries[0].Kind)
}

func TestResolveOvershoot(t *testing.T) {
	// A player at 98 rolling 5 would pass 100: the move is forfeited but the
	// turn still advances.
	g := newTestGame(t)
	g.Players[0].Position = 98

	result := beginAndResolve(t, g, 5)

	assert.True(t, result.Overshoot)
	assert.Equal(t, 98, result.From)
	assert.Equal(t, 98, result.To)
	assert.Equal(t, 98, g.Players[0].Position)
	assert.Nil(t, g.Winner)
	assert.Equal(t, 1, g.ActiveIndex, "overshoot still consumes the turn")

	entries := g.Log.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, EntryInfo, entries[0].Kind)
	assert.Equal(t, EntryMove, entries[1].Kind)
}

func TestResolveWin(t *testing.T) {
	// A player at 95 rolling 5 lands exactly on 100 and wins.
	g := newTestGame(t)
	g.Players[0].Position = 95

	result := beginAndResolve(t, g, 5)

	assert.True(t, result.Won)
	assert.Equal(t, 100, result.To)
	require.NotNil(t, g.Winner)
	assert.Equal(t, g.Players[0].ID, g.Winner.ID)
	assert.Equal(t, PhaseGameOver, g.Phase())
	assert.Equal(t, 0, g.ActiveIndex, "turn does not advance past a win")

	entries := g.Log.Entries()
	assert.Equal(t, EntryWin, entries[0].Kind)

	// Further rolls are rejected until reset
	assert.ErrorIs(t, g.BeginRoll(), ErrGameOver)
}

func TestBeginRollGuards(t *testing.T) {
	g := newTestGame(t)

	require.NoError(t, g.BeginRoll())
	assert.ErrorIs(t, g.BeginRoll(), ErrRollInProgress)
	assert.Equal(t, PhaseRolling, g.Phase())
}

func TestResolveGuards(t *testing.T) {
	g := newTestGame(t)

	_, err := g.Resolve(4)
	assert.ErrorIs(t, err, ErrRollNotStarted)

	require.NoError(t, g.BeginRoll())
	_, err = g.Resolve(0)
	assert.ErrorIs(t, err, ErrInvalidRoll)
	_, err = g.Resolve(7)
	assert.ErrorIs(t, err, ErrInvalidRoll)
}

func TestTurnAlternates(t *testing.T) {
	g := newTestGame(t)

	beginAndResolve(t, g, 1)
	assert.Equal(t, 1, g.ActiveIndex)
	beginAndResolve(t, g, 1)
	assert.Equal(t, 0, g.ActiveIndex)
	beginAndResolve(t, g, 1)
	assert.Equal(t, 1, g.ActiveIndex)
}

func TestReset(t *testing.T) {
	g := newTestGame(t)
	g.Players[0].Position = 95
	beginAndResolve(t, g, 5) // player 1 wins
	require.NotNil(t, g.Winner)

	g.Reset()

	for _, p := range g.Players {
		assert.Equal(t, StartSquare, p.Position)
	}
	assert.Nil(t, g.Winner)
	assert.Equal(t, 0, g.ActiveIndex)
	assert.Equal(t, 0, g.LastRoll)
	assert.False(t, g.Rolling)
	assert.Equal(t, PhaseIdle, g.Phase())

	entries := g.Log.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, EntryInfo, entries[0].Kind)

	// The game accepts rolls again
	assert.NoError(t, g.BeginRoll())
}

func TestResetMidRoll(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.BeginRoll())

	g.Reset()

	assert.False(t, g.Rolling)
	assert.Equal(t, PhaseIdle, g.Phase())
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t)
	beginAndResolve(t, g, 6)

	snapshot := g.Snapshot()

	require.Len(t, snapshot.Players, 2)
	assert.Equal(t, 14, snapshot.Players[0].Position)
	assert.Equal(t, 1, snapshot.ActiveIndex)
	assert.Equal(t, 6, snapshot.LastRoll)
	assert.False(t, snapshot.Rolling)
	assert.Empty(t, snapshot.WinnerID)
	assert.Equal(t, PhaseIdle, snapshot.Phase)
	assert.NotEmpty(t, snapshot.Log)
}

func TestLayout(t *testing.T) {
	layout := Layout()

	assert.Equal(t, BoardSize, layout.Size)
	assert.Equal(t, GridWidth, layout.GridWidth)
	assert.Len(t, layout.Transitions, len(Snakes())+len(Ladders()))
}
