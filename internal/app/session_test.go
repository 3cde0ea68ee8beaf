package app

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snakeladder/internal/domain"
)

// scriptedDie returns a fixed sequence of rolls
type scriptedDie struct {
	mu    sync.Mutex
	rolls []int
	next  int
}

func (d *scriptedDie) Roll(sides int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	roll := d.rolls[d.next%len(d.rolls)]
	d.next++
	return roll
}

// recordingClient captures broadcast events
type recordingClient struct {
	id     string
	mu     sync.Mutex
	events []*domain.GameEvent
}

func (c *recordingClient) Send(message interface{}) error {
	event, ok := message.(*domain.GameEvent)
	if !ok {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
	return nil
}

func (c *recordingClient) GetClientID() string { return c.id }
func (c *recordingClient) Close() error        { return nil }

func (c *recordingClient) eventTypes() []domain.EventType {
	c.mu.Lock()
	defer c.mu.Unlock()
	types := make([]domain.EventType, 0, len(c.events))
	for _, event := range c.events {
		types = append(types, event.Type)
	}
	return types
}

func (c *recordingClient) hasEvent(eventType domain.EventType) bool {
	for _, t := range c.eventTypes() {
		if t == eventType {
			return true
		}
	}
	return false
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSession(t *testing.T, rolls []int, rollDelay time.Duration) (*GameSession, *recordingClient) {
	t.Helper()

	game := domain.NewGame("TEST01")
	session := NewGameSession(game, &scriptedDie{rolls: rolls}, rollDelay, testLogger())
	t.Cleanup(session.Close)

	client := &recordingClient{id: "client-1"}
	session.RegisterClient(client.id, client)

	return session, client
}

func TestSessionRollResolvesAfterDelay(t *testing.T) {
	session, client := newTestSession(t, []int{6}, 5*time.Millisecond)

	require.NoError(t, session.Roll())

	require.Eventually(t, func() bool {
		return client.hasEvent(domain.EventTurnResolved)
	}, time.Second, 5*time.Millisecond)

	assert.True(t, client.hasEvent(domain.EventDiceRolling))

	// Rolling a 6 from square 1 lands on the ladder at 7 and climbs to 14
	snapshot := session.Snapshot()
	assert.Equal(t, 14, snapshot.Players[0].Position)
	assert.Equal(t, 1, snapshot.ActiveIndex)
	assert.Equal(t, 6, snapshot.LastRoll)
	assert.Equal(t, domain.PhaseIdle, snapshot.Phase)
}

func TestSessionRollGuardWhileRolling(t *testing.T) {
	session, _ := newTestSession(t, []int{3}, 200*time.Millisecond)

	require.NoError(t, session.Roll())
	assert.ErrorIs(t, session.Roll(), domain.ErrRollInProgress)
}

func TestSessionResetCancelsPendingRoll(t *testing.T) {
	session, client := newTestSession(t, []int{6}, 50*time.Millisecond)

	require.NoError(t, session.Roll())
	session.Reset()

	// Give the stale timer time to fire; the generation guard must drop it
	time.Sleep(150 * time.Millisecond)

	snapshot := session.Snapshot()
	assert.Equal(t, 1, snapshot.Players[0].Position)
	assert.Equal(t, 0, snapshot.LastRoll)
	assert.Equal(t, domain.PhaseIdle, snapshot.Phase)

	assert.True(t, client.hasEvent(domain.EventGameReset))
	assert.False(t, client.hasEvent(domain.EventTurnResolved))
}

func TestSessionGameOver(t *testing.T) {
	game := domain.NewGame("TEST01")
	game.Players[0].Position = 95

	session := NewGameSession(game, &scriptedDie{rolls: []int{5}}, time.Millisecond, testLogger())
	t.Cleanup(session.Close)

	client := &recordingClient{id: "client-1"}
	session.RegisterClient(client.id, client)

	require.NoError(t, session.Roll())

	require.Eventually(t, func() bool {
		return client.hasEvent(domain.EventGameOver)
	}, time.Second, 5*time.Millisecond)

	assert.True(t, client.hasEvent(domain.EventTurnResolved))
	assert.Equal(t, domain.PhaseGameOver, session.GetPhase())

	// Further rolls are no-ops until reset
	assert.ErrorIs(t, session.Roll(), domain.ErrGameOver)

	session.Reset()
	assert.NoError(t, session.Roll())
}

func TestSessionAlternatesTurns(t *testing.T) {
	session, client := newTestSession(t, []int{1, 2}, time.Millisecond)

	require.NoError(t, session.Roll())
	require.Eventually(t, func() bool {
		return client.hasEvent(domain.EventTurnResolved)
	}, time.Second, 5*time.Millisecond)

	snapshot := session.Snapshot()
	require.Equal(t, 1, snapshot.ActiveIndex)

	require.NoError(t, session.Roll())
	require.Eventually(t, func() bool {
		return session.Snapshot().ActiveIndex == 0
	}, time.Second, 5*time.Millisecond)

	snapshot = session.Snapshot()
	assert.Equal(t, 2, snapshot.Players[0].Position)
	assert.Equal(t, 3, snapshot.Players[1].Position)
}

func TestSessionUnregisterClient(t *testing.T) {
	session, client := newTestSession(t, []int{1}, time.Millisecond)

	assert.Equal(t, 1, session.GetClientCount())
	session.UnregisterClient(client.id)
	assert.Equal(t, 0, session.GetClientCount())
}
