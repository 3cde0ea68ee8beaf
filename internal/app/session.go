package app

import (
	"log/slog"
	"sync"
	"time"

	"snakeladder/internal/domain"
)

// DiceRoller draws die values for a session
type DiceRoller interface {
	Roll(sides int) int
}

// ClientConnection represents a connected client
type ClientConnection interface {
	Send(message interface{}) error
	GetClientID() string
	Close() error
}

// GameSession wraps a game with concurrency control and client management
type GameSession struct {
	game      *domain.Game
	mu        sync.Mutex
	clients   map[string]ClientConnection // clientID -> client
	clientsMu sync.RWMutex
	logger    *slog.Logger

	roller    DiceRoller
	rollDelay time.Duration

	// generation is bumped on reset so a pending roll timer started against
	// the old game cannot resolve against the fresh one
	generation int

	// Event channel for broadcasting
	events chan *domain.GameEvent
	done   chan struct{}
}

// NewGameSession creates a new game session
func NewGameSession(game *domain.Game, roller DiceRoller, rollDelay time.Duration, logger *slog.Logger) *GameSession {
	session := &GameSession{
		game:      game,
		clients:   make(map[string]ClientConnection),
		logger:    logger,
		roller:    roller,
		rollDelay: rollDelay,
		events:    make(chan *domain.GameEvent, 100),
		done:      make(chan struct{}),
	}

	// Start event broadcaster
	go session.eventLoop()

	return session
}

// GetRoomCode returns the room code
func (s *GameSession) GetRoomCode() string {
	return s.game.ID
}

// GetCreatedAt returns when the game was created
func (s *GameSession) GetCreatedAt() time.Time {
	return s.game.CreatedAt
}

// GetPhase returns the current game phase
func (s *GameSession) GetPhase() domain.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Phase()
}

// Snapshot returns the rendering view of the game state
func (s *GameSession) Snapshot() *domain.BoardStatePayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// GetClientCount returns the number of connected clients
func (s *GameSession) GetClientCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// RegisterClient registers a client connection
func (s *GameSession) RegisterClient(clientID string, client ClientConnection) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	s.clients[clientID] = client
}

// UnregisterClient removes a client connection
func (s *GameSession) UnregisterClient(clientID string) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	delete(s.clients, clientID)
}

// Roll starts a roll for the active player. The die settles after the
// configured delay; until then further rolls are rejected by the guard.
func (s *GameSession) Roll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.game.BeginRoll(); err != nil {
		return err
	}

	player := s.game.ActivePlayer()
	s.queueEvent(domain.NewEvent(domain.EventDiceRolling, s.game.ID, &domain.DiceRollingPayload{
		PlayerID:   player.ID,
		PlayerName: player.Name,
	}))

	gen := s.generation
	time.AfterFunc(s.rollDelay, func() {
		s.resolveRoll(gen)
	})

	return nil
}

// resolveRoll draws the die and applies the move once the delay has elapsed
func (s *GameSession) resolveRoll(gen int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case <-s.done:
		return
	default:
	}

	if gen != s.generation {
		// The board was reset while the die was in the air
		return
	}

	roll := s.roller.Roll(6)
	result, err := s.game.Resolve(roll)
	if err != nil {
		s.logger.Debug("roll resolution dropped", "roomCode", s.game.ID, "error", err)
		return
	}

	s.queueEvent(domain.NewEvent(domain.EventTurnResolved, s.game.ID, &domain.TurnResolvedPayload{
		Move:  result,
		State: s.game.Snapshot(),
	}))

	if result.Won {
		s.queueEvent(domain.NewEvent(domain.EventGameOver, s.game.ID, &domain.GameOverPayload{
			WinnerID:   result.PlayerID,
			WinnerName: result.PlayerName,
			State:      s.game.Snapshot(),
		}))
	}
}

// Reset reinitializes the board. Legal at any time, including mid-roll.
func (s *GameSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.game.Reset()

	s.queueEvent(domain.NewEvent(domain.EventGameReset, s.game.ID, s.game.Snapshot()))
}

// queueEvent adds an event to the broadcast queue
func (s *GameSession) queueEvent(event *domain.GameEvent) {
	select {
	case s.events <- event:
	default:
		s.logger.Warn("event queue full, dropping event", "type", event.Type)
	}
}

// eventLoop processes events and broadcasts to clients
func (s *GameSession) eventLoop() {
	for {
		select {
		case <-s.done:
			return
		case event := <-s.events:
			s.broadcastEvent(event)
		}
	}
}

// broadcastEvent sends an event to all connected clients
func (s *GameSession) broadcastEvent(event *domain.GameEvent) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	for clientID, client := range s.clients {
		if err := client.Send(event); err != nil {
			s.logger.Debug("failed to send to client", "clientID", clientID, "error", err)
		}
	}
}

// Close shuts down the session
func (s *GameSession) Close() {
	select {
	case <-s.done:
		return // Already closed
	default:
		close(s.done)
	}

	// Close all client connections
	s.clientsMu.Lock()
	for _, client := range s.clients {
		client.Close()
	}
	s.clients = make(map[string]ClientConnection)
	s.clientsMu.Unlock()
}
