package domain

import "time"

// EventType represents the type of game event
type EventType string

const (
	EventClientJoined EventType = "CLIENT_JOINED"
	EventClientLeft   EventType = "CLIENT_LEFT"
	EventDiceRolling  EventType = "DICE_ROLLING"
	EventTurnResolved EventType = "TURN_RESOLVED"
	EventGameOver     EventType = "GAME_OVER"
	EventGameReset    EventType = "GAME_RESET"
)

// GameEvent represents an event that occurred on a board
type GameEvent struct {
	Type      EventType   `json:"type"`
	GameID    string      `json:"gameId"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewEvent creates a new game event
func NewEvent(eventType EventType, gameID string, payload interface{}) *GameEvent {
	return &GameEvent{
		Type:      eventType,
		GameID:    gameID,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

// Payload types for different events

// BoardStatePayload is the full rendering view of a game, sent on connect
// and after every state change
type BoardStatePayload struct {
	Players     []PlayerInfo `json:"players"`
	ActiveIndex int          `json:"activeIndex"`
	LastRoll    int          `json:"lastRoll"`
	Rolling     bool         `json:"rolling"`
	Phase       Phase        `json:"phase"`
	WinnerID    string       `json:"winnerId,omitempty"`
	Log         []LogEntry   `json:"log"`
}

// TransitionInfo describes one snake or ladder for rendering
type TransitionInfo struct {
	From int            `json:"from"`
	To   int            `json:"to"`
	Kind TransitionKind `json:"kind"`
}

// BoardLayout returns the static board geometry and transition tables,
// sent once to each client on connect
type BoardLayout struct {
	Size        int              `json:"size"`
	GridWidth   int              `json:"gridWidth"`
	Transitions []TransitionInfo `json:"transitions"`
}

// Layout builds the static layout payload from the board tables
func Layout() *BoardLayout {
	transitions := make([]TransitionInfo, 0, len(snakes)+len(ladders))
	for from, to := range snakes {
		transitions = append(transitions, TransitionInfo{From: from, To: to, Kind: TransitionSnake})
	}
	for from, to := range ladders {
		transitions = append(transitions, TransitionInfo{From: from, To: to, Kind: TransitionLadder})
	}

	return &BoardLayout{
		Size:        BoardSize,
		GridWidth:   GridWidth,
		Transitions: transitions,
	}
}

// DiceRollingPayload is sent when a roll starts, before the die settles
type DiceRollingPayload struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

// TurnResolvedPayload is sent when a roll resolves into a move
type TurnResolvedPayload struct {
	Move  *MoveResult        `json:"move"`
	State *BoardStatePayload `json:"state"`
}

// GameOverPayload is sent when a player reaches the final square
type GameOverPayload struct {
	WinnerID   string             `json:"winnerId"`
	WinnerName string             `json:"winnerName"`
	State      *BoardStatePayload `json:"state"`
}
