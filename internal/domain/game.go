package domain

import (
	"fmt"
	"time"
)

// seat describes one of the fixed hotseat players
type seat struct {
	Name  string
	Color string
}

// defaultSeats are the two hotseat players every board starts with
var defaultSeats = []seat{
	{Name: "Player 1", Color: "#e63946"},
	{Name: "Player 2", Color: "#457b9d"},
}

// Game represents one board and its full turn state
type Game struct {
	ID          string    `json:"id"`
	Players     []*Player `json:"players"`
	ActiveIndex int       `json:"activeIndex"`
	LastRoll    int       `json:"lastRoll"` // 0 until the first roll resolves
	Rolling     bool      `json:"rolling"`
	Winner      *Player   `json:"winner,omitempty"`
	Log         *GameLog  `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewGame creates a game with both players on the start square
func NewGame(id string) *Game {
	g := &Game{
		ID:        id,
		Players:   make([]*Player, 0, len(defaultSeats)),
		Log:       NewGameLog(),
		CreatedAt: time.Now(),
	}

	for _, s := range defaultSeats {
		g.Players = append(g.Players, NewPlayer(s.Name, s.Color))
	}

	g.Log.Append(EntryInfo, fmt.Sprintf("New game started. %s goes first.", g.Players[0].Name))

	return g
}

// ActivePlayer returns the player whose turn it is
func (g *Game) ActivePlayer() *Player {
	return g.Players[g.ActiveIndex]
}

// Phase derives the current phase from the turn state
func (g *Game) Phase() Phase {
	switch {
	case g.Winner != nil:
		return PhaseGameOver
	case g.Rolling:
		return PhaseRolling
	default:
		return PhaseIdle
	}
}

// BeginRoll marks a roll as in progress. Rolling again before resolution and
// rolling after the game has ended are rejected; callers drop these errors,
// the actions are no-ops rather than failures.
func (g *Game) BeginRoll() error {
	if g.Winner != nil {
		return ErrGameOver
	}
	if g.Rolling {
		return ErrRollInProgress
	}

	g.Rolling = true
	return nil
}

// MoveResult describes the outcome of one resolved roll
type MoveResult struct {
	PlayerID   string         `json:"playerId"`
	PlayerName string         `json:"playerName"`
	Roll       int            `json:"roll"`
	From       int            `json:"from"`
	Tentative  int            `json:"tentative"`
	To         int            `json:"to"`
	Transition TransitionKind `json:"transition,omitempty"`
	Overshoot  bool           `json:"overshoot"`
	Won        bool           `json:"won"`
	NextIndex  int            `json:"nextIndex"`
}

// Resolve applies a die value to the active player: clamp the overshoot,
// follow any snake or ladder, detect the win, and advance the turn. Every
// resolution appends one move entry and at most one extra entry to the log.
func (g *Game) Resolve(roll int) (*MoveResult, error) {
	if g.Winner != nil {
		return nil, ErrGameOver
	}
	if !g.Rolling {
		return nil, ErrRollNotStarted
	}
	if roll < 1 || roll > 6 {
		return nil, ErrInvalidRoll
	}

	g.Rolling = false
	g.LastRoll = roll

	player := g.ActivePlayer()
	from := player.Position
	tentative := from + roll

	result := &MoveResult{
		PlayerID:   player.ID,
		PlayerName: player.Name,
		Roll:       roll,
		From:       from,
		Tentative:  tentative,
		To:         from,
	}

	g.Log.Append(EntryMove, fmt.Sprintf("%s rolls a %d.", player.Name, roll))

	if tentative > FinalSquare {
		// Overshoot forfeits the movement but still consumes the turn.
		result.Overshoot = true
		g.Log.Append(EntryInfo, fmt.Sprintf("%s needs an exact roll and stays on square %d.", player.Name, from))
		g.advanceTurn(result)
		return result, nil
	}

	final := tentative
	if dest, kind, ok := Transition(tentative); ok {
		final = dest
		result.Transition = kind
		switch kind {
		case TransitionSnake:
			g.Log.Append(EntrySnake, fmt.Sprintf("%s lands on a snake at %d and slides down to %d.", player.Name, tentative, dest))
		case TransitionLadder:
			g.Log.Append(EntryLadder, fmt.Sprintf("%s lands on a ladder at %d and climbs up to %d.", player.Name, tentative, dest))
		}
	}

	player.Position = final
	result.To = final

	if final == FinalSquare {
		g.Winner = player
		result.Won = true
		result.NextIndex = g.ActiveIndex
		g.Log.Append(EntryWin, fmt.Sprintf("%s reaches square %d and wins the game!", player.Name, FinalSquare))
		return result, nil
	}

	g.advanceTurn(result)
	return result, nil
}

// advanceTurn passes play to the next player in order
func (g *Game) advanceTurn(result *MoveResult) {
	g.ActiveIndex = (g.ActiveIndex + 1) % len(g.Players)
	result.NextIndex = g.ActiveIndex
}

// Reset reinitializes the board in place. It is legal in any state,
// including mid-roll and after a win.
func (g *Game) Reset() {
	for _, player := range g.Players {
		player.ResetPosition()
	}
	g.ActiveIndex = 0
	g.LastRoll = 0
	g.Rolling = false
	g.Winner = nil
	g.Log.Clear()
	g.Log.Append(EntryInfo, fmt.Sprintf("New game started. %s goes first.", g.Players[0].Name))
}

// Snapshot returns the rendering view of the current state
func (g *Game) Snapshot() *BoardStatePayload {
	players := make([]PlayerInfo, 0, len(g.Players))
	for _, p := range g.Players {
		players = append(players, p.ToInfo())
	}

	winnerID := ""
	if g.Winner != nil {
		winnerID = g.Winner.ID
	}

	return &BoardStatePayload{
		Players:     players,
		ActiveIndex: g.ActiveIndex,
		LastRoll:    g.LastRoll,
		Rolling:     g.Rolling,
		Phase:       g.Phase(),
		WinnerID:    winnerID,
		Log:         g.Log.Entries(),
	}
}
