package domain

import (
	"time"

	"github.com/google/uuid"
)

// LogCapacity is the maximum number of entries the game log retains
const LogCapacity = 50

// EntryKind categorizes a log entry
type EntryKind string

const (
	EntryMove   EntryKind = "MOVE"
	EntrySnake  EntryKind = "SNAKE"
	EntryLadder EntryKind = "LADDER"
	EntryWin    EntryKind = "WIN"
	EntryInfo   EntryKind = "INFO"
)

// LogEntry is a single line in the scrolling game log
type LogEntry struct {
	ID        string    `json:"id"`
	Kind      EntryKind `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// GameLog is a newest-first bounded record of game events. It is purely
// observational: the turn engine appends to it and never reads it back.
type GameLog struct {
	entries []LogEntry
}

// NewGameLog creates an empty log
func NewGameLog() *GameLog {
	return &GameLog{
		entries: make([]LogEntry, 0, LogCapacity),
	}
}

// Append adds an entry at the front, evicting the oldest beyond capacity
func (l *GameLog) Append(kind EntryKind, message string) LogEntry {
	entry := LogEntry{
		ID:        uuid.New().String(),
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now(),
	}

	l.entries = append([]LogEntry{entry}, l.entries...)
	if len(l.entries) > LogCapacity {
		l.entries = l.entries[:LogCapacity]
	}

	return entry
}

// Entries returns the log newest-first for rendering
func (l *GameLog) Entries() []LogEntry {
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of retained entries
func (l *GameLog) Len() int {
	return len(l.entries)
}

// Clear discards all entries
func (l *GameLog) Clear() {
	l.entries = l.entries[:0]
}
