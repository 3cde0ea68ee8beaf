package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameLogAppend(t *testing.T) {
	log := NewGameLog()

	first := log.Append(EntryMove, "first")
	second := log.Append(EntrySnake, "second")

	entries := log.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID, "newest entry comes first")
	assert.Equal(t, first.ID, entries[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestGameLogCapacity(t *testing.T) {
	log := NewGameLog()

	for i := 0; i < LogCapacity+10; i++ {
		log.Append(EntryMove, fmt.Sprintf("entry %d", i))
	}

	require.Equal(t, LogCapacity, log.Len())

	entries := log.Entries()
	assert.Equal(t, fmt.Sprintf("entry %d", LogCapacity+9), entries[0].Message, "newest survives")
	assert.Equal(t, "entry 10", entries[LogCapacity-1].Message, "oldest ten were evicted")
}

func TestGameLogClear(t *testing.T) {
	log := NewGameLog()
	log.Append(EntryInfo, "one")
	log.Append(EntryInfo, "two")

	log.Clear()

	assert.Equal(t, 0, log.Len())
	assert.Empty(t, log.Entries())
}

func TestGameLogEntriesIsACopy(t *testing.T) {
	log := NewGameLog()
	log.Append(EntryInfo, "original")

	entries := log.Entries()
	entries[0].Message = "mutated"

	assert.Equal(t, "original", log.Entries()[0].Message)
}
