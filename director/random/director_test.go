package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/sweepcore/game"
)

func TestRevealsEveryClosedCellOnce(t *testing.T) {
	director := &Director{}

	config := game.NewGameConfig()
	config.Seed = 5
	config.Snapshot = &game.BoardSnapshot{SerializedBoard: "" +
		"##########\n" +
		"##########\n" +
		"##f#######\n" +
		"##########\n" +
		"##########\n" +
		"##########\n" +
		"##########\n" +
		"##########\n" +
		"##########\n" +
		"##########"}
	config.LoadSnapshotFresh = false
	config.Director = director

	g, err := game.NewGame(config)
	require.NoError(t, err)

	seen := make(map[game.Pos]bool)
	for {
		snapshot := g.Snapshot()
		events := director.Act(&snapshot)
		if len(events) == 0 {
			break
		}
		require.Len(t, events, 1)
		event := events[0]
		assert.Equal(t, game.Reveal, event.Action)

		pos := game.Pos{X: event.X, Y: event.Y}
		assert.False(t, seen[pos], "%v revealed twice", pos)
		seen[pos] = true

		g.Push(event)
		g.Frame()
	}

	// Everything but the flagged cell, and the board has no mines to lose on
	assert.Len(t, seen, game.BoardSize*game.BoardSize-1)
	assert.False(t, seen[game.Pos{X: 2, Y: 2}])
}

func TestShuffleDependsOnSeed(t *testing.T) {
	order := func(seed int64) []game.Pos {
		director := &Director{}
		config := game.NewGameConfig()
		config.Seed = seed
		g, err := game.NewGame(config)
		require.NoError(t, err)
		director.Init(g)
		return director.order
	}

	assert.Equal(t, order(1), order(1))
	assert.NotEqual(t, order(1), order(2))
	assert.Len(t, order(1), game.BoardSize*game.BoardSize)
}
