package constraint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/sweepcore/game"
	"github.com/they4kman/sweepcore/util/collections"
)

func setOf(positions ...game.Pos) collections.Set[game.Pos] {
	return collections.NewSet(positions...)
}

func newGame(t *testing.T, rows ...string) (*game.Game, *Director) {
	director := &Director{}

	config := game.NewGameConfig()
	config.Seed = 3
	config.Snapshot = &game.BoardSnapshot{SerializedBoard: strings.Join(rows, "\n")}
	config.LoadSnapshotFresh = false
	config.Director = director

	g, err := game.NewGame(config)
	require.NoError(t, err)
	return g, director
}

func TestFlagsWhenCountMatchesClosedCells(t *testing.T) {
	g, director := newGame(t,
		"O.........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
	)

	snapshot := g.Snapshot()
	assert.Equal(t, []game.Event{game.FlagAt(0, 0)}, director.Act(&snapshot))

	snapshot, acted := g.Step()
	assert.True(t, acted)
	assert.Equal(t, game.Win, snapshot.Status)
}

func TestRevealsWhenMinesAreAccountedFor(t *testing.T) {
	g, director := newGame(t,
		"F#########",
		"#.########",
		"##########",
		"##########",
		"##########",
		"##########",
		"##########",
		"##########",
		"##########",
		"##########",
	)

	snapshot := g.Snapshot()
	events := director.Act(&snapshot)

	assert.Equal(t, []game.Event{
		game.RevealAt(1, 0),
		game.RevealAt(2, 0),
		game.RevealAt(0, 1),
		game.RevealAt(2, 1),
		game.RevealAt(0, 2),
		game.RevealAt(1, 2),
		game.RevealAt(2, 2),
	}, events)
}

func TestSubsetObservations(t *testing.T) {
	// One mine among three cells, and that same mine among two of them: the
	// third cell is safe
	obs := []*Observation{
		{numMines: 1, cells: setOf(game.Pos{X: 0, Y: 0}, game.Pos{X: 1, Y: 0}, game.Pos{X: 2, Y: 0})},
		{numMines: 1, cells: setOf(game.Pos{X: 0, Y: 0}, game.Pos{X: 1, Y: 0})},
	}

	simplified := simplify(obs)
	require.Len(t, simplified, 3)
	derived := simplified[2]
	assert.Equal(t, 0, derived.numMines)
	assert.Equal(t, []game.Pos{{X: 2, Y: 0}}, sortedPositions(derived.cells))

	events := (&Director{}).actDeliberate(simplified)
	assert.Equal(t, []game.Event{game.RevealAt(2, 0)}, events)
}

func TestFallsBackToLowestProbability(t *testing.T) {
	obs := []*Observation{
		{numMines: 1, cells: setOf(game.Pos{X: 0, Y: 0}, game.Pos{X: 1, Y: 0})},
		{numMines: 1, cells: setOf(game.Pos{X: 5, Y: 5}, game.Pos{X: 6, Y: 5}, game.Pos{X: 7, Y: 5}, game.Pos{X: 8, Y: 5})},
	}

	event, ok := (&Director{}).actLowestProbability(obs)
	require.True(t, ok)
	assert.Equal(t, game.RevealAt(5, 5), event)

	_, ok = (&Director{}).actLowestProbability(nil)
	assert.False(t, ok)
}

func TestPlaysToTheEnd(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		config := game.NewGameConfig()
		config.Seed = seed
		config.Director = &Director{}

		g, err := game.NewGame(config)
		require.NoError(t, err)

		var snapshot game.Snapshot
		for frame := 0; frame < 500; frame++ {
			var acted bool
			snapshot, acted = g.Step()
			if !acted || snapshot.Status.IsTerminal() {
				break
			}
		}
		assert.True(t, snapshot.Status.IsTerminal(), "seed %d ended with %v", seed, snapshot.Status)
	}
}

func TestObservationString(t *testing.T) {
	origin := game.Pos{X: 1, Y: 1}
	obs := Observation{
		origin:   &origin,
		numMines: 1,
		cells:    setOf(game.Pos{X: 2, Y: 0}, game.Pos{X: 0, Y: 0}),
	}
	assert.Equal(t, "Obs[  (1, 1), 1 ε (0, 0), (2, 0)]", obs.String())
	assert.InDelta(t, 0.5, obs.MineProbability(), 1e-9)
}
