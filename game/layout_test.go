package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeighbors(t *testing.T) {
	assert.Len(t, Neighbors(0, 0), 3)
	assert.Len(t, Neighbors(BoardSize-1, BoardSize-1), 3)
	assert.Len(t, Neighbors(0, 5), 5)
	assert.Len(t, Neighbors(5, BoardSize-1), 5)
	assert.Len(t, Neighbors(5, 5), 8)

	assert.ElementsMatch(t,
		[]Pos{{1, 0}, {0, 1}, {1, 1}},
		Neighbors(0, 0))

	for _, pos := range Neighbors(9, 0) {
		assert.True(t, InBounds(pos.X, pos.Y), "%v is off the board", pos)
	}
}

func countMines(layout *Layout, x, y int) Value {
	count := Value(0)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if InBounds(nx, ny) && layout.IsMine(nx, ny) {
				count++
			}
		}
	}
	return count
}

func TestGenerateCounts(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		layout := Generate(rand.New(rand.NewSource(seed)), NewGeneratorConfig())

		numMines := 0
		for y := 0; y < BoardSize; y++ {
			for x := 0; x < BoardSize; x++ {
				value := layout.At(x, y)
				if value.IsMine() {
					numMines++
					continue
				}
				require.Equal(t, countMines(layout, x, y), value, "seed %d, cell (%d, %d)", seed, x, y)
				require.True(t, value >= 0 && value <= 8)
			}
		}
		assert.Equal(t, numMines, layout.NumMines())
		assert.Len(t, layout.Mines(), numMines)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	first := Generate(rand.New(rand.NewSource(7)), NewGeneratorConfig())
	second := Generate(rand.New(rand.NewSource(7)), NewGeneratorConfig())
	assert.Equal(t, first.Mines(), second.Mines())
}

// No validation happens by default: degenerate boards are kept as drawn.
func TestGenerateAcceptsDegenerateBoards(t *testing.T) {
	config := NewGeneratorConfig()

	config.MineChance = 1
	allMines := Generate(rand.New(rand.NewSource(1)), config)
	assert.Equal(t, BoardSize*BoardSize, allMines.NumMines())

	config.MineChance = 1 << 30
	noMines := Generate(rand.New(rand.NewSource(1)), config)
	assert.Equal(t, 0, noMines.NumMines())
}

func TestGenerateRegenerate(t *testing.T) {
	config := NewGeneratorConfig()
	config.Policy = Regenerate
	config.MineChance = 2
	config.MinMines = 45
	config.MaxMines = 55

	for seed := int64(0); seed < 10; seed++ {
		layout := Generate(rand.New(rand.NewSource(seed)), config)
		assert.GreaterOrEqual(t, layout.NumMines(), 45)
		assert.LessOrEqual(t, layout.NumMines(), 55)
	}
}

func TestGenerateRegenerateGivesUp(t *testing.T) {
	config := NewGeneratorConfig()
	config.Policy = Regenerate
	config.MineChance = 1 << 30
	config.MinMines = 1
	config.MaxAttempts = 3

	layout := Generate(rand.New(rand.NewSource(1)), config)
	require.NotNil(t, layout)
	assert.Equal(t, 0, layout.NumMines())
}

func TestNewLayout(t *testing.T) {
	layout := NewLayout([]Pos{{0, 0}, {2, 0}, {-1, 3}, {10, 10}})

	assert.Equal(t, 2, layout.NumMines())
	assert.Equal(t, []Pos{{0, 0}, {2, 0}}, layout.Mines())
	assert.Equal(t, Value(2), layout.At(1, 0))
	assert.Equal(t, Value(2), layout.At(1, 1))
	assert.Equal(t, Value(1), layout.At(0, 1))
	assert.Equal(t, Value(0), layout.At(5, 5))
}
