package game

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Pos addresses a cell; X is the column and Y the row
type Pos struct {
	X, Y int
}

func (pos Pos) String() string {
	return fmt.Sprintf("(%d, %d)", pos.X, pos.Y)
}

func InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < BoardSize && y < BoardSize
}

// Neighbors returns the positions surrounding (x, y) which lie on the board.
// Cells on the border have fewer neighbors; nothing wraps around.
func Neighbors(x, y int) []Pos {
	neighbors := make([]Pos, 0, 8)

	isAtTopBorder := y < 1
	isAtBottomBorder := y >= BoardSize-1

	if x >= 1 {
		neighbors = append(neighbors, Pos{x - 1, y})

		if !isAtTopBorder {
			neighbors = append(neighbors, Pos{x - 1, y - 1})
		}
		if !isAtBottomBorder {
			neighbors = append(neighbors, Pos{x - 1, y + 1})
		}
	}

	if x < BoardSize-1 {
		neighbors = append(neighbors, Pos{x + 1, y})

		if !isAtTopBorder {
			neighbors = append(neighbors, Pos{x + 1, y - 1})
		}
		if !isAtBottomBorder {
			neighbors = append(neighbors, Pos{x + 1, y + 1})
		}
	}

	if !isAtTopBorder {
		neighbors = append(neighbors, Pos{x, y - 1})
	}
	if !isAtBottomBorder {
		neighbors = append(neighbors, Pos{x, y + 1})
	}

	return neighbors
}

// Layout is the immutable ground truth of a board: which cells are mines,
// and how many mines surround every other cell
type Layout struct {
	values   [BoardSize][BoardSize]Value // [y][x]
	numMines int
}

// At returns the value of the cell at (x, y). Callers must check InBounds.
func (layout *Layout) At(x, y int) Value {
	return layout.values[y][x]
}

func (layout *Layout) IsMine(x, y int) bool {
	return layout.values[y][x].IsMine()
}

func (layout *Layout) NumMines() int {
	return layout.numMines
}

// Mines lists mine positions in row-major order
func (layout *Layout) Mines() []Pos {
	mines := make([]Pos, 0, layout.numMines)
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if layout.IsMine(x, y) {
				mines = append(mines, Pos{x, y})
			}
		}
	}
	return mines
}

// NewLayout builds a layout with mines at exactly the given positions.
// Positions off the board are ignored.
func NewLayout(mines []Pos) *Layout {
	layout := &Layout{}
	for _, pos := range mines {
		if InBounds(pos.X, pos.Y) {
			layout.values[pos.Y][pos.X] = Mine
		}
	}
	layout.fillCounts()
	return layout
}

func (layout *Layout) fillCounts() {
	layout.numMines = 0

	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if layout.values[y][x].IsMine() {
				layout.numMines++
				continue
			}

			count := Value(0)
			for _, neighbor := range Neighbors(x, y) {
				if layout.values[neighbor.Y][neighbor.X].IsMine() {
					count++
				}
			}
			layout.values[y][x] = count
		}
	}
}

type GenerationPolicy int

const (
	// AcceptAny keeps whatever the first draw produced, including boards
	// without mines or almost entirely made of mines
	AcceptAny GenerationPolicy = iota
	// Regenerate draws again until the mine count lies within
	// [MinMines, MaxMines], or MaxAttempts is reached
	Regenerate
)

var GenerationPolicies = map[string]GenerationPolicy{
	"accept":     AcceptAny,
	"regenerate": Regenerate,
}

func (policy GenerationPolicy) String() string {
	for name, p := range GenerationPolicies {
		if p == policy {
			return name
		}
	}
	return fmt.Sprintf("GenerationPolicy(%d)", int(policy))
}

type GeneratorConfig struct {
	// Each cell is a mine with probability 1/MineChance
	MineChance int

	Policy      GenerationPolicy
	MinMines    int
	MaxMines    int // 0 means unbounded
	MaxAttempts int
}

func NewGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		MineChance:  DefaultMineChance,
		Policy:      AcceptAny,
		MinMines:    1,
		MaxMines:    0,
		MaxAttempts: 100,
	}
}

func (config GeneratorConfig) accepts(numMines int) bool {
	if config.Policy != Regenerate {
		return true
	}
	if numMines < config.MinMines {
		return false
	}
	return config.MaxMines == 0 || numMines <= config.MaxMines
}

// Generate draws a fresh layout from rng. Every cell is independently a mine
// with probability 1/config.MineChance.
func Generate(rng *rand.Rand, config GeneratorConfig) *Layout {
	mineChance := config.MineChance
	if mineChance < 1 {
		mineChance = DefaultMineChance
	}
	maxAttempts := config.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var layout *Layout
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		layout = &Layout{}
		for y := 0; y < BoardSize; y++ {
			for x := 0; x < BoardSize; x++ {
				if rng.Intn(mineChance) == 0 {
					layout.values[y][x] = Mine
				}
			}
		}
		layout.fillCounts()

		if config.accepts(layout.numMines) {
			log.WithFields(logrus.Fields{
				"mines":    layout.numMines,
				"attempts": attempt,
			}).Debug("generated layout")
			return layout
		}
	}

	log.WithFields(logrus.Fields{
		"mines":    layout.numMines,
		"attempts": maxAttempts,
		"minMines": config.MinMines,
		"maxMines": config.MaxMines,
	}).Warn("could not generate a layout within mine bounds; keeping last draw")

	return layout
}
