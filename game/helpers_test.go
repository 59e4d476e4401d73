package game

import (
	"strings"
	"time"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2020, 3, 10, 12, 0, 0, 0, time.UTC)}
}

func (clock *fakeClock) Now() time.Time {
	return clock.now
}

func (clock *fakeClock) Advance(d time.Duration) {
	clock.now = clock.now.Add(d)
}

func newTestBoard(mines ...Pos) (*Board, *fakeClock) {
	clock := newFakeClock()
	return NewBoard(NewLayout(mines), clock, DefaultBudget), clock
}

// boardText draws a board of closed cells with closed mines at the given
// positions, in the BoardSnapshot text form
func boardText(mines ...Pos) string {
	rows := make([][]byte, BoardSize)
	for y := range rows {
		rows[y] = []byte(strings.Repeat("#", BoardSize))
	}
	for _, pos := range mines {
		rows[pos.Y][pos.X] = 'O'
	}

	lines := make([]string, BoardSize)
	for y, row := range rows {
		lines[y] = string(row)
	}
	return strings.Join(lines, "\n")
}

func newTestGame(mines ...Pos) (*Game, *fakeClock) {
	clock := newFakeClock()
	config := NewGameConfig()
	config.Seed = 42
	config.Clock = clock
	config.Snapshot = &BoardSnapshot{SerializedBoard: boardText(mines...)}

	g, err := NewGame(config)
	if err != nil {
		panic(err)
	}
	return g, clock
}

// revealAllBut reveals every cell except those listed
func revealAllBut(board *Board, skip ...Pos) {
	skipped := make(map[Pos]bool)
	for _, pos := range skip {
		skipped[pos] = true
	}
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if !skipped[Pos{x, y}] {
				board.ApplyAction(x, y, Reveal)
			}
		}
	}
}
