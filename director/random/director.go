package random

import (
	"github.com/they4kman/sweepcore/game"
)

// Director reveals closed cells in a random order, one per frame
type Director struct {
	order []game.Pos
}

func (director *Director) Init(g *game.Game) {
	director.order = make([]game.Pos, 0, game.BoardSize*game.BoardSize)
	for y := 0; y < game.BoardSize; y++ {
		for x := 0; x < game.BoardSize; x++ {
			director.order = append(director.order, game.Pos{X: x, Y: y})
		}
	}

	g.Rand().Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

// Next returns the first closed cell in the shuffled order
func (director *Director) Next(snapshot *game.Snapshot) (game.Pos, bool) {
	for len(director.order) > 0 {
		pos := director.order[0]
		cell, _ := snapshot.CellAt(pos.X, pos.Y)
		if cell.IsClosed() {
			return pos, true
		}
		// Revealed cells stay revealed; flagged ones are left to whoever flagged them
		director.order = director.order[1:]
	}
	return game.Pos{}, false
}

func (director *Director) Act(snapshot *game.Snapshot) []game.Event {
	pos, ok := director.Next(snapshot)
	if !ok {
		return nil
	}
	return []game.Event{game.RevealAt(pos.X, pos.Y)}
}
