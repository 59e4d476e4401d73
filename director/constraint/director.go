package constraint

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/sweepcore/director/random"
	"github.com/they4kman/sweepcore/game"
	"github.com/they4kman/sweepcore/util/collections"
)

// Director plays by deduction from the revealed counts. When nothing can be
// deduced it reveals the cell least likely to be a mine, and failing that a
// random one.
type Director struct {
	random random.Director
	rand   *rand.Rand
	log    *logrus.Logger
}

// Observation says that exactly numMines of cells are mines
type Observation struct {
	origin   *game.Pos
	numMines int
	cells    collections.Set[game.Pos]
}

func (observation Observation) String() string {
	cells := sortedPositions(observation.cells)
	cellsRepr := make([]string, len(cells))
	for i, cell := range cells {
		cellsRepr[i] = cell.String()
	}

	originRepr := "?"
	if observation.origin != nil {
		originRepr = observation.origin.String()
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numMines, strings.Join(cellsRepr, ", "))
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
}

func (director *Director) Init(g *game.Game) {
	director.random.Init(g)
	director.rand = g.Rand()
	director.log = game.Logger()
}

func (director *Director) Act(snapshot *game.Snapshot) []game.Event {
	observations := simplify(observe(snapshot))

	if events := director.actDeliberate(observations); len(events) > 0 {
		return events
	}
	if event, ok := director.actLowestProbability(observations); ok {
		return []game.Event{event}
	}
	return director.random.Act(snapshot)
}

// observe collects one observation per revealed number with closed neighbors
func observe(snapshot *game.Snapshot) []*Observation {
	var observations []*Observation

	for y := 0; y < game.BoardSize; y++ {
		for x := 0; x < game.BoardSize; x++ {
			cell, _ := snapshot.CellAt(x, y)
			value, revealed := cell.Displayed()
			if !revealed || value.IsMine() {
				continue
			}

			origin := game.Pos{X: x, Y: y}
			observation := &Observation{
				origin:   &origin,
				numMines: int(value),
				cells:    collections.NewSet[game.Pos](),
			}

			for _, pos := range game.Neighbors(x, y) {
				neighbor, _ := snapshot.CellAt(pos.X, pos.Y)
				switch neighbor.State {
				case game.Flagged:
					observation.numMines--
				case game.Closed:
					observation.cells.Add(pos)
				}
			}

			if observation.cells.Len() > 0 {
				observations = append(observations, observation)
			}
		}
	}

	return observations
}

// simplify adds, for every observation whose cells are a subset of another's,
// the observation over the cells they do not share
func simplify(observations []*Observation) []*Observation {
	simplified := observations
	for _, observation := range observations {
		for _, other := range observations {
			if observation == other || observation.cells.Len() >= other.cells.Len() {
				continue
			}
			if observation.cells.Difference(other.cells).Len() != 0 {
				continue
			}

			simplified = append(simplified, &Observation{
				numMines: other.numMines - observation.numMines,
				cells:    other.cells.Difference(observation.cells),
			})
		}
	}
	return simplified
}

func (director *Director) actDeliberate(observations []*Observation) []game.Event {
	toFlag := collections.NewSet[game.Pos]()
	toReveal := collections.NewSet[game.Pos]()

	for _, observation := range observations {
		switch observation.numMines {
		case observation.cells.Len():
			for pos := range observation.cells {
				toFlag.Add(pos)
			}
		case 0:
			for pos := range observation.cells {
				toReveal.Add(pos)
			}
		default:
			continue
		}

		if director.log != nil {
			director.log.WithField("observation", observation.String()).Debug("deduced")
		}
	}

	// Contradictions only come from flags placed elsewhere; leave those cells be
	conflicts := toFlag.Difference(toFlag.Difference(toReveal))
	toFlag = toFlag.Difference(conflicts)
	toReveal = toReveal.Difference(conflicts)

	var events []game.Event
	for _, pos := range sortedPositions(toFlag) {
		events = append(events, game.FlagAt(pos.X, pos.Y))
	}
	for _, pos := range sortedPositions(toReveal) {
		events = append(events, game.RevealAt(pos.X, pos.Y))
	}
	return events
}

func (director *Director) actLowestProbability(observations []*Observation) (game.Event, bool) {
	lowestProbability := math.Inf(1)
	cellProbabilities := make(map[game.Pos]float64)

	for _, observation := range observations {
		if observation.numMines < 0 {
			continue
		}
		probability := observation.MineProbability()
		for pos := range observation.cells {
			// A cell is as safe as its most pessimistic observation says
			if past, ok := cellProbabilities[pos]; !ok || probability > past {
				cellProbabilities[pos] = probability
			}
		}
	}

	lowest := collections.NewSet[game.Pos]()
	for pos, probability := range cellProbabilities {
		switch {
		case probability < lowestProbability:
			lowestProbability = probability
			lowest = collections.NewSet(pos)
		case probability == lowestProbability:
			lowest.Add(pos)
		}
	}

	if lowest.Len() == 0 {
		return game.Event{}, false
	}

	candidates := sortedPositions(lowest)
	pos := candidates[0]
	if director.rand != nil {
		pos = candidates[director.rand.Intn(len(candidates))]
	}
	return game.RevealAt(pos.X, pos.Y), true
}

func sortedPositions(set collections.Set[game.Pos]) []game.Pos {
	positions := set.Values()
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Y != positions[j].Y {
			return positions[i].Y < positions[j].Y
		}
		return positions[i].X < positions[j].X
	})
	return positions
}
