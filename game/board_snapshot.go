package game

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Snapshot is a read-only picture of the board for a single frame; it is what
// a renderer draws from
type Snapshot struct {
	Seed      int64
	Status    Status
	Remaining int
	MinesLeft int
	Cells     [BoardSize][BoardSize]Cell // [y][x]
}

func (board *Board) snapshot(seed int64) Snapshot {
	snapshot := Snapshot{
		Seed:      seed,
		Status:    board.status,
		Remaining: board.timer.Remaining(),
		MinesLeft: board.MinesLeft(),
	}
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			snapshot.Cells[y][x], _ = board.CellAt(x, y)
		}
	}
	return snapshot
}

func (snapshot *Snapshot) CellAt(x, y int) (Cell, bool) {
	if !InBounds(x, y) {
		return Cell{}, false
	}
	return snapshot.Cells[y][x], true
}

// StatusText is the line shown above the board
func (snapshot *Snapshot) StatusText() string {
	switch snapshot.Status {
	case Win:
		return "You win"
	case Lose:
		return "You lose"
	default:
		return FormatCountdown(snapshot.Remaining)
	}
}

// Closed lists the positions of cells neither revealed nor flagged
func (snapshot *Snapshot) Closed() []Pos {
	var closed []Pos
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if snapshot.Cells[y][x].IsClosed() {
				closed = append(closed, Pos{x, y})
			}
		}
	}
	return closed
}

func serializeCell(cell Cell) byte {
	switch {
	case cell.Value.IsMine():
		switch cell.State {
		case Revealed:
			return '*'
		case Flagged:
			return 'F'
		default:
			return 'O'
		}
	case cell.State == Flagged:
		return 'f'
	case cell.State == Revealed:
		return '.'
	default:
		return '#'
	}
}

func deserializeCell(c byte) (isMine bool, state CellState, ok bool) {
	switch c {
	case '*':
		return true, Revealed, true
	case 'F':
		return true, Flagged, true
	case 'O':
		return true, Closed, true
	case 'f':
		return false, Flagged, true
	case '.':
		return false, Revealed, true
	case '#':
		return false, Closed, true
	default:
		return false, Closed, false
	}
}

// Board renders the grid as text, one row per line
func (snapshot *Snapshot) Board() string {
	var out strings.Builder
	for y := 0; y < BoardSize; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		for x := 0; x < BoardSize; x++ {
			out.WriteByte(serializeCell(snapshot.Cells[y][x]))
		}
	}
	return out.String()
}

func (snapshot *Snapshot) Serialize() string {
	serialized := BoardSnapshot{
		Seed:            snapshot.Seed,
		Status:          snapshot.Status.String(),
		Remaining:       snapshot.Remaining,
		SerializedBoard: snapshot.Board(),
	}
	return serialized.Serialize()
}

// BoardSnapshot is the YAML text form of a board. The board is a grid of
// characters, one row per line:
//
//	# closed     O closed mine
//	f flagged    F flagged mine
//	. revealed   * revealed mine
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	Status          string `yaml:"status,omitempty"`
	Remaining       int    `yaml:"remaining,omitempty"`
	SerializedBoard string `yaml:"board"`
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func (snapshot *BoardSnapshot) parse() ([]Pos, StateGrid, error) {
	var states StateGrid

	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")
	if len(rows) != BoardSize {
		return nil, states, errors.Errorf("board has %d rows, want %d", len(rows), BoardSize)
	}

	var mines []Pos
	for y, row := range rows {
		row = strings.TrimSpace(row)
		if len(row) != BoardSize {
			return nil, states, errors.Errorf("row %d has %d cells, want %d", y, len(row), BoardSize)
		}

		for x := 0; x < BoardSize; x++ {
			isMine, state, ok := deserializeCell(row[x])
			if !ok {
				return nil, states, errors.Errorf("unknown cell %q at (%d, %d)", row[x], x, y)
			}
			if isMine {
				mines = append(mines, Pos{x, y})
			}
			states[y][x] = state
		}
	}

	return mines, states, nil
}

// Layout rebuilds the mine layout described by the snapshot
func (snapshot *BoardSnapshot) Layout() (*Layout, error) {
	mines, _, err := snapshot.parse()
	if err != nil {
		return nil, err
	}
	return NewLayout(mines), nil
}

// States returns the cell states described by the snapshot; all Closed if
// fresh is set
func (snapshot *BoardSnapshot) States(fresh bool) (StateGrid, error) {
	_, states, err := snapshot.parse()
	if err != nil || fresh {
		return StateGrid{}, err
	}
	return states, nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(err, "parsing board snapshot")
	}
	if _, _, err := snapshot.parse(); err != nil {
		return nil, errors.Wrap(err, "parsing board snapshot")
	}
	return &snapshot, nil
}
