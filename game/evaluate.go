package game

// Evaluate derives the status of a board from its cell states, its layout and
// the seconds left on the clock. It is a full scan on every call.
//
// Checks run in order and the first match wins:
//   - no time left: Lose
//   - a revealed mine anywhere: Lose
//   - any closed cell, unflagged mine or flagged safe cell: Continue
//   - otherwise: Win
func Evaluate(states *StateGrid, layout *Layout, remainingSeconds int) Status {
	if remainingSeconds <= 0 {
		return Lose
	}

	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if states.At(x, y) == Revealed && layout.IsMine(x, y) {
				return Lose
			}
		}
	}

	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			state := states.At(x, y)
			isMine := layout.IsMine(x, y)

			switch {
			case state == Closed:
				return Continue
			case isMine && state != Flagged:
				return Continue
			case !isMine && state == Flagged:
				return Continue
			}
		}
	}

	return Win
}
