package game

// Director plays the game in place of a human, through the same events a
// shell would send
type Director interface {
	/**
	 * Prepare for a new round of the game
	 */
	Init(*Game)

	/**
	 * Decide the next events from the current frame. Returning no events
	 * means the director has nothing left to do.
	 */
	Act(*Snapshot) []Event
}
