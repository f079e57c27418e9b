package riddle

// wrongClearMsg clears the wrong-answer marker after a short flash.
type wrongClearMsg struct {
	seq int
}
