package saorom

// State is a step of a FormatAndWrite run.
//
//	Formatting -> Writing -> Verifying -> Succeeded
//	                 ^           |
//	                 |           v
//	                 +------ Retrying -> Exhausted (after the last attempt)
type State int

const (
	StateFormatting State = iota
	StateWriting
	StateVerifying
	StateSucceeded
	StateRetrying
	StateExhausted
)

var stateNames = [...]string{
	StateFormatting: "formatting",
	StateWriting:    "writing",
	StateVerifying:  "verifying",
	StateSucceeded:  "succeeded",
	StateRetrying:   "retrying",
	StateExhausted:  "exhausted",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Terminal reports whether no further transitions follow s.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateExhausted
}

// Progress is passed to a ProgressCallback on every state change.
type Progress struct {
	State State

	// Attempt (1-based) and Tries are set by FormatAndWrite.
	Attempt int
	Tries   int

	// Chunk is the index of the chunk being written; Chunks the total.
	Chunk  int
	Chunks int
}

// ProgressCallback observes a write. It runs synchronously and should
// return quickly.
type ProgressCallback func(Progress)
