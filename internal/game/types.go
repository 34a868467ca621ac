// apps/advisor/internal/game/types.go
//
// Value types shared by the solver and everything that talks to it.
// Defines:
//   - Mark: per-letter result of a guess (hit/present/miss).
//   - Guess: an observed word plus its per-position result digits.
//   - Game: a referee around a hidden answer, used for simulated play.

package game

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the answer but in a different position.
//   - "miss":    letter does not exist in the answer (or all copies are used up).
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// Result digits, as reported by real play and as used in pattern codes.
const (
	Miss    = 0
	Present = 1
	Hit     = 2
)

// Guess is one row of feedback: the word played and a digit per letter.
type Guess struct {
	Word   string `json:"word"`
	Result []int  `json:"result"`
}

// Game holds the state of a single refereed game.
type Game struct {
	Answer   string  // The solution word (always lowercase).
	Rows     int     // Maximum number of guesses allowed.
	Cols     int     // Number of letters per word.
	Guesses  []Guess // Scored guesses so far.
	Finished bool    // True once the game is over (won or lost).
	Won      bool    // True if the game was finished with a win.

	allowed func(string) bool
}
