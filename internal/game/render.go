package game

import (
	"strings"

	"github.com/TwiN/go-color"
)

var tileColors = [...]string{Miss: color.Gray, Present: color.Yellow, Hit: color.Green}

// Colorize renders the guess as colored upper-case tiles for a terminal.
func (g Guess) Colorize() string {
	var b strings.Builder
	for i := 0; i < len(g.Word); i++ {
		c := color.Gray
		if i < len(g.Result) && g.Result[i] >= Miss && g.Result[i] <= Hit {
			c = tileColors[g.Result[i]]
		}
		b.WriteString(color.Ize(c, strings.ToUpper(g.Word[i:i+1])))
	}
	return b.String()
}

// String renders the guess as "word 20100".
func (g Guess) String() string {
	var b strings.Builder
	b.WriteString(g.Word)
	b.WriteByte(' ')
	for _, d := range g.Result {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}
