package game

import "strings"

// Verb is the closed set of actions the interpreter knows.
type Verb int

const (
	VerbUnknown Verb = iota
	VerbGo
	VerbLook
	VerbTake
)

var verbs = map[string]Verb{
	"go":   VerbGo,
	"look": VerbLook,
	"take": VerbTake,
}

func (v Verb) String() string {
	switch v {
	case VerbGo:
		return "go"
	case VerbLook:
		return "look"
	case VerbTake:
		return "take"
	}
	return "unknown"
}

// Command is one verb-noun pair typed by the player.
type Command struct {
	Verb Verb
	// Word is the verb as typed, kept for unknown verbs.
	Word string
	Noun string
}

// Normalize lowercases a raw input line.
func Normalize(line string) string {
	return strings.ToLower(line)
}

// Parse splits a normalized line into a command. It fails unless the line
// holds exactly two whitespace separated words.
func Parse(line string) (Command, bool) {
	words := strings.Fields(Normalize(line))
	if len(words) != 2 {
		return Command{}, false
	}
	return Command{
		Verb: verbs[words[0]],
		Word: words[0],
		Noun: words[1],
	}, true
}
