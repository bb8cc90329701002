package game

import (
	"strings"

	log "gopkg.in/inconshreveable/log15.v2"
)

// Outcome tells the host what a processed line did.
type Outcome int

const (
	// Applied means a status was produced for the line.
	Applied Outcome = iota
	// Ignored means the player is dead and the line changed nothing.
	Ignored
	// Quit means the session is over and the host should close it.
	Quit
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Ignored:
		return "ignored"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// Turn is the result of processing one input line.
type Turn struct {
	Outcome Outcome
	Command Command
	Status  string
}

// Interpreter maps raw input lines to state changes.
type Interpreter struct {
	quitWords map[string]struct{}
	log       log.Logger
}

// NewInterpreter returns an interpreter that ends the session on any of
// quitWords, or on QuitWords when none are given.
func NewInterpreter(logger log.Logger, quitWords ...string) *Interpreter {
	if len(quitWords) == 0 {
		quitWords = QuitWords
	}
	if logger == nil {
		logger = log.New()
	}
	in := &Interpreter{
		quitWords: make(map[string]struct{}, len(quitWords)),
		log:       logger,
	}
	for _, w := range quitWords {
		in.quitWords[strings.ToLower(w)] = struct{}{}
	}
	return in
}

// IsQuit reports whether line is a quit word, ignoring case and surrounding
// whitespace.
func (in *Interpreter) IsQuit(line string) bool {
	_, ok := in.quitWords[strings.TrimSpace(Normalize(line))]
	return ok
}

// Process applies one line of player input to s.
func (in *Interpreter) Process(s *State, line string) Turn {
	if in.IsQuit(line) {
		s.ended = true
		in.log.Debug("quit", "line", line)
		return Turn{Outcome: Quit}
	}

	if s.Dead() {
		in.log.Debug("ignored input after death", "line", line)
		return Turn{Outcome: Ignored, Status: s.status}
	}

	cmd, ok := Parse(line)
	if !ok || s.Room() == nil {
		return in.finish(s, cmd, StatusDefault)
	}

	var status string
	switch cmd.Verb {
	case VerbGo:
		status = in.handleGo(s, cmd.Noun)
	case VerbLook:
		status = in.handleLook(s, cmd.Noun)
	case VerbTake:
		status = in.handleTake(s, cmd.Noun)
	case VerbUnknown:
		status = StatusDefault
	}
	return in.finish(s, cmd, status)
}

func (in *Interpreter) finish(s *State, cmd Command, status string) Turn {
	s.status = status
	room := "death"
	if r := s.Room(); r != nil {
		room = r.Name
	}
	in.log.Debug("turn", "verb", cmd.Word, "noun", cmd.Noun, "room", room, "status", status)
	return Turn{Outcome: Applied, Command: cmd, Status: status}
}

func (in *Interpreter) handleGo(s *State, direction string) string {
	to, ok := s.Room().Exit(direction)
	if !ok {
		return StatusBadExit
	}
	s.current = to
	if to.IsDeath() {
		in.log.Info("player died", "world", s.world.Name)
	}
	return StatusRoomChange
}

func (in *Interpreter) handleLook(s *State, item string) string {
	desc, ok := s.Room().Item(item)
	if !ok {
		return StatusBadItem
	}
	return desc
}

func (in *Interpreter) handleTake(s *State, grabbable string) string {
	room := s.Room()
	if !room.HasGrabbable(grabbable) {
		return StatusBadGrabbable
	}
	if err := room.TakeGrabbable(grabbable); err != nil {
		panic(err)
	}
	s.inventory = append(s.inventory, grabbable)
	return StatusGrabbed
}
