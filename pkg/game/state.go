package game

import (
	"fmt"

	"github.com/gothyra/adventure/pkg/area"
)

// State is the mutable part of a play session. Only the Interpreter changes
// it.
type State struct {
	world     *area.World
	current   area.Location
	inventory []string
	status    string
	ended     bool
}

// NewState starts a session in the start room of w. The world must pass
// Validate.
func NewState(w *area.World) (*State, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &State{
		world:   w,
		current: w.Start(),
	}, nil
}

func (s *State) World() *area.World {
	return s.world
}

// Current returns the player's location, possibly area.Death.
func (s *State) Current() area.Location {
	return s.current
}

// Room returns the current room, or nil once the player is dead.
func (s *State) Room() *area.Room {
	return s.world.Room(s.current)
}

func (s *State) Dead() bool {
	return s.current.IsDeath()
}

// Inventory returns the taken labels in pickup order.
func (s *State) Inventory() []string {
	return append([]string(nil), s.inventory...)
}

// Status returns the last status line.
func (s *State) Status() string {
	return s.status
}

// Ended reports whether a quit word was entered.
func (s *State) Ended() bool {
	return s.ended
}

// Image returns the asset key to display for the current location.
func (s *State) Image() string {
	return s.world.Image(s.current)
}

// Text is what the host prints in its text area.
func (s *State) Text() string {
	if s.Dead() {
		return StatusDead
	}
	return fmt.Sprintf("%s\nYou are carrying: %v\n\n%s", s.Room().Describe(), s.inventory, s.status)
}

// View is a read-only snapshot of the state for rendering.
type View struct {
	World     string   `json:"world"`
	Room      string   `json:"room,omitempty"`
	Image     string   `json:"image"`
	Describe  string   `json:"describe,omitempty"`
	Inventory []string `json:"inventory"`
	Status    string   `json:"status"`
	Text      string   `json:"text"`
	Dead      bool     `json:"dead"`
	Ended     bool     `json:"ended"`
}

func (s *State) View() View {
	v := View{
		World:     s.world.Name,
		Image:     s.Image(),
		Inventory: s.Inventory(),
		Status:    s.status,
		Text:      s.Text(),
		Dead:      s.Dead(),
		Ended:     s.ended,
	}
	if v.Inventory == nil {
		v.Inventory = []string{}
	}
	if r := s.Room(); r != nil {
		v.Room = r.Name
		v.Describe = r.Describe()
	}
	return v
}
