package area

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownRoom   = errors.New("unknown room")
	ErrBadExit       = errors.New("exit must lead to exactly one room or to death")
	ErrDuplicateRoom = errors.New("duplicate room id")
	ErrNoRooms       = errors.New("world has no rooms")
)

// DefaultDeathImage is shown once the player is dead.
const DefaultDeathImage = "images/skull.gif"

// World owns every room of a play session. Rooms are addressed by Location
// so that the cyclic exit graph needs no pointers between rooms.
type World struct {
	Name       string
	Intro      string
	DeathImage string

	rooms []*Room
	start Location
}

// NewWorld returns an empty world.
func NewWorld(name string) *World {
	return &World{
		Name:       name,
		DeathImage: DefaultDeathImage,
	}
}

// AddRoom registers a new room and returns its handle. The first room added
// is the start room until SetStart says otherwise.
func (w *World) AddRoom(name, image string) Location {
	w.rooms = append(w.rooms, NewRoom(name, image))
	return Location(len(w.rooms) - 1)
}

// Room returns the room at l, or nil for Death and out of range handles.
func (w *World) Room(l Location) *Room {
	if l < 0 || int(l) >= len(w.rooms) {
		return nil
	}
	return w.rooms[l]
}

// Len returns the number of rooms.
func (w *World) Len() int {
	return len(w.rooms)
}

func (w *World) Start() Location {
	return w.start
}

func (w *World) SetStart(l Location) error {
	if w.Room(l) == nil {
		return fmt.Errorf("start %v: %w", l, ErrUnknownRoom)
	}
	w.start = l
	return nil
}

// Image returns the display asset for l.
func (w *World) Image(l Location) string {
	if l.IsDeath() {
		return w.DeathImage
	}
	if r := w.Room(l); r != nil {
		return r.Image
	}
	return ""
}

// Validate checks that every exit leads to a room of this world or to Death.
func (w *World) Validate() error {
	if len(w.rooms) == 0 {
		return ErrNoRooms
	}
	for _, r := range w.rooms {
		for _, e := range r.exits {
			if e.To.IsDeath() {
				continue
			}
			if w.Room(e.To) == nil {
				return fmt.Errorf("%s exit %q to %v: %w", r.Name, e.Direction, e.To, ErrUnknownRoom)
			}
		}
	}
	return nil
}
