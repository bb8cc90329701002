package area

import (
	"bytes"
	"fmt"
	"strings"
)

// Location is a handle into the room registry of a World. Death is the only
// value that does not index a room.
type Location int

// Death is the absorbing location reached through a deadly exit.
const Death Location = -1

// IsDeath reports whether l is the death sentinel.
func (l Location) IsDeath() bool {
	return l == Death
}

func (l Location) String() string {
	if l == Death {
		return "death"
	}
	return fmt.Sprintf("room#%d", int(l))
}

// Exit is a labelled edge to another location.
type Exit struct {
	Direction string
	To        Location
}

// Item is a static, lookable thing inside a room.
type Item struct {
	Label       string
	Description string
}

// NotFoundError is returned when a grabbable is taken from a room that does
// not hold it.
type NotFoundError struct {
	Room  string
	Label string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%q is not grabbable in %q", e.Label, e.Room)
}

// Room is a node of the world graph. Exits and items keep their insertion
// order; grabbables may hold the same label more than once.
type Room struct {
	Name  string
	Image string

	exits      []Exit
	exitIndex  map[string]int
	items      []Item
	itemIndex  map[string]int
	grabbables []string
}

// NewRoom returns an empty room.
func NewRoom(name, image string) *Room {
	return &Room{
		Name:      name,
		Image:     image,
		exitIndex: make(map[string]int),
		itemIndex: make(map[string]int),
	}
}

// AddExit registers an exit, overwriting the target of an existing direction
// in place.
func (r *Room) AddExit(direction string, to Location) {
	if i, ok := r.exitIndex[direction]; ok {
		r.exits[i].To = to
		return
	}
	r.exitIndex[direction] = len(r.exits)
	r.exits = append(r.exits, Exit{Direction: direction, To: to})
}

// Exit returns where direction leads. The boolean is false when the room has
// no exit in that direction; a deadly exit returns (Death, true).
func (r *Room) Exit(direction string) (Location, bool) {
	i, ok := r.exitIndex[direction]
	if !ok {
		return 0, false
	}
	return r.exits[i].To, true
}

// Exits returns the exits in insertion order.
func (r *Room) Exits() []Exit {
	return append([]Exit(nil), r.exits...)
}

func (r *Room) AddItem(label, description string) {
	if i, ok := r.itemIndex[label]; ok {
		r.items[i].Description = description
		return
	}
	r.itemIndex[label] = len(r.items)
	r.items = append(r.items, Item{Label: label, Description: description})
}

// Item returns the description of label.
func (r *Room) Item(label string) (string, bool) {
	i, ok := r.itemIndex[label]
	if !ok {
		return "", false
	}
	return r.items[i].Description, true
}

func (r *Room) Items() []Item {
	return append([]Item(nil), r.items...)
}

func (r *Room) AddGrabbable(label string) {
	r.grabbables = append(r.grabbables, label)
}

func (r *Room) HasGrabbable(label string) bool {
	for _, g := range r.grabbables {
		if g == label {
			return true
		}
	}
	return false
}

// TakeGrabbable removes the first occurrence of label.
func (r *Room) TakeGrabbable(label string) error {
	for i, g := range r.grabbables {
		if g == label {
			r.grabbables = append(r.grabbables[:i], r.grabbables[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Room: r.Name, Label: label}
}

func (r *Room) Grabbables() []string {
	return append([]string(nil), r.grabbables...)
}

// Describe renders the room name, its item labels and its exit directions.
func (r *Room) Describe() string {
	var buffer bytes.Buffer

	buffer.WriteString("You are in " + r.Name + "\n")

	labels := make([]string, 0, len(r.items))
	for _, item := range r.items {
		labels = append(labels, item.Label)
	}
	buffer.WriteString("You see: " + strings.Join(labels, " ") + "\n")

	directions := make([]string, 0, len(r.exits))
	for _, exit := range r.exits {
		directions = append(directions, exit.Direction)
	}
	buffer.WriteString("Exits: " + strings.Join(directions, " ") + "\n")

	return buffer.String()
}

func (r *Room) String() string {
	return r.Describe()
}
