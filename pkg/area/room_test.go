package area

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomExits(t *testing.T) {
	r := NewRoom("Hall", "images/hall.gif")
	r.AddExit("east", Location(1))
	r.AddExit("south", Death)
	r.AddExit("west", Location(2))
	r.AddExit("east", Location(3))

	to, ok := r.Exit("east")
	require.True(t, ok)
	assert.Equal(t, Location(3), to)

	to, ok = r.Exit("south")
	require.True(t, ok, "a deadly exit is still an exit")
	assert.True(t, to.IsDeath())

	_, ok = r.Exit("north")
	assert.False(t, ok)

	_, ok = r.Exit("East")
	assert.False(t, ok, "directions are case sensitive")

	assert.Equal(t, []Exit{
		{Direction: "east", To: 3},
		{Direction: "south", To: Death},
		{Direction: "west", To: 2},
	}, r.Exits(), "overwriting keeps the original position")
}

func TestRoomItems(t *testing.T) {
	r := NewRoom("Hall", "")
	r.AddItem("chair", "Its made of wicker.")
	r.AddItem("lamp", "Off.")

	desc, ok := r.Item("chair")
	require.True(t, ok)
	assert.Equal(t, "Its made of wicker.", desc)

	_, ok = r.Item("table")
	assert.False(t, ok)
	assert.Len(t, r.Items(), 2)
}

func TestRoomGrabbables(t *testing.T) {
	r := NewRoom("Hall", "")
	r.AddGrabbable("coin")
	r.AddGrabbable("key")
	r.AddGrabbable("coin")

	require.NoError(t, r.TakeGrabbable("coin"))
	assert.Equal(t, []string{"key", "coin"}, r.Grabbables())
	assert.True(t, r.HasGrabbable("coin"))

	require.NoError(t, r.TakeGrabbable("coin"))
	assert.False(t, r.HasGrabbable("coin"))

	err := r.TakeGrabbable("coin")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "coin", nf.Label)
	assert.Equal(t, []string{"key"}, r.Grabbables())
}

func TestRoomGrabbablesCopy(t *testing.T) {
	r := NewRoom("Hall", "")
	r.AddGrabbable("key")

	g := r.Grabbables()
	g[0] = "spoon"

	assert.True(t, r.HasGrabbable("key"))
}

func TestRoomDescribe(t *testing.T) {
	tests := []struct {
		name     string
		room     func() *Room
		expected string
	}{
		{
			name: "empty room",
			room: func() *Room {
				return NewRoom("Void", "")
			},
			expected: "You are in Void\nYou see: \nExits: \n",
		},
		{
			name: "items and exits in insertion order",
			room: func() *Room {
				r := NewRoom("Room 1", "")
				r.AddItem("chair", "Its made of wicker.")
				r.AddItem("bigger_chair", "More wicker.")
				r.AddGrabbable("key")
				r.AddExit("east", 1)
				r.AddExit("south", 2)
				return r
			},
			expected: "You are in Room 1\nYou see: chair bigger_chair\nExits: east south\n",
		},
	}

	for _, test := range tests {
		got := test.room().Describe()
		if got != test.expected {
			t.Errorf("%s: expected %q, got %q", test.name, test.expected, got)
		}
	}
}

func TestLocationString(t *testing.T) {
	assert.Equal(t, "death", Death.String())
	assert.Equal(t, "room#2", Location(2).String())
	assert.False(t, Location(0).IsDeath())
}
