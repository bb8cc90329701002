package area

// Default returns the four room scenario the game ships with.
//
//	room1 --east--> room2    room1 --south--> room3
//	room2 --west--> room1    room2 --south--> room4
//	room3 --north-> room1    room3 --east---> room4
//	room4 --north-> room2    room4 --west---> room3
//	room4 --south-> death
func Default() Definition {
	return Definition{
		Name:       "default",
		Start:      "room1",
		DeathImage: DefaultDeathImage,
		Rooms: []RoomDef{
			{
				ID:    "room1",
				Name:  "Room 1",
				Image: "images/room1.gif",
				Exits: []ExitDef{
					{Direction: "east", To: "room2"},
					{Direction: "south", To: "room3"},
				},
				Items: []ItemDef{
					{Label: "chair", Description: "Its made of wicker."},
					{Label: "bigger_chair", Description: "It's made of more wicker. There is a key on it."},
				},
				Grabbables: []string{"key"},
			},
			{
				ID:    "room2",
				Name:  "Room 2",
				Image: "images/room2.gif",
				Exits: []ExitDef{
					{Direction: "west", To: "room1"},
					{Direction: "south", To: "room4"},
				},
				Items: []ItemDef{
					{Label: "smaller_chair", Description: "Its made of less wicker."},
					{Label: "fireplace", Description: "It is not a chair. Please don't sit in it."},
				},
				Grabbables: []string{"fire"},
			},
			{
				ID:    "room3",
				Name:  "Room 3",
				Image: "images/room3.gif",
				Exits: []ExitDef{
					{Direction: "north", To: "room1"},
					{Direction: "east", To: "room4"},
				},
				Items: []ItemDef{
					{Label: "desk_chair", Description: "Its made of wicker too. So is the desk."},
					{Label: "chair", Description: "Yet another chair."},
				},
				Grabbables: []string{"chair"},
			},
			{
				ID:    "room4",
				Name:  "Room 4",
				Image: "images/room4.gif",
				Exits: []ExitDef{
					{Direction: "north", To: "room2"},
					{Direction: "west", To: "room3"},
					{Direction: "south", Death: true},
				},
				Items: []ItemDef{
					{Label: "croissant", Description: "Its made of chairs."},
				},
			},
		},
	}
}
