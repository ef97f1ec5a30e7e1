package level

// GuardSlot is one of the 24 fixed positional guard records in the INFO
// block. Slot index matters: inactive slots are kept in place so
// consumers can address guards by position.
type GuardSlot struct {
	Block   uint8 `json:"block"`
	Face    uint8 `json:"face"`
	X       uint8 `json:"x"`
	SeqLow  uint8 `json:"-"`
	SeqHigh uint8 `json:"-"`
	Prog    uint8 `json:"prog"`
}

// Sequence returns the full 16-bit starting sequence number.
func (g GuardSlot) Sequence() uint16 {
	return uint16(g.SeqHigh)<<8 | uint16(g.SeqLow)
}

// Active reports whether the slot holds a guard. 0xFF in the block field
// is the "slot unused" sentinel; every other value, including 0, is a
// valid block index.
func (g GuardSlot) Active() bool {
	return g.Block != 0xFF
}

// LevelInfo is the decoded INFO metadata: start positions plus exactly
// MaxGuards guard slots in slot order.
type LevelInfo struct {
	KidStartScreen   uint8 `json:"kid_start_screen"`
	KidStartBlock    uint8 `json:"kid_start_block"`
	KidStartFace     uint8 `json:"kid_start_face"`
	SwordStartScreen uint8 `json:"sword_start_screen"`
	SwordStartBlock  uint8 `json:"sword_start_block"`

	Guards []GuardSlot `json:"guards"`
}

// ActiveGuards returns how many of the 24 slots hold a guard.
func (i *LevelInfo) ActiveGuards() int {
	n := 0
	for _, g := range i.Guards {
		if g.Active() {
			n++
		}
	}
	return n
}

// Room is one 10x3 screen of the level. Tiles are row-major, row 0 on
// top. Connections hold neighbouring room numbers, nil when there is no
// neighbour in that direction.
type Room struct {
	Number int
	Tiles  [][]Tile

	Left  *int
	Right *int
	Up    *int
	Down  *int
}

// Tile returns the tile at (x, y), or nil when out of bounds.
func (r *Room) Tile(x, y int) *Tile {
	if y < 0 || y >= len(r.Tiles) {
		return nil
	}
	if x < 0 || x >= len(r.Tiles[y]) {
		return nil
	}
	return &r.Tiles[y][x]
}

// Level is the full structural model of one blueprint. It exclusively
// owns all nested rooms, tiles and guard slots; decoding never aliases
// loader state, so independent loads may run concurrently.
type Level struct {
	Number int
	Rooms  []*Room
	Info   LevelInfo

	// Raw connectivity and map tables, kept verbatim for fidelity.
	// Their true semantics are undetermined and they are never decoded
	// into structural adjacency.
	LinkLocations []byte
	LinkMap       []byte
	MapData       []byte
}

// Room returns the room with the given number, or nil when out of range.
func (l *Level) Room(number int) *Room {
	if number < 0 || number >= len(l.Rooms) {
		return nil
	}
	return l.Rooms[number]
}

// LinkedRoom returns the room number connected to fromRoom in the given
// direction ("left", "right", "up", "down"), or nil.
func (l *Level) LinkedRoom(fromRoom int, direction string) *int {
	room := l.Room(fromRoom)
	if room == nil {
		return nil
	}
	switch direction {
	case "left":
		return room.Left
	case "right":
		return room.Right
	case "up":
		return room.Up
	case "down":
		return room.Down
	}
	return nil
}
