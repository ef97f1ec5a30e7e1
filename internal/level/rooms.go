package level

// Adjacency is the set of neighbouring room numbers for one room, nil
// where there is no neighbour.
type Adjacency struct {
	Left  *int
	Right *int
	Up    *int
	Down  *int
}

// AdjacencyResolver decides which rooms border a given room. The raw
// link tables are passed through so a future implementation can decode
// the real connectivity without touching the Room or Level structure.
type AdjacencyResolver interface {
	Resolve(roomNumber int, linkLoc, linkMap []byte) Adjacency
}

// GridAdjacency is a geometric approximation: the 24 rooms are treated
// as 3 rows of 8. It does not decode LINKLOC/LINKMAP, whose semantics
// are undetermined.
type GridAdjacency struct{}

const gridWidth = 8

func (GridAdjacency) Resolve(roomNumber int, _, _ []byte) Adjacency {
	var adj Adjacency
	if roomNumber%gridWidth > 0 {
		n := roomNumber - 1
		adj.Left = &n
	}
	if roomNumber%gridWidth < gridWidth-1 {
		n := roomNumber + 1
		adj.Right = &n
	}
	if roomNumber >= gridWidth {
		n := roomNumber - gridWidth
		adj.Up = &n
	}
	if roomNumber < TotalRooms-gridWidth {
		n := roomNumber + gridWidth
		adj.Down = &n
	}
	return adj
}

// AssembleRooms partitions the parallel type/modifier arrays into 24
// rooms of 30 tiles each, rows of 10 top to bottom, and assigns
// adjacency via the resolver.
func AssembleRooms(typeBytes, modBytes, linkLoc, linkMap []byte, resolver AdjacencyResolver) []*Room {
	rooms := make([]*Room, TotalRooms)

	for r := 0; r < TotalRooms; r++ {
		base := r * RoomTiles
		tiles := make([][]Tile, RoomHeight)
		for y := 0; y < RoomHeight; y++ {
			row := make([]Tile, RoomWidth)
			for x := 0; x < RoomWidth; x++ {
				i := base + y*RoomWidth + x
				row[x] = DecodeTile(typeBytes[i], modBytes[i])
			}
			tiles[y] = row
		}

		adj := resolver.Resolve(r, linkLoc, linkMap)
		rooms[r] = &Room{
			Number: r,
			Tiles:  tiles,
			Left:   adj.Left,
			Right:  adj.Right,
			Up:     adj.Up,
			Down:   adj.Down,
		}
	}
	return rooms
}
