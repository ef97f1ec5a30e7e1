package level

import (
	"fmt"

	"github.com/thesrcielos/PrinceLevels/internal/apperrors"
)

// Document is the editable interchange form of a level. Field names are
// part of the contract; editors and the HTTP API both speak this schema.
type Document struct {
	LevelNumber int            `json:"level_number"`
	Info        DocumentInfo   `json:"info"`
	Rooms       []DocumentRoom `json:"rooms"`
}

type DocumentInfo struct {
	KidStartScreen   int             `json:"kid_start_screen"`
	KidStartBlock    int             `json:"kid_start_block"`
	KidStartFace     int             `json:"kid_start_face"`
	SwordStartScreen int             `json:"sword_start_screen"`
	SwordStartBlock  int             `json:"sword_start_block"`
	Guards           []DocumentGuard `json:"guards"`
}

type DocumentGuard struct {
	Block    int  `json:"block"`
	Face     int  `json:"face"`
	X        int  `json:"x"`
	Sequence int  `json:"sequence"`
	Prog     int  `json:"prog"`
	Active   bool `json:"active"`
}

type DocumentRoom struct {
	RoomNumber  int                 `json:"room_number"`
	Connections DocumentConnections `json:"connections"`
	Tiles       [][]DocumentTile    `json:"tiles"`
}

type DocumentConnections struct {
	Left  *int `json:"left"`
	Right *int `json:"right"`
	Up    *int `json:"up"`
	Down  *int `json:"down"`
}

type DocumentTile struct {
	Type     string `json:"type"`
	TypeID   int    `json:"type_id"`
	Modifier int    `json:"modifier"`
}

// ExportDocument converts a Level to its interchange form. All 24 guard
// slots are emitted in slot order, tagged with their activity flag, so
// import can restore positional slot identity exactly.
func ExportDocument(lvl *Level) *Document {
	doc := &Document{
		LevelNumber: lvl.Number,
		Info: DocumentInfo{
			KidStartScreen:   int(lvl.Info.KidStartScreen),
			KidStartBlock:    int(lvl.Info.KidStartBlock),
			KidStartFace:     int(lvl.Info.KidStartFace),
			SwordStartScreen: int(lvl.Info.SwordStartScreen),
			SwordStartBlock:  int(lvl.Info.SwordStartBlock),
			Guards:           make([]DocumentGuard, 0, len(lvl.Info.Guards)),
		},
		Rooms: make([]DocumentRoom, 0, len(lvl.Rooms)),
	}

	for _, g := range lvl.Info.Guards {
		doc.Info.Guards = append(doc.Info.Guards, DocumentGuard{
			Block:    int(g.Block),
			Face:     int(g.Face),
			X:        int(g.X),
			Sequence: int(g.Sequence()),
			Prog:     int(g.Prog),
			Active:   g.Active(),
		})
	}

	for _, room := range lvl.Rooms {
		docRoom := DocumentRoom{
			RoomNumber: room.Number,
			Connections: DocumentConnections{
				Left:  room.Left,
				Right: room.Right,
				Up:    room.Up,
				Down:  room.Down,
			},
			Tiles: make([][]DocumentTile, 0, len(room.Tiles)),
		}
		for _, row := range room.Tiles {
			docRow := make([]DocumentTile, 0, len(row))
			for _, t := range row {
				docRow = append(docRow, DocumentTile{
					Type:     t.Type.String(),
					TypeID:   int(t.Type),
					Modifier: int(t.Modifier),
				})
			}
			docRoom.Tiles = append(docRoom.Tiles, docRow)
		}
		doc.Rooms = append(doc.Rooms, docRoom)
	}
	return doc
}

// ImportDocument converts an interchange document back to a Level.
// Documents written before the all-slots schema may carry fewer than 24
// guards; those are padded with sentinel slots at the end, which loses
// the original indices of the missing inactive slots.
func ImportDocument(doc *Document) (*Level, error) {
	if len(doc.Rooms) != TotalRooms {
		return nil, apperrors.NewFormatError(
			fmt.Sprintf("level document has %d rooms (expected %d)", len(doc.Rooms), TotalRooms), nil)
	}

	info := LevelInfo{
		KidStartScreen:   uint8(doc.Info.KidStartScreen),
		KidStartBlock:    uint8(doc.Info.KidStartBlock),
		KidStartFace:     uint8(doc.Info.KidStartFace),
		SwordStartScreen: uint8(doc.Info.SwordStartScreen),
		SwordStartBlock:  uint8(doc.Info.SwordStartBlock),
		Guards:           make([]GuardSlot, 0, MaxGuards),
	}

	if len(doc.Info.Guards) > MaxGuards {
		return nil, apperrors.NewFormatError(
			fmt.Sprintf("level document has %d guards (max %d)", len(doc.Info.Guards), MaxGuards), nil)
	}
	for _, g := range doc.Info.Guards {
		info.Guards = append(info.Guards, GuardSlot{
			Block:   uint8(g.Block),
			Face:    uint8(g.Face),
			X:       uint8(g.X),
			SeqLow:  uint8(g.Sequence & 0xFF),
			SeqHigh: uint8(g.Sequence >> 8),
			Prog:    uint8(g.Prog),
		})
	}
	for len(info.Guards) < MaxGuards {
		info.Guards = append(info.Guards, GuardSlot{Block: 0xFF})
	}

	rooms := make([]*Room, 0, TotalRooms)
	for _, docRoom := range doc.Rooms {
		room, err := importRoom(docRoom)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}

	lvl := &Level{
		Number:        doc.LevelNumber,
		Rooms:         rooms,
		Info:          info,
		LinkLocations: make([]byte, linkLocSectionLen),
		LinkMap:       make([]byte, linkMapSectionLen),
		MapData:       make([]byte, mapSectionLen),
	}
	return lvl, nil
}

func importRoom(docRoom DocumentRoom) (*Room, error) {
	if len(docRoom.Tiles) != RoomHeight {
		return nil, apperrors.NewFormatError(
			fmt.Sprintf("room %d has %d tile rows (expected %d)",
				docRoom.RoomNumber, len(docRoom.Tiles), RoomHeight), nil)
	}

	tiles := make([][]Tile, 0, RoomHeight)
	for y, docRow := range docRoom.Tiles {
		if len(docRow) != RoomWidth {
			return nil, apperrors.NewFormatError(
				fmt.Sprintf("room %d row %d has %d tiles (expected %d)",
					docRoom.RoomNumber, y, len(docRow), RoomWidth), nil)
		}
		row := make([]Tile, 0, RoomWidth)
		for x, docTile := range docRow {
			t, err := importTile(docRoom.RoomNumber, x, y, docTile)
			if err != nil {
				return nil, err
			}
			row = append(row, t)
		}
		tiles = append(tiles, row)
	}

	return &Room{
		Number: docRoom.RoomNumber,
		Tiles:  tiles,
		Left:   docRoom.Connections.Left,
		Right:  docRoom.Connections.Right,
		Up:     docRoom.Connections.Up,
		Down:   docRoom.Connections.Down,
	}, nil
}

func importTile(roomNumber, x, y int, docTile DocumentTile) (Tile, error) {
	if docTile.Type != "" {
		tileType, ok := TileTypeFromName(docTile.Type)
		if !ok {
			return Tile{}, apperrors.NewFormatError(
				fmt.Sprintf("room %d tile (%d,%d) has unknown type %q",
					roomNumber, x, y, docTile.Type), nil)
		}
		return Tile{Type: tileType, Modifier: uint8(docTile.Modifier)}, nil
	}
	if docTile.TypeID < 0 || docTile.TypeID > int(TileTorchWithDebris) {
		return Tile{}, apperrors.NewFormatError(
			fmt.Sprintf("room %d tile (%d,%d) has type_id %d out of range",
				roomNumber, x, y, docTile.TypeID), nil)
	}
	return Tile{Type: TileType(docTile.TypeID), Modifier: uint8(docTile.Modifier)}, nil
}
