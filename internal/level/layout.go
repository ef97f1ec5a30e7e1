package level

import (
	"fmt"

	"github.com/thesrcielos/PrinceLevels/internal/apperrors"
)

// Blueprint geometry. One level file is exactly 2304 bytes: two parallel
// 720-byte tile arrays followed by the link tables, the map block and the
// INFO metadata block.
const (
	RoomWidth    = 10
	RoomHeight   = 3
	RoomTiles    = RoomWidth * RoomHeight
	TotalRooms   = 24
	MaxGuards    = 24
	tileArrayLen = TotalRooms * RoomTiles

	typeSectionLen     = tileArrayLen
	modifierSectionLen = tileArrayLen
	linkLocSectionLen  = 256
	linkMapSectionLen  = 256
	mapSectionLen      = TotalRooms * 4
	infoSectionLen     = 256

	// BlueprintSize is the exact length of a level file.
	BlueprintSize = typeSectionLen + modifierSectionLen + linkLocSectionLen +
		linkMapSectionLen + mapSectionLen + infoSectionLen
)

type section struct {
	name   string
	offset int
	length int
}

// layoutTable lists the blueprint sections in file order. Offsets are
// derived once so a change to one section length shifts the rest.
var layoutTable = buildLayoutTable()

func buildLayoutTable() []section {
	lengths := []section{
		{name: "TYPE", length: typeSectionLen},
		{name: "MODIFIER", length: modifierSectionLen},
		{name: "LINKLOC", length: linkLocSectionLen},
		{name: "LINKMAP", length: linkMapSectionLen},
		{name: "MAP", length: mapSectionLen},
		{name: "INFO", length: infoSectionLen},
	}
	offset := 0
	for i := range lengths {
		lengths[i].offset = offset
		offset += lengths[i].length
	}
	return lengths
}

// Sections holds the six named byte ranges of a blueprint. Each slice
// aliases the input buffer; callers must not mutate it during decode.
type Sections struct {
	Type     []byte
	Modifier []byte
	LinkLoc  []byte
	LinkMap  []byte
	Map      []byte
	Info     []byte
}

// SliceBlueprint splits a raw level buffer into its sections. Any length
// other than BlueprintSize is rejected before parsing starts.
func SliceBlueprint(buf []byte) (*Sections, error) {
	if len(buf) != BlueprintSize {
		return nil, apperrors.NewFormatError(
			fmt.Sprintf("invalid blueprint size: %d (expected %d)", len(buf), BlueprintSize), nil)
	}

	s := &Sections{}
	for _, sec := range layoutTable {
		data := buf[sec.offset : sec.offset+sec.length]
		switch sec.name {
		case "TYPE":
			s.Type = data
		case "MODIFIER":
			s.Modifier = data
		case "LINKLOC":
			s.LinkLoc = data
		case "LINKMAP":
			s.LinkMap = data
		case "MAP":
			s.Map = data
		case "INFO":
			s.Info = data
		}
	}
	return s, nil
}
