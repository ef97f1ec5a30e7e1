package level

// ParseBlueprint decodes a raw 2304-byte level buffer into the full
// structural model. The buffer is not retained; all returned data is
// independently owned by the Level.
func ParseBlueprint(levelNumber int, buf []byte, resolver AdjacencyResolver) (*Level, error) {
	sections, err := SliceBlueprint(buf)
	if err != nil {
		return nil, err
	}
	if resolver == nil {
		resolver = GridAdjacency{}
	}

	rooms := AssembleRooms(sections.Type, sections.Modifier,
		sections.LinkLoc, sections.LinkMap, resolver)
	info := ParseInfo(sections.Info)

	lvl := &Level{
		Number:        levelNumber,
		Rooms:         rooms,
		Info:          info,
		LinkLocations: append([]byte(nil), sections.LinkLoc...),
		LinkMap:       append([]byte(nil), sections.LinkMap...),
		MapData:       append([]byte(nil), sections.Map...),
	}
	return lvl, nil
}

// EncodeBlueprint writes a Level back into wire form. The result is
// byte-faithful to the original buffer except for the tile type high
// bits, which decode discards, and INFO bytes outside the known fields,
// which come back as zero.
func EncodeBlueprint(lvl *Level) []byte {
	buf := make([]byte, BlueprintSize)
	sections, _ := SliceBlueprint(buf)

	for r, room := range lvl.Rooms {
		if r >= TotalRooms || room == nil {
			break
		}
		base := r * RoomTiles
		for y := 0; y < RoomHeight && y < len(room.Tiles); y++ {
			for x := 0; x < RoomWidth && x < len(room.Tiles[y]); x++ {
				typeByte, modByte := EncodeTile(room.Tiles[y][x])
				i := base + y*RoomWidth + x
				sections.Type[i] = typeByte
				sections.Modifier[i] = modByte
			}
		}
	}

	copy(sections.LinkLoc, lvl.LinkLocations)
	copy(sections.LinkMap, lvl.LinkMap)
	copy(sections.Map, lvl.MapData)
	copy(sections.Info, EncodeInfo(lvl.Info, nil))

	return buf
}
