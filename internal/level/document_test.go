package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thesrcielos/PrinceLevels/internal/apperrors"
)

func sampleLevel(t *testing.T) *Level {
	t.Helper()

	buf := make([]byte, BlueprintSize)
	for i := 0; i < 720; i++ {
		buf[i] = uint8((i * 7) & 0x1F)
		buf[720+i] = uint8(i)
	}
	info := buf[2048:]
	info[64], info[65], info[66] = 2, 15, 1
	info[68], info[69] = 3, 9
	for i := 0; i < MaxGuards; i++ {
		info[71+i] = 0xFF
	}
	// two guards, slots 0 and 13
	info[71+0], info[95+0], info[119+0] = 5, 1, 64
	info[143+0], info[167+0], info[191+0] = 0x10, 1, 0x01
	info[71+13], info[95+13], info[119+13] = 20, 0, 128
	info[143+13], info[167+13], info[191+13] = 0xFF, 3, 0x02

	lvl, err := ParseBlueprint(3, buf, nil)
	assert.NoError(t, err)
	return lvl
}

func TestExportDocumentEmitsAllGuardSlots(t *testing.T) {
	lvl := sampleLevel(t)

	doc := ExportDocument(lvl)
	assert.Equal(t, 3, doc.LevelNumber)
	assert.Len(t, doc.Info.Guards, MaxGuards)
	assert.Len(t, doc.Rooms, TotalRooms)

	assert.True(t, doc.Info.Guards[0].Active)
	assert.Equal(t, 0x0110, doc.Info.Guards[0].Sequence)
	assert.True(t, doc.Info.Guards[13].Active)
	assert.Equal(t, 0x02FF, doc.Info.Guards[13].Sequence)
	assert.False(t, doc.Info.Guards[1].Active)

	tile := doc.Rooms[0].Tiles[0][0]
	assert.Equal(t, TileType(0).String(), tile.Type)
	assert.Equal(t, 0, tile.TypeID)
}

func TestDocumentRoundTripPreservesSlotIdentity(t *testing.T) {
	lvl := sampleLevel(t)

	restored, err := ImportDocument(ExportDocument(lvl))
	assert.NoError(t, err)

	assert.Equal(t, lvl.Number, restored.Number)
	assert.Equal(t, lvl.Info.KidStartScreen, restored.Info.KidStartScreen)
	assert.Equal(t, lvl.Info.SwordStartBlock, restored.Info.SwordStartBlock)

	assert.Len(t, restored.Info.Guards, MaxGuards)
	for i, g := range lvl.Info.Guards {
		assert.Equal(t, g.Active(), restored.Info.Guards[i].Active(), "slot %d", i)
		if g.Active() {
			assert.Equal(t, g.Block, restored.Info.Guards[i].Block, "slot %d", i)
			assert.Equal(t, g.Sequence(), restored.Info.Guards[i].Sequence(), "slot %d", i)
			assert.Equal(t, g.Prog, restored.Info.Guards[i].Prog, "slot %d", i)
		}
	}

	for r, room := range lvl.Rooms {
		for y, row := range room.Tiles {
			for x, tile := range row {
				assert.Equal(t, tile, restored.Rooms[r].Tiles[y][x],
					"room %d tile (%d,%d)", r, x, y)
			}
		}
	}

	for r, room := range lvl.Rooms {
		assert.Equal(t, room.Left, restored.Rooms[r].Left)
		assert.Equal(t, room.Down, restored.Rooms[r].Down)
	}
}

func TestImportDocumentPadsLegacyGuardList(t *testing.T) {
	doc := ExportDocument(sampleLevel(t))
	// Legacy documents carried active guards only.
	active := []DocumentGuard{}
	for _, g := range doc.Info.Guards {
		if g.Active {
			active = append(active, g)
		}
	}
	doc.Info.Guards = active

	restored, err := ImportDocument(doc)
	assert.NoError(t, err)
	assert.Len(t, restored.Info.Guards, MaxGuards)
	assert.Equal(t, 2, restored.Info.ActiveGuards())
	for i := 2; i < MaxGuards; i++ {
		assert.False(t, restored.Info.Guards[i].Active())
		assert.Equal(t, uint8(0xFF), restored.Info.Guards[i].Block)
	}
}

func TestImportDocumentRejectsWrongRoomCount(t *testing.T) {
	doc := ExportDocument(sampleLevel(t))
	doc.Rooms = doc.Rooms[:23]

	_, err := ImportDocument(doc)
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindFormat))
}

func TestImportDocumentRejectsUnknownTileName(t *testing.T) {
	doc := ExportDocument(sampleLevel(t))
	doc.Rooms[4].Tiles[1][2].Type = "QUICKSAND"

	_, err := ImportDocument(doc)
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindFormat))
}

func TestImportDocumentFallsBackToTypeID(t *testing.T) {
	doc := ExportDocument(sampleLevel(t))
	doc.Rooms[4].Tiles[1][2].Type = ""
	doc.Rooms[4].Tiles[1][2].TypeID = int(TileChomper)

	restored, err := ImportDocument(doc)
	assert.NoError(t, err)
	assert.Equal(t, TileChomper, restored.Rooms[4].Tiles[1][2].Type)
}

func TestImportDocumentRejectsShortTileRow(t *testing.T) {
	doc := ExportDocument(sampleLevel(t))
	doc.Rooms[7].Tiles[2] = doc.Rooms[7].Tiles[2][:9]

	_, err := ImportDocument(doc)
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindFormat))
}
