package level

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thesrcielos/PrinceLevels/internal/apperrors"
)

func newTestLoader(t *testing.T) *FileLoader {
	t.Helper()
	return NewFileLoader(
		filepath.Join(t.TempDir(), "bin"),
		filepath.Join(t.TempDir(), "json"),
	)
}

func writeBinaryLevel(t *testing.T, loader *FileLoader, n int, buf []byte) {
	t.Helper()
	assert.NoError(t, os.MkdirAll(loader.LevelsDir, 0o755))
	assert.NoError(t, os.WriteFile(loader.BinaryPath(n), buf, 0o644))
}

func TestLoadMissingLevelIsNotFound(t *testing.T) {
	loader := newTestLoader(t)

	_, err := loader.Load(1)
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestLoadRejectsTruncatedBinary(t *testing.T) {
	loader := newTestLoader(t)
	writeBinaryLevel(t, loader, 1, make([]byte, BlueprintSize-1))

	_, err := loader.Load(1)
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindFormat))
}

func TestLoadBinaryLevel(t *testing.T) {
	loader := newTestLoader(t)
	buf := make([]byte, BlueprintSize)
	buf[0] = uint8(TileWall)
	buf[2048+64] = 5
	writeBinaryLevel(t, loader, 7, buf)

	lvl, err := loader.Load(7)
	assert.NoError(t, err)
	assert.Equal(t, 7, lvl.Number)
	assert.Equal(t, TileWall, lvl.Rooms[0].Tiles[0][0].Type)
	assert.Equal(t, uint8(5), lvl.Info.KidStartScreen)
}

func TestLoadPrefersDocumentOverBinary(t *testing.T) {
	loader := newTestLoader(t)

	// binary says WALL at (0,0)
	buf := make([]byte, BlueprintSize)
	buf[0] = uint8(TileWall)
	writeBinaryLevel(t, loader, 2, buf)

	// document says CHOMPER at (0,0)
	lvl, err := ParseBlueprint(2, buf, nil)
	assert.NoError(t, err)
	lvl.Rooms[0].Tiles[0][0] = Tile{Type: TileChomper}
	assert.NoError(t, loader.Export(lvl, loader.DocumentPath(2)))

	loaded, err := loader.Load(2)
	assert.NoError(t, err)
	assert.Equal(t, TileChomper, loaded.Rooms[0].Tiles[0][0].Type)
}

func TestLoadRejectsMalformedDocument(t *testing.T) {
	loader := newTestLoader(t)
	assert.NoError(t, os.MkdirAll(loader.DocsDir, 0o755))
	assert.NoError(t, os.WriteFile(loader.DocumentPath(3), []byte("{not json"), 0o644))

	_, err := loader.Load(3)
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindFormat))
}

func TestExportCreatesDirectories(t *testing.T) {
	loader := newTestLoader(t)
	lvl, err := ParseBlueprint(0, make([]byte, BlueprintSize), nil)
	assert.NoError(t, err)

	path := filepath.Join(loader.DocsDir, "nested", "level_00.json")
	assert.NoError(t, loader.Export(lvl, path))

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestExportedDocumentReimportsEqual(t *testing.T) {
	loader := newTestLoader(t)

	buf := make([]byte, BlueprintSize)
	for i := 0; i < 720; i++ {
		buf[i] = uint8(i) & 0x1F
		buf[720+i] = uint8(255 - i%256)
	}
	writeBinaryLevel(t, loader, 5, buf)

	original, err := loader.Load(5)
	assert.NoError(t, err)
	assert.NoError(t, loader.Export(original, loader.DocumentPath(5)))

	reloaded, err := loader.Load(5)
	assert.NoError(t, err)
	for r := range original.Rooms {
		assert.Equal(t, original.Rooms[r].Tiles, reloaded.Rooms[r].Tiles, "room %d", r)
	}
	assert.Equal(t, original.Info.Guards, reloaded.Info.Guards)
}
