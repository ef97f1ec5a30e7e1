package level

// TileType identifies the kind of a tile. Only the low 5 bits of the
// stored type byte are significant, so the domain is exactly 0x00-0x1F.
type TileType uint8

const (
	TileEmpty           TileType = 0x00
	TileFloor           TileType = 0x01
	TileSpike           TileType = 0x02
	TilePillar          TileType = 0x03
	TileGate            TileType = 0x04
	TileStuckButton     TileType = 0x05
	TileDropButton      TileType = 0x06
	TileTapestry        TileType = 0x07
	TileTapestryTop     TileType = 0x08
	TilePotion          TileType = 0x09
	TileLooseFloor      TileType = 0x0A
	TileGateTop         TileType = 0x0B
	TileMirror          TileType = 0x0C
	TileDebris          TileType = 0x0D
	TileRaiseButton     TileType = 0x0E
	TileExitLeft        TileType = 0x0F
	TileExitRight       TileType = 0x10
	TileChomper         TileType = 0x11
	TileTorch           TileType = 0x12
	TileWall            TileType = 0x13
	TileSkeleton        TileType = 0x14
	TileSword           TileType = 0x15
	TileBalconyLeft     TileType = 0x16
	TileBalconyRight    TileType = 0x17
	TileLatticePillar   TileType = 0x18
	TileLatticeLeft     TileType = 0x19
	TileLatticeRight    TileType = 0x1A
	TileBigPillarBottom TileType = 0x1B
	TileBigPillarTop    TileType = 0x1C
	TileSmallPillar     TileType = 0x1D
	TileLatticeDown     TileType = 0x1E
	TileTorchWithDebris TileType = 0x1F
)

// tileTypeMask keeps the low 5 bits of a raw type byte. The upper 3 bits
// are discarded on decode and always written back as zero; their meaning
// in the original data is undetermined.
const tileTypeMask = 0x1F

var tileTypeNames = [32]string{
	"EMPTY", "FLOOR", "SPIKE", "PILLAR", "GATE", "STUCK_BUTTON",
	"DROP_BUTTON", "TAPESTRY", "TAPESTRY_TOP", "POTION", "LOOSE_FLOOR",
	"GATE_TOP", "MIRROR", "DEBRIS", "RAISE_BUTTON", "EXIT_LEFT",
	"EXIT_RIGHT", "CHOMPER", "TORCH", "WALL", "SKELETON", "SWORD",
	"BALCONY_LEFT", "BALCONY_RIGHT", "LATTICE_PILLAR", "LATTICE_LEFT",
	"LATTICE_RIGHT", "BIG_PILLAR_BOTTOM", "BIG_PILLAR_TOP", "SMALL_PILLAR",
	"LATTICE_DOWN", "TORCH_WITH_DEBRIS",
}

func (t TileType) String() string {
	return tileTypeNames[t&tileTypeMask]
}

// TileTypeFromName resolves a tile type by its document name.
func TileTypeFromName(name string) (TileType, bool) {
	for i, n := range tileTypeNames {
		if n == name {
			return TileType(i), true
		}
	}
	return TileEmpty, false
}

// IsSolid reports whether the tile blocks movement.
func (t TileType) IsSolid() bool {
	switch t {
	case TileWall, TilePillar, TileBigPillarBottom, TileBigPillarTop,
		TileSmallPillar, TileGate, TileGateTop:
		return true
	}
	return false
}

// IsDangerous reports whether the tile can harm the player.
func (t TileType) IsDangerous() bool {
	return t == TileSpike || t == TileChomper
}

// IsFloor reports whether the tile acts as floor.
func (t TileType) IsFloor() bool {
	switch t {
	case TileFloor, TileLooseFloor, TileRaiseButton, TileDropButton,
		TileStuckButton:
		return true
	}
	return false
}

// Tile is one cell of a room: a type plus a raw modifier byte. The
// modifier is kept verbatim; its meaning depends on the tile type.
type Tile struct {
	Type     TileType `json:"type_id"`
	Modifier uint8    `json:"modifier"`
}

// DecodeTile builds a Tile from its two stored bytes. The type byte is
// masked to 5 bits, so the result is always in the enumerated domain.
func DecodeTile(typeByte, modByte uint8) Tile {
	return Tile{
		Type:     TileType(typeByte & tileTypeMask),
		Modifier: modByte,
	}
}

// EncodeTile is the inverse of DecodeTile. The upper 3 bits of the type
// byte come back as zero, so encode(decode(b)) == b&0x1F, not b.
func EncodeTile(t Tile) (typeByte, modByte uint8) {
	return uint8(t.Type) & tileTypeMask, t.Modifier
}
