package level

// INFO block layout. Scalar fields are single bytes at fixed offsets;
// the guard data is six parallel 24-byte arrays indexed by slot.
type infoField struct {
	name   string
	offset int
	count  int
}

var infoLayout = struct {
	kidScreen   infoField
	kidBlock    infoField
	kidFace     infoField
	swordScreen infoField
	swordBlock  infoField

	guardBlock  infoField
	guardFace   infoField
	guardX      infoField
	guardSeqLow infoField
	guardProg   infoField
	guardSeqHi  infoField
}{
	kidScreen:   infoField{"kid_start_screen", 64, 1},
	kidBlock:    infoField{"kid_start_block", 65, 1},
	kidFace:     infoField{"kid_start_face", 66, 1},
	swordScreen: infoField{"sword_start_screen", 68, 1},
	swordBlock:  infoField{"sword_start_block", 69, 1},

	guardBlock:  infoField{"guard_block", 71, MaxGuards},
	guardFace:   infoField{"guard_face", 95, MaxGuards},
	guardX:      infoField{"guard_x", 119, MaxGuards},
	guardSeqLow: infoField{"guard_seq_low", 143, MaxGuards},
	guardProg:   infoField{"guard_prog", 167, MaxGuards},
	guardSeqHi:  infoField{"guard_seq_high", 191, MaxGuards},
}

// ParseInfo decodes the 256-byte INFO section. Every byte value is a
// valid field value, so parsing cannot fail; the guard list always has
// exactly MaxGuards entries in slot order, inactive slots included.
func ParseInfo(info []byte) LevelInfo {
	li := LevelInfo{
		KidStartScreen:   info[infoLayout.kidScreen.offset],
		KidStartBlock:    info[infoLayout.kidBlock.offset],
		KidStartFace:     info[infoLayout.kidFace.offset],
		SwordStartScreen: info[infoLayout.swordScreen.offset],
		SwordStartBlock:  info[infoLayout.swordBlock.offset],
		Guards:           make([]GuardSlot, MaxGuards),
	}

	for i := 0; i < MaxGuards; i++ {
		li.Guards[i] = GuardSlot{
			Block:   info[infoLayout.guardBlock.offset+i],
			Face:    info[infoLayout.guardFace.offset+i],
			X:       info[infoLayout.guardX.offset+i],
			SeqLow:  info[infoLayout.guardSeqLow.offset+i],
			SeqHigh: info[infoLayout.guardSeqHi.offset+i],
			Prog:    info[infoLayout.guardProg.offset+i],
		}
	}
	return li
}

// EncodeInfo writes the metadata back into a 256-byte INFO section.
// Bytes outside the known fields stay zero unless prev is given, in
// which case they are copied from it for fidelity.
func EncodeInfo(li LevelInfo, prev []byte) []byte {
	info := make([]byte, infoSectionLen)
	if len(prev) == infoSectionLen {
		copy(info, prev)
	}

	info[infoLayout.kidScreen.offset] = li.KidStartScreen
	info[infoLayout.kidBlock.offset] = li.KidStartBlock
	info[infoLayout.kidFace.offset] = li.KidStartFace
	info[infoLayout.swordScreen.offset] = li.SwordStartScreen
	info[infoLayout.swordBlock.offset] = li.SwordStartBlock

	for i := 0; i < MaxGuards && i < len(li.Guards); i++ {
		g := li.Guards[i]
		info[infoLayout.guardBlock.offset+i] = g.Block
		info[infoLayout.guardFace.offset+i] = g.Face
		info[infoLayout.guardX.offset+i] = g.X
		info[infoLayout.guardSeqLow.offset+i] = g.SeqLow
		info[infoLayout.guardSeqHi.offset+i] = g.SeqHigh
		info[infoLayout.guardProg.offset+i] = g.Prog
	}
	return info
}
