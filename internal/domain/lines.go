package domain

// FullBoard has all nine cell bits set.
const FullBoard uint16 = 0b111111111

// Winning lines, bit i = cell i (A1 is bit 0, C3 is bit 8).
const (
	lineRank1 uint16 = 0b000000111
	lineRank2 uint16 = 0b000111000
	lineRank3 uint16 = 0b111000000
	lineFileA uint16 = 0b001001001
	lineFileB uint16 = 0b010010010
	lineFileC uint16 = 0b100100100
	lineDiag1 uint16 = 0b100010001 // A1-B2-C3
	lineDiag2 uint16 = 0b001010100 // C1-B2-A3
)

var winningLines = [8]uint16{
	lineRank1, lineRank2, lineRank3,
	lineFileA, lineFileB, lineFileC,
	lineDiag1, lineDiag2,
}

// IsWon reports whether a single side's occupancy contains a full line.
func IsWon(occupied uint16) bool {
	for _, ln := range winningLines {
		if occupied&ln == ln {
			return true
		}
	}
	return false
}
