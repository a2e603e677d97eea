package cripta

import (
	"encoding/binary"
	"fmt"
)

type DESKeySchedule struct{}

// pc1 selects the 56 key bits that survive the parity strip.
var pc1 = [56]int{
	57, 49, 41, 33, 25, 17, 9,
	1, 58, 50, 42, 34, 26, 18,
	10, 2, 59, 51, 43, 35, 27,
	19, 11, 3, 60, 52, 44, 36,
	63, 55, 47, 39, 31, 23, 15,
	7, 62, 54, 46, 38, 30, 22,
	14, 6, 61, 53, 45, 37, 29,
	21, 13, 5, 28, 20, 12, 4,
}

// pc2 selects the 48 subkey bits from the rotated C||D register.
var pc2 = [48]int{
	14, 17, 11, 24, 1, 5,
	3, 28, 15, 6, 21, 10,
	23, 19, 12, 4, 26, 8,
	16, 7, 27, 20, 13, 2,
	41, 52, 31, 37, 47, 55,
	30, 40, 51, 45, 33, 48,
	44, 49, 39, 56, 34, 53,
	46, 42, 50, 36, 29, 32,
}

var shiftSchedule = [DESRounds]int{
	1, 1, 2, 2, 2, 2, 2, 2,
	1, 2, 2, 2, 2, 2, 2, 1,
}

// GenerateRoundKeys returns the 16 48-bit DES subkeys of masterKey, index 0
// being the key of round 1.
func (dks *DESKeySchedule) GenerateRoundKeys(masterKey []uint8) ([]uint64, error) {
	if len(masterKey) != DESKeySize {
		return nil, fmt.Errorf("%w: DES key must be %d bytes, got %d",
			ErrInvalidKeyLength, DESKeySize, len(masterKey))
	}

	userKey := binary.BigEndian.Uint64(masterKey)
	permutedKey := PermuteBits(userKey, 64, pc1[:])

	c := uint32(permutedKey>>28) & mask28
	d := uint32(permutedKey) & mask28

	roundKeys := make([]uint64, 0, DESRounds)
	for round := 0; round < DESRounds; round++ {
		c = rotateLeft28(c, shiftSchedule[round])
		d = rotateLeft28(d, shiftSchedule[round])

		cd := uint64(c)<<28 | uint64(d)
		roundKeys = append(roundKeys, PermuteBits(cd, 56, pc2[:]))
	}

	return roundKeys, nil
}
