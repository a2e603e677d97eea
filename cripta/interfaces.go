package cripta

// IKeySchedule expands a master key into the ordered round keys consumed by
// an IRoundFunction. Entry r is used in round r.
type IKeySchedule interface {
	GenerateRoundKeys(masterKey []uint8) ([]uint64, error)
}

// IRoundFunction is the keyed F function of a Feistel network over 32-bit
// half-blocks. Round keys are right-aligned in a uint64 (48 bits for DES,
// 32 bits for GOST).
type IRoundFunction interface {
	Apply(half uint32, roundKey uint64) uint32
}

// ISymmetricCipher is a keyed block transform driven by CipherContext.
// EncryptBlock must be safe for concurrent use once SetKey has returned.
type ISymmetricCipher interface {
	SetKey(key []uint8) error
	BlockSize() int
	EncryptBlock(plainBlock []uint8) ([]uint8, error)
}
