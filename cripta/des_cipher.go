package cripta

import (
	"encoding/binary"
	"fmt"
)

const (
	DESBlockSize = 8
	DESKeySize   = 8
	DESRounds    = 16
)

type DESCipher struct {
	feistel *FeistelNetwork
}

var initialPermutation = [64]int{
	58, 50, 42, 34, 26, 18, 10, 2,
	60, 52, 44, 36, 28, 20, 12, 4,
	62, 54, 46, 38, 30, 22, 14, 6,
	64, 56, 48, 40, 32, 24, 16, 8,
	57, 49, 41, 33, 25, 17, 9, 1,
	59, 51, 43, 35, 27, 19, 11, 3,
	61, 53, 45, 37, 29, 21, 13, 5,
	63, 55, 47, 39, 31, 23, 15, 7,
}

// finalPermutation is the inverse of initialPermutation.
var finalPermutation = [64]int{
	40, 8, 48, 16, 56, 24, 64, 32,
	39, 7, 47, 15, 55, 23, 63, 31,
	38, 6, 46, 14, 54, 22, 62, 30,
	37, 5, 45, 13, 53, 21, 61, 29,
	36, 4, 44, 12, 52, 20, 60, 28,
	35, 3, 43, 11, 51, 19, 59, 27,
	34, 2, 42, 10, 50, 18, 58, 26,
	33, 1, 41, 9, 49, 17, 57, 25,
}

func NewDESCipher() (*DESCipher, error) {
	feistel, err := NewFeistelNetwork(
		&DESKeySchedule{},
		&DESRoundFunction{},
		DESRounds,
	)
	if err != nil {
		return nil, err
	}

	return &DESCipher{
		feistel: feistel,
	}, nil
}

func (des *DESCipher) SetKey(key []uint8) error {
	if len(key) != DESKeySize {
		return fmt.Errorf("%w: DES key must be %d bytes, got %d",
			ErrInvalidKeyLength, DESKeySize, len(key))
	}

	if err := des.feistel.SetKey(key); err != nil {
		return fmt.Errorf("failed to set key in feistel network: %w", err)
	}

	return nil
}

func (des *DESCipher) BlockSize() int {
	return DESBlockSize
}

// EncryptBlock encrypts exactly one 8-byte block. Bytes are packed
// most-significant first, so the left half after IP is the high 32 bits.
func (des *DESCipher) EncryptBlock(plainBlock []uint8) ([]uint8, error) {
	if len(plainBlock) != DESBlockSize {
		return nil, fmt.Errorf("%w: DES block must be %d bytes, got %d",
			ErrInvalidBlockSize, DESBlockSize, len(plainBlock))
	}

	block := binary.BigEndian.Uint64(plainBlock)
	permuted := PermuteBits(block, 64, initialPermutation[:])

	left, right, err := des.feistel.EncryptHalves(
		uint32(permuted>>32), uint32(permuted),
	)
	if err != nil {
		return nil, fmt.Errorf("feistel encryption failed: %w", err)
	}

	preOutput := uint64(left)<<32 | uint64(right)

	cipherBlock := make([]uint8, DESBlockSize)
	binary.BigEndian.PutUint64(
		cipherBlock, PermuteBits(preOutput, 64, finalPermutation[:]),
	)

	return cipherBlock, nil
}
