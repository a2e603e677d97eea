package cripta

import (
	"encoding/binary"
	"fmt"
)

const (
	GOSTBlockSize = 8
	GOSTKeySize   = 32
	GOSTRounds    = 32
)

type gostOptions struct {
	layout KeyLayout
	rotate bool
}

// GOSTOption configures a GOSTCipher.
type GOSTOption func(*gostOptions)

// WithKeyLayout overrides the default KeyLayoutCompat subkey layout.
func WithKeyLayout(layout KeyLayout) GOSTOption {
	return func(o *gostOptions) {
		o.layout = layout
	}
}

// WithRotation enables the left rotation by 11 bits after substitution.
// Ciphertexts produced with it do not match the published vectors.
func WithRotation() GOSTOption {
	return func(o *gostOptions) {
		o.rotate = true
	}
}

type GOSTCipher struct {
	feistel *FeistelNetwork
	opts    gostOptions
}

func NewGOSTCipher(opts ...GOSTOption) (*GOSTCipher, error) {
	options := gostOptions{
		layout: KeyLayoutCompat,
	}
	for _, opt := range opts {
		opt(&options)
	}

	if !options.layout.valid() {
		return nil, fmt.Errorf("unsupported GOST key layout %d",
			options.layout)
	}

	feistel, err := NewFeistelNetwork(
		&GOSTKeySchedule{layout: options.layout},
		&GOSTRoundFunction{rotate: options.rotate},
		GOSTRounds,
	)
	if err != nil {
		return nil, err
	}

	return &GOSTCipher{
		feistel: feistel,
		opts:    options,
	}, nil
}

func (gost *GOSTCipher) SetKey(key []uint8) error {
	if len(key) != GOSTKeySize {
		return fmt.Errorf("%w: GOST key must be %d bytes, got %d",
			ErrInvalidKeyLength, GOSTKeySize, len(key))
	}

	if err := gost.feistel.SetKey(key); err != nil {
		return fmt.Errorf("failed to set key in feistel network: %w", err)
	}

	log.Debugf("GOST cipher keyed: layout=%v, rotate=%v",
		gost.opts.layout, gost.opts.rotate)

	return nil
}

func (gost *GOSTCipher) BlockSize() int {
	return GOSTBlockSize
}

// EncryptBlock encrypts exactly one 8-byte block. The block is read as a
// big-endian uint64 whose low word is N1 and high word is N2. N1 is the
// first operand to be updated. After the 32 rounds and the closing swap the
// result is written back big-endian in the same arrangement.
func (gost *GOSTCipher) EncryptBlock(plainBlock []uint8) ([]uint8, error) {
	if len(plainBlock) != GOSTBlockSize {
		return nil, fmt.Errorf("%w: GOST block must be %d bytes, got %d",
			ErrInvalidBlockSize, GOSTBlockSize, len(plainBlock))
	}

	n2 := binary.BigEndian.Uint32(plainBlock[0:4])
	n1 := binary.BigEndian.Uint32(plainBlock[4:8])

	low, high, err := gost.feistel.EncryptHalves(n1, n2)
	if err != nil {
		return nil, fmt.Errorf("feistel encryption failed: %w", err)
	}

	cipherBlock := make([]uint8, GOSTBlockSize)
	binary.BigEndian.PutUint32(cipherBlock[0:4], high)
	binary.BigEndian.PutUint32(cipherBlock[4:8], low)

	return cipherBlock, nil
}
