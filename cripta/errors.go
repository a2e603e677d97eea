package cripta

import "errors"

var (
	// ErrInvalidKeyLength is returned when a secret is not exactly the
	// length the cipher consumes: 8 bytes for DES, 32 bytes for GOST.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidBlockSize is returned when a single-block operation is
	// handed a buffer that is not exactly one block long.
	ErrInvalidBlockSize = errors.New("invalid block size")

	// ErrKeyNotSet is returned when a block is encrypted before SetKey.
	ErrKeyNotSet = errors.New("key not set")
)
