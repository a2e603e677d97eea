package cripta

import "fmt"

// DESEncrypt encrypts message with DES in ECB mode under an 8-byte key.
// The output is ceil(len(message)/8)*8 bytes long; a short final block is
// zero-filled. A key of any other length fails with ErrInvalidKeyLength.
func DESEncrypt(key, message []uint8) ([]uint8, error) {
	cipher, err := NewDESCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to create DES cipher: %w", err)
	}

	return encryptECB(cipher, key, message)
}

// GOSTEncrypt encrypts message with the GOST-family cipher in ECB mode under
// a 32-byte key. Without options it matches the published vectors: subkeys
// use KeyLayoutCompat and the round function has no rotation.
func GOSTEncrypt(key, message []uint8, opts ...GOSTOption) ([]uint8, error) {
	cipher, err := NewGOSTCipher(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GOST cipher: %w", err)
	}

	return encryptECB(cipher, key, message)
}

func encryptECB(cipher ISymmetricCipher, key, message []uint8) ([]uint8,
	error) {

	ctx, err := NewCipherContext(cipher, key)
	if err != nil {
		return nil, err
	}

	return ctx.Encrypt(message)
}
