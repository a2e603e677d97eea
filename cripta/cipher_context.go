package cripta

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// CipherContext drives an ISymmetricCipher in electronic-codebook mode.
//
// A trailing partial block is filled with zero bytes and no length marker
// is written, so the ciphertext of a message is identical to that of the
// same message extended with zeros up to the next block boundary. A decrypt
// counterpart could not tell that padding apart from genuine trailing zero
// bytes.
type CipherContext struct {
	cipher    ISymmetricCipher
	blockSize int
	parallel  bool
	workers   int
}

// ContextOption configures a CipherContext.
type ContextOption func(*CipherContext)

// WithParallelism encrypts blocks on up to workers goroutines. A value
// below one uses one worker per CPU. Output order does not depend on it.
func WithParallelism(workers int) ContextOption {
	return func(ctx *CipherContext) {
		ctx.parallel = true
		ctx.workers = workers
	}
}

// NewCipherContext keys cipher with key and returns a context ready to
// encrypt. The key is validated before the first table lookup.
func NewCipherContext(
	cipher ISymmetricCipher,
	key []uint8,
	opts ...ContextOption,
) (*CipherContext, error) {

	if cipher == nil {
		return nil, fmt.Errorf("cipher implementation cannot be nil")
	}

	ctx := &CipherContext{
		cipher:    cipher,
		blockSize: cipher.BlockSize(),
	}
	for _, opt := range opts {
		opt(ctx)
	}

	if ctx.blockSize <= 0 {
		return nil, fmt.Errorf("cipher block size must be positive, got %d",
			ctx.blockSize)
	}

	if ctx.parallel && ctx.workers < 1 {
		ctx.workers = runtime.NumCPU()
	}

	if err := ctx.cipher.SetKey(key); err != nil {
		return nil, fmt.Errorf("failed to set key: %w", err)
	}

	return ctx, nil
}

// NumBlocks returns how many blocks of blockSize bytes a message of length
// bytes occupies.
func NumBlocks(length, blockSize int) int {
	return (length + blockSize - 1) / blockSize
}

func (ctx *CipherContext) GetBlockSize() int {
	return ctx.blockSize
}

// encryptBlockAt encrypts block i of plaintext into the matching slot of
// ciphertext, zero-filling the block if plaintext ends inside it.
func (ctx *CipherContext) encryptBlockAt(plaintext, ciphertext []uint8,
	i int) error {

	start := i * ctx.blockSize
	end := min(start+ctx.blockSize, len(plaintext))

	block := make([]uint8, ctx.blockSize)
	copy(block, plaintext[start:end])

	encryptedBlock, err := ctx.cipher.EncryptBlock(block)
	if err != nil {
		return fmt.Errorf("encryption failed for block %d: %w", i, err)
	}

	copy(ciphertext[start:], encryptedBlock)

	return nil
}

func (ctx *CipherContext) encryptECBParallel(plaintext, ciphertext []uint8,
	numBlocks int) error {

	workers := min(ctx.workers, numBlocks)
	blocksPerWorker := (numBlocks + workers - 1) / workers

	log.Debugf("Encrypting %d blocks on %d workers", numBlocks, workers)

	var g errgroup.Group
	g.SetLimit(workers)

	for start := 0; start < numBlocks; start += blocksPerWorker {
		start := start
		end := min(start+blocksPerWorker, numBlocks)

		g.Go(func() error {
			for i := start; i < end; i++ {
				err := ctx.encryptBlockAt(plaintext, ciphertext, i)
				if err != nil {
					return err
				}
			}

			return nil
		})
	}

	return g.Wait()
}

// Encrypt returns the ECB encryption of plaintext. The result is always
// NumBlocks(len(plaintext))*blockSize bytes long. An empty plaintext yields
// an empty, non-nil ciphertext.
func (ctx *CipherContext) Encrypt(plaintext []uint8) ([]uint8, error) {
	numBlocks := NumBlocks(len(plaintext), ctx.blockSize)
	ciphertext := make([]uint8, numBlocks*ctx.blockSize)

	if ctx.parallel && numBlocks > 1 {
		err := ctx.encryptECBParallel(plaintext, ciphertext, numBlocks)
		if err != nil {
			return nil, err
		}

		return ciphertext, nil
	}

	log.Tracef("Encrypting %d blocks sequentially", numBlocks)

	for i := 0; i < numBlocks; i++ {
		if err := ctx.encryptBlockAt(plaintext, ciphertext, i); err != nil {
			return nil, err
		}
	}

	return ciphertext, nil
}

// EncryptFile encrypts the contents of inputPath and writes the raw
// ciphertext to outputPath.
func (ctx *CipherContext) EncryptFile(inputPath string, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	encrypted, err := ctx.Encrypt(data)
	if err != nil {
		return fmt.Errorf("encryption failed: %w", err)
	}

	err = os.WriteFile(outputPath, encrypted, 0644)
	if err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}
