package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Anna-Takahashi-Leo/MZI-IPR1/cripta"
	"github.com/btcsuite/btclog/v2"
	"github.com/jessevdk/go-flags"
)

/*
Encrypt input.txt with the demo keys, writing output-des.txt and
output-gost.txt into the current directory:
go run .

Use another input, output directory and keys:
go run . -i message.txt -o out --des.key=0123456789abcdef

GOST with the textbook round function and all 32 key bytes:
go run . --gost.keylayout=sliced --gost.rotate

Concurrent block encryption:
go run . --parallel --workers=4
*/

// mainLog is the logger of the command itself.
var mainLog = btclog.Disabled

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		// flags.Default already printed parser errors and help text.
		if e, ok := err.(*flags.Error); ok {
			if e.Type == flags.ErrHelp {
				os.Exit(0)
			}
		} else {
			_, _ = fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	if err := setupLogging(os.Stderr, cfg.DebugLevel); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(cfg, os.Stdout); err != nil {
		mainLog.Errorf("Encryption failed: %v", err)
		os.Exit(1)
	}
}

// setupLogging routes the command and the cripta package to one console
// handler at the requested level.
func setupLogging(w io.Writer, level string) error {
	logLevel, ok := btclog.LevelFromString(level)
	if !ok {
		return fmt.Errorf("invalid debug level %q", level)
	}

	handler := btclog.NewDefaultHandler(w)

	mainLog = btclog.NewSLogger(handler.SubSystem("MAIN"))
	mainLog.SetLevel(logLevel)

	criptaLog := btclog.NewSLogger(handler.SubSystem(cripta.Subsystem))
	criptaLog.SetLevel(logLevel)
	cripta.UseLogger(criptaLog)

	return nil
}

// run reads the input file, encrypts it with both ciphers, writes the raw
// ciphertexts and prints them in hex.
func run(cfg *config, out io.Writer) error {
	data, err := os.ReadFile(cfg.InputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Fprintf(out, "Input:\n%s\n\n", data)

	desKey, err := cfg.desKey()
	if err != nil {
		return err
	}
	desCipher, err := cripta.NewDESCipher()
	if err != nil {
		return fmt.Errorf("failed to create DES cipher: %w", err)
	}

	err = encryptAndReport(
		out, "DES", desCipher, desKey, data,
		filepath.Join(cfg.OutputDir, desOutputFile),
		cfg.contextOptions(),
	)
	if err != nil {
		return err
	}

	gostKey, err := cfg.gostKey()
	if err != nil {
		return err
	}
	gostOpts, err := cfg.gostOptions()
	if err != nil {
		return err
	}
	gostCipher, err := cripta.NewGOSTCipher(gostOpts...)
	if err != nil {
		return fmt.Errorf("failed to create GOST cipher: %w", err)
	}

	return encryptAndReport(
		out, "GOST", gostCipher, gostKey, data,
		filepath.Join(cfg.OutputDir, gostOutputFile),
		cfg.contextOptions(),
	)
}

func encryptAndReport(out io.Writer, name string,
	cipher cripta.ISymmetricCipher, key, data []uint8, outputPath string,
	opts []cripta.ContextOption) error {

	ctx, err := cripta.NewCipherContext(cipher, key, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	start := time.Now()
	encrypted, err := ctx.Encrypt(data)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	mainLog.Debugf("%s encrypted %d bytes into %d in %v", name, len(data),
		len(encrypted), time.Since(start))

	if err := os.WriteFile(outputPath, encrypted, 0644); err != nil {
		return fmt.Errorf("%s: failed to write output file: %w", name,
			err)
	}

	mainLog.Infof("Wrote %s ciphertext to %s", name, outputPath)

	fmt.Fprintf(out, "%s (hex):\n%s\n\n", name, hex.EncodeToString(encrypted))

	return nil
}
