package main

import (
	"encoding/hex"
	"fmt"

	"github.com/Anna-Takahashi-Leo/MZI-IPR1/cripta"
	"github.com/jessevdk/go-flags"
)

const (
	defaultInputFile  = "input.txt"
	defaultOutputDir  = "."
	defaultDebugLevel = "info"

	desOutputFile  = "output-des.txt"
	gostOutputFile = "output-gost.txt"

	// The demo keys are the C string literals "HJfdbcj" and
	// "aePZDKRQ9VmjsDeDUkJ9ZzPsgfpyvbh" together with their NUL terminator.
	defaultDESKey  = "484a666462636a00"
	defaultGOSTKey = "6165505a444b525139566d6a7344654455" +
		"6b4a395a7a50736766707976626800"
)

type desConfig struct {
	Key string `long:"key" description:"DES key, 8 bytes in hex"`
}

type gostConfig struct {
	Key       string `long:"key" description:"GOST key, 32 bytes in hex"`
	KeyLayout string `long:"keylayout" description:"How the eight subkeys are cut from the key" choice:"compat" choice:"sliced"`
	Rotate    bool   `long:"rotate" description:"Rotate the substituted word left by 11 bits in every round"`
}

// config holds the command line options.
//
//nolint:lll
type config struct {
	InputFile  string `long:"input" short:"i" description:"File whose contents are encrypted"`
	OutputDir  string `long:"outdir" short:"o" description:"Directory that receives output-des.txt and output-gost.txt"`
	Parallel   bool   `long:"parallel" description:"Encrypt blocks concurrently"`
	Workers    int    `long:"workers" description:"Concurrent workers when --parallel is set; 0 uses one per CPU"`
	DebugLevel string `long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`

	DES  *desConfig  `group:"DES" namespace:"des"`
	GOST *gostConfig `group:"GOST" namespace:"gost"`
}

func defaultConfig() config {
	return config{
		InputFile:  defaultInputFile,
		OutputDir:  defaultOutputDir,
		DebugLevel: defaultDebugLevel,
		DES: &desConfig{
			Key: defaultDESKey,
		},
		GOST: &gostConfig{
			Key:       defaultGOSTKey,
			KeyLayout: cripta.KeyLayoutCompat.String(),
		},
	}
}

// loadConfig parses args over the defaults and validates the result.
func loadConfig(args []string) (*config, error) {
	cfg := defaultConfig()

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *config) validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("--workers must not be negative, got %d",
			c.Workers)
	}

	if _, err := c.desKey(); err != nil {
		return err
	}

	if _, err := c.gostKey(); err != nil {
		return err
	}

	_, err := c.gostOptions()

	return err
}

func decodeKey(name, s string, size int) ([]uint8, error) {
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s key hex: %w", name, err)
	}

	if len(key) != size {
		return nil, fmt.Errorf("%w: %s key must be %d bytes, got %d",
			cripta.ErrInvalidKeyLength, name, size, len(key))
	}

	return key, nil
}

func (c *config) desKey() ([]uint8, error) {
	return decodeKey("DES", c.DES.Key, cripta.DESKeySize)
}

func (c *config) gostKey() ([]uint8, error) {
	return decodeKey("GOST", c.GOST.Key, cripta.GOSTKeySize)
}

func (c *config) gostOptions() ([]cripta.GOSTOption, error) {
	layout, err := cripta.ParseKeyLayout(c.GOST.KeyLayout)
	if err != nil {
		return nil, err
	}

	opts := []cripta.GOSTOption{cripta.WithKeyLayout(layout)}
	if c.GOST.Rotate {
		opts = append(opts, cripta.WithRotation())
	}

	return opts, nil
}

func (c *config) contextOptions() []cripta.ContextOption {
	if !c.Parallel {
		return nil
	}

	return []cripta.ContextOption{cripta.WithParallelism(c.Workers)}
}
