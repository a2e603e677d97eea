package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/Anna-Takahashi-Leo/MZI-IPR1/cripta"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(nil)
	require.NoError(t, err)

	require.Equal(t, defaultInputFile, cfg.InputFile)
	require.Equal(t, defaultOutputDir, cfg.OutputDir)
	require.False(t, cfg.Parallel)
	require.Nil(t, cfg.contextOptions())

	desKey, err := cfg.desKey()
	require.NoError(t, err)
	require.Equal(t, []uint8("HJfdbcj\x00"), desKey)

	gostKey, err := cfg.gostKey()
	require.NoError(t, err)
	require.Equal(t, []uint8("aePZDKRQ9VmjsDeDUkJ9ZzPsgfpyvbh\x00"), gostKey)

	gostOpts, err := cfg.gostOptions()
	require.NoError(t, err)
	require.Len(t, gostOpts, 1)
}

func TestLoadConfigFlags(t *testing.T) {
	cfg, err := loadConfig([]string{
		"-i", "message.txt", "--outdir=out", "--parallel",
		"--workers=3", "--des.key=3031323334353637",
		"--gost.keylayout=sliced", "--gost.rotate",
	})
	require.NoError(t, err)

	require.Equal(t, "message.txt", cfg.InputFile)
	require.Equal(t, "out", cfg.OutputDir)
	require.Len(t, cfg.contextOptions(), 1)

	desKey, err := cfg.desKey()
	require.NoError(t, err)
	require.Equal(t, []uint8("01234567"), desKey)

	gostOpts, err := cfg.gostOptions()
	require.NoError(t, err)
	require.Len(t, gostOpts, 2)
}

func TestLoadConfigErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"des key not hex", []string{"--des.key=zz"}},
		{"des key too short", []string{"--des.key=30313233"}},
		{"gost key too long", []string{"--gost.key=" + defaultGOSTKey + "00"}},
		{"unknown layout", []string{"--gost.keylayout=reversed"}},
		{"negative workers", []string{"--workers=-1"}},
		{"unknown flag", []string{"--mode=cbc"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadConfig(tc.args)
			require.Error(t, err)
		})
	}

	_, err := loadConfig([]string{"--des.key=30313233"})
	require.ErrorIs(t, err, cripta.ErrInvalidKeyLength)
}

func TestSetupLogging(t *testing.T) {
	var logs bytes.Buffer
	require.NoError(t, setupLogging(&logs, "info"))
	require.Error(t, setupLogging(&logs, "loud"))
}

// TestRun encrypts a file end to end and checks both output files and the
// printed report.
func TestRun(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(inputPath, []uint8("Test Data"), 0600))

	for _, parallel := range []bool{false, true} {
		cfg, err := loadConfig([]string{
			"--input=" + inputPath,
			"--outdir=" + filepath.Join(dir, "out"),
			"--des.key=3031323334353637",
			"--gost.key=" + hex.EncodeToString(
				[]uint8("01234567890123456789012345678901"),
			),
		})
		require.NoError(t, err)
		cfg.Parallel = parallel

		var stdout bytes.Buffer
		require.NoError(t, run(cfg, &stdout))

		desOut, err := os.ReadFile(
			filepath.Join(cfg.OutputDir, desOutputFile),
		)
		require.NoError(t, err)
		require.Equal(t, "ac77741a613a8dda2a0bd4d88a3cfb55",
			hex.EncodeToString(desOut))

		gostOut, err := os.ReadFile(
			filepath.Join(cfg.OutputDir, gostOutputFile),
		)
		require.NoError(t, err)
		require.Equal(t, "2eae709f65197b797470ce8781994240",
			hex.EncodeToString(gostOut))

		report := stdout.String()
		require.Contains(t, report, "Input:\nTest Data")
		require.Contains(t, report,
			"DES (hex):\nac77741a613a8dda2a0bd4d88a3cfb55")
		require.Contains(t, report,
			"GOST (hex):\n2eae709f65197b797470ce8781994240")
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()

	cfg := defaultConfig()
	cfg.InputFile = filepath.Join(dir, "missing.txt")
	cfg.OutputDir = dir

	require.Error(t, run(&cfg, &bytes.Buffer{}))
	require.NoFileExists(t, filepath.Join(dir, desOutputFile))
	require.NoFileExists(t, filepath.Join(dir, gostOutputFile))
}
