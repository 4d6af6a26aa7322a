package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortviz/internal/config"
)

// configCmd registers fresh flags, which also resets the package flag
// variables to their defaults.
func configCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "sortviz"}
	addConfigFlags(cmd.Flags())
	addDisplayFlags(cmd.Flags())
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestResolveConfigLayering(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sortviz.yaml")
	yaml := "algorithm: merge\nlimit: 5\ndata_dir: " + filepath.Join(dir, "from-file") + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(yaml), 0644))

	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "defaults",
			check: func(t *testing.T, cfg *config.Config) {
				require.Equal(t, config.DefaultAlgorithm, cfg.Algorithm)
				require.Equal(t, config.DefaultOrder, cfg.Order)
				require.Equal(t, config.DefaultConfig().Speed, cfg.Speed)
				require.Equal(t, config.DefaultDataDir, cfg.DataDir)
				require.NotZero(t, cfg.Seed, "zero seed becomes time based")
			},
		},
		{
			name: "preset over defaults",
			args: []string{"--preset", "fast"},
			check: func(t *testing.T, cfg *config.Config) {
				require.Equal(t, 195, cfg.Speed)
				require.Equal(t, "retro", cfg.Theme)
			},
		},
		{
			name: "changed flag over preset",
			args: []string{"--preset", "fast", "--speed", "50", "-o", "descending"},
			check: func(t *testing.T, cfg *config.Config) {
				require.Equal(t, 50, cfg.Speed)
				require.Equal(t, "descending", cfg.Order)
				require.Equal(t, "retro", cfg.Theme)
			},
		},
		{
			name: "config file over preset",
			args: []string{"--preset", "fast", "--config", cfgPath},
			check: func(t *testing.T, cfg *config.Config) {
				require.Equal(t, "merge", cfg.Algorithm)
				require.Equal(t, 5, cfg.Limit)
				require.Equal(t, filepath.Join(dir, "from-file"), cfg.DataDir)
			},
		},
		{
			name: "changed flags over config file",
			args: []string{"--config", cfgPath, "-a", "quick", "--data", filepath.Join(dir, "from-flag"), "--seed", "9"},
			check: func(t *testing.T, cfg *config.Config) {
				require.Equal(t, "quick", cfg.Algorithm)
				require.Equal(t, 5, cfg.Limit)
				require.Equal(t, filepath.Join(dir, "from-flag"), cfg.DataDir)
				require.Equal(t, int64(9), cfg.Seed)
			},
		},
		{
			name: "strings flag set both ways",
			args: []string{"--preset", "words", "--strings=false"},
			check: func(t *testing.T, cfg *config.Config) {
				require.Equal(t, "int", cfg.Elements)
				require.Equal(t, "merge", cfg.Algorithm)
			},
		},
		{
			name: "strings flag",
			args: []string{"-s"},
			check: func(t *testing.T, cfg *config.Config) {
				require.Equal(t, "string", cfg.Elements)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := resolveConfig(configCmd(t, tt.args...))
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestResolveConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown preset", []string{"--preset", "nope"}},
		{"missing config file", []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}},
		{"unknown algorithm", []string{"--algo", "bogo"}},
		{"negative limit", []string{"--limit=-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveConfig(configCmd(t, tt.args...))
			require.Error(t, err)
		})
	}
}

func TestAlgorithmHelpDescribesEveryAlgorithm(t *testing.T) {
	help := algorithmHelp()
	for _, want := range []string{"bubble", "adjacent swaps, early exit", "randomized_quick", "lomuto, random pivot"} {
		require.Contains(t, help, want)
	}
}
