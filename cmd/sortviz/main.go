package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/sortalg"
)

var (
	dataDir    string
	configFile string
	preset     string
	verbose    bool

	algo       string
	order      string
	useStrings bool
	limit      int
	seed       int64
	speed      int
	theme      string
	watch      bool
	save       bool

	asJSON  bool
	ascii   bool
	animate bool
	outFile string
	svgFile string

	sizes   []int
	repeats int
	workers int
)

// main registers the sortviz commands and runs the interactive visualizer
// when no subcommand is given. It exits with status 1 on any command error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "sortviz",
		Short: "sorting algorithm lab and bubble sort visualizer",
		Args:  cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		RunE: runLive,
		// cobra prints the error, without usage
		SilenceUsage: true,
	}

	addConfigFlags(rootCmd.PersistentFlags())

	liveCmd := &cobra.Command{
		Use:   "live [file]",
		Short: "interactive visualizer (random demo data without a file)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	for _, c := range []*cobra.Command{rootCmd, liveCmd} {
		addDisplayFlags(c.Flags())
	}

	sortCmd := &cobra.Command{
		Use:   "sort [file]",
		Short: "sort a dataset and print the summary",
		Args:  cobra.ExactArgs(1),
		RunE:  runSort,
	}
	sortCmd.Flags().BoolVar(&save, "save", false, "store the run in the data directory")

	traceCmd := &cobra.Command{
		Use:   "trace [file]",
		Short: "step bubble sort headlessly and print every step",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrace,
	}
	traceCmd.Flags().BoolVar(&asJSON, "json", false, "print the trace as JSON")
	traceCmd.Flags().StringVar(&outFile, "out", "", "write the JSON trace to a file")
	traceCmd.Flags().BoolVar(&ascii, "ascii", false, "draw each step as a plain text bar chart")
	traceCmd.Flags().BoolVar(&animate, "animate", false, "redraw ascii frames in place at --speed")
	traceCmd.Flags().StringVar(&svgFile, "svg", "", "write the final frame as an svg bar chart")
	traceCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme for --svg")
	traceCmd.Flags().IntVar(&speed, "speed", config.DefaultConfig().Speed, "animation speed, higher is faster")

	compareCmd := &cobra.Command{
		Use:   "compare [file]",
		Short: "run every algorithm on the same dataset",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompare,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time every algorithm on random inputs of growing size",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	benchCmd.Flags().IntSliceVar(&sizes, "sizes", nil, "input sizes (default 100..4000)")
	benchCmd.Flags().IntVar(&repeats, "repeats", 3, "runs per point, best kept")
	benchCmd.Flags().IntVar(&workers, "workers", 0, "concurrent runs (0 = NumCPU)")
	benchCmd.Flags().StringVar(&svgFile, "svg", "", "write the timing curves as svg")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().BoolVar(&asJSON, "json", false, "print run metadata as JSON")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-8s  %-16s  %-10s  %-6s  speed %-3d  theme %s\n",
					name, p.Algorithm, p.Order, p.Elements, p.Speed, p.Theme)
			}
			return nil
		},
	}

	rootCmd.AddCommand(liveCmd, sortCmd, traceCmd, compareCmd, benchCmd, listCmd, showCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addConfigFlags registers the flags every command resolves through
// resolveConfig.
func addConfigFlags(pf *pflag.FlagSet) {
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "data directory for stored runs and logs")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.StringVarP(&algo, "algo", "a", config.DefaultAlgorithm, "algorithm:\n"+algorithmHelp())
	pf.StringVarP(&order, "order", "o", config.DefaultOrder, "sort order: ascending|descending")
	pf.BoolVarP(&useStrings, "strings", "s", false, "treat each line as a string element")
	pf.IntVar(&limit, "limit", config.DefaultLimit, "elements shown before truncating (0 = all)")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
}

func addDisplayFlags(fs *pflag.FlagSet) {
	fs.IntVar(&speed, "speed", config.DefaultConfig().Speed, "animation speed, higher is faster")
	fs.StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	fs.BoolVarP(&watch, "watch", "w", false, "reload the dataset when the file changes")
}

func setupLogging() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

// algorithmHelp lists every algorithm name with its description, one per
// line.
func algorithmHelp() string {
	reg := sortalg.NewRegistry()
	var sb strings.Builder
	for _, name := range reg.List() {
		kind, err := reg.Lookup(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(&sb, "  %-16s %s\n", name, reg.Info(kind))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// resolveConfig layers defaults, then the preset, then the config file, then
// any flag the user set explicitly.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("algo") {
		cfg.Algorithm = algo
	}
	if flags.Changed("order") {
		cfg.Order = order
	}
	if flags.Changed("strings") {
		cfg.Elements = "int"
		if useStrings {
			cfg.Elements = "string"
		}
	}
	if flags.Changed("limit") {
		cfg.Limit = limit
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("watch") {
		cfg.Watch = watch
	}
	if flags.Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"algorithm": cfg.Algorithm,
		"order":     cfg.Order,
		"elements":  cfg.Elements,
		"seed":      cfg.Seed,
	}).Debug("configuration resolved")
	return cfg, nil
}
