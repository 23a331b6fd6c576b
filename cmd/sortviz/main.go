package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/viz"
)

var (
	verbose    bool
	configFile string

	size    int
	minVal  int
	maxVal  int
	seed    int64
	speed   string
	shape   string
	theme   string
	values  []int
	delayMs int
	graph   bool
	plotAll bool

	trials       int
	trialMaxSize int
	trialSeed    int64
	addr         string
	format       string
	outFile      string
)

var registry = driver.NewRegistry()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sortviz",
		Short:         "step through sorting algorithms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			viz.SetTheme(cfg.Theme)
			return viz.RunInteractive(registry, *cfg)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	liveCmd := &cobra.Command{
		Use:   "live [algorithm]",
		Short: "animate one algorithm in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	inputFlags(liveCmd)
	liveCmd.Flags().StringVar(&speed, "speed", config.DefaultSpeed, "speed preset (slow, medium, fast)")
	liveCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "print every step of a trace",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrace,
	}
	inputFlags(runCmd)
	runCmd.Flags().IntVar(&delayMs, "delay", 0, "pause between printed steps (ms)")
	runCmd.Flags().BoolVar(&graph, "graph", false, "plot log growth after the run")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run every algorithm on the same input",
		Args:  cobra.NoArgs,
		RunE:  compareAlgorithms,
	}
	inputFlags(compareCmd)
	compareCmd.Flags().BoolVar(&plotAll, "graph", true, "plot log growth per algorithm")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms",
		RunE:  listAlgorithms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list speed presets, input shapes and themes",
		RunE:  listPresets,
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "run every algorithm on random inputs and verify the result",
		Args:  cobra.NoArgs,
		RunE:  checkAlgorithms,
	}
	checkCmd.Flags().IntVar(&trials, "trials", 50, "number of random inputs")
	checkCmd.Flags().IntVar(&trialMaxSize, "size", config.MaxSize, "largest input size")
	checkCmd.Flags().Int64Var(&trialSeed, "seed", 0, "random seed (0 uses the clock)")

	exportCmd := &cobra.Command{
		Use:   "export [algorithm]",
		Short: "write a full trace as json, csv or svg",
		Args:  cobra.ExactArgs(1),
		RunE:  exportTrace,
	}
	inputFlags(exportCmd)
	exportCmd.Flags().StringVar(&format, "format", "json", "output format (json, csv, svg)")
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "stream traces over HTTP",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	rootCmd.AddCommand(liveCmd, runCmd, compareCmd, listCmd, presetsCmd, scenarioCmd, checkCmd, exportCmd, serveCmd)
	return rootCmd
}

func inputFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&size, "size", config.DefaultSize, "number of values")
	cmd.Flags().IntVar(&minVal, "min", config.DefaultMin, "smallest generated value")
	cmd.Flags().IntVar(&maxVal, "max", config.DefaultMax, "largest generated value")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	cmd.Flags().StringVar(&shape, "shape", config.DefaultShape, "input shape")
	cmd.Flags().IntSliceVar(&values, "values", nil, "explicit input, e.g. 5,3,8,1")
}

// loadConfig reads --config if given and applies any flags set on the
// command line on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("min") {
		cfg.Min = minVal
	}
	if flags.Changed("max") {
		cfg.Max = maxVal
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("shape") {
		cfg.Shape = shape
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("values") {
		cfg.Values = values
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
