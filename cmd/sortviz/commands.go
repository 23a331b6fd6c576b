package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/automation"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/server"
	"github.com/san-kum/sortviz/internal/trace"
	"github.com/san-kum/sortviz/internal/viz"
)

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	alg := cfg.Algorithm
	if len(args) == 1 {
		if alg, err = trace.ParseAlgorithm(args[0]); err != nil {
			return err
		}
	}
	viz.SetTheme(cfg.Theme)

	input := cfg.Input()
	loggerFromContext(cmd.Context()).Debug("starting live view", "algorithm", alg, "input", input)

	m, err := viz.NewModel(registry, alg, input, cfg.Delay())
	if err != nil {
		return err
	}
	return viz.RunLive(m)
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := loggerFromContext(cmd.Context())

	run, err := registry.Start(args[0], cfg.Input())
	if err != nil {
		return err
	}
	for _, m := range registry.DefaultMetrics() {
		run.AddMetric(m)
	}
	logger.Debug("run started", "id", run.ID, "algorithm", run.Algorithm)

	fmt.Printf("%s sort on %v\n\n", run.Algorithm, run.Input())

	delay := time.Duration(delayMs) * time.Millisecond
	printed := 0
	var sizes []float64
	err = run.Walk(cmd.Context(), func(i int, s trace.Step) bool {
		if i > 0 && delay > 0 {
			time.Sleep(delay)
		}
		entries := s.Log[printed:]
		printed = len(s.Log)
		note := ""
		if len(entries) > 0 {
			note = color.New(color.FgHiBlack).Sprint(strings.Join(entries, "; "))
		}
		fmt.Printf("%4d  %s  %s\n", i+1, viz.RenderValues(s.Array, s.Highlighted), note)
		sizes = append(sizes, float64(len(s.Log)))
		return true
	})
	if err != nil {
		printStatus("✗", err.Error(), color.FgRed)
		return err
	}

	fmt.Println()
	if run.Steps() == 0 {
		printStatus("✓", "nothing to sort", color.FgGreen)
	} else {
		printStatus("✓", fmt.Sprintf("sorted in %d steps: %v", run.Steps(), run.Array()), color.FgGreen)
	}

	metrics := run.Metrics()
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Printf("  %-11s %g\n", name, metrics[name])
	}

	if graph && len(sizes) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(sizes, asciigraph.Height(8), asciigraph.Caption("log entries per step")))
	}
	return nil
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	input := cfg.Input()
	fmt.Printf("input: %v\n\n", input)

	var results []*driver.Result
	for _, alg := range registry.List() {
		run, err := registry.StartAlgorithm(alg, input)
		if err != nil {
			return err
		}
		for _, m := range registry.DefaultMetrics() {
			run.AddMetric(m)
		}
		result, err := run.Drain(cmd.Context())
		if err != nil {
			return err
		}
		results = append(results, result)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSTEPS\tLOG\tWRITES\tSORTED")
	for _, r := range results {
		sorted := color.GreenString("yes")
		if !slices.IsSorted(r.Final) {
			sorted = color.RedString("no")
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%.0f\t%s\n",
			r.Algorithm, r.Steps, len(r.Log), r.Metrics["writes"], sorted)
	}
	w.Flush()

	if !plotAll {
		return nil
	}
	var series [][]float64
	var legends []string
	for _, r := range results {
		if len(r.LogSizes) < 2 {
			continue
		}
		data := make([]float64, len(r.LogSizes))
		for i, n := range r.LogSizes {
			data[i] = float64(n)
		}
		series = append(series, data)
		legends = append(legends, r.Algorithm.String())
	}
	if len(series) == 0 {
		return nil
	}
	fmt.Println()
	fmt.Println(asciigraph.PlotMany(series,
		asciigraph.Height(10),
		asciigraph.Caption("log entries per step"),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green, asciigraph.Yellow, asciigraph.Blue, asciigraph.Magenta),
		asciigraph.SeriesLegends(legends...),
	))
	return nil
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, alg := range registry.List() {
		fmt.Fprintf(w, "%s\t%s\n", strings.ToLower(alg.String()), alg.Description())
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	fmt.Println("speeds:")
	for _, name := range config.ListSpeeds() {
		fmt.Printf("  %-8s %s per step\n", name, config.Speeds[name])
	}
	fmt.Println("shapes:")
	for _, name := range config.ListShapes() {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println("themes:")
	for _, name := range viz.ThemeNames() {
		fmt.Printf("  %s\n", name)
	}
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())

	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	logger.Info("running scenario", "name", sc.Name, "steps", len(sc.Steps))

	results, err := automation.RunScenario(cmd.Context(), sc, registry)
	for i, r := range results {
		printStatus("✓", fmt.Sprintf("%d. %s sort: %d steps, %v -> %v", i+1, r.Algorithm, r.Steps, r.Input, r.Final), color.FgGreen)
	}
	if err != nil {
		printStatus("✗", err.Error(), color.FgRed)
		return err
	}
	return nil
}

func checkAlgorithms(cmd *cobra.Command, args []string) error {
	start := time.Now()
	results, err := automation.RunTrials(cmd.Context(), &automation.TrialConfig{
		NumTrials: trials,
		MaxSize:   trialMaxSize,
		Min:       config.DefaultMin,
		Max:       config.DefaultMax,
		Seed:      trialSeed,
	}, registry)
	if err != nil {
		return err
	}

	sorted, failed := automation.TrialStats(results)
	for _, alg := range registry.List() {
		if failed[alg] == 0 {
			printStatus("✓", fmt.Sprintf("%s: %d/%d sorted", alg, sorted[alg], trials), color.FgGreen)
			continue
		}
		printStatus("✗", fmt.Sprintf("%s: %d/%d failed", alg, failed[alg], trials), color.FgRed)
		for _, r := range results {
			if r.Algorithm == alg && !r.Sorted {
				reason := fmt.Sprintf("final %v", r.Final)
				if r.Err != nil {
					reason = r.Err.Error()
				}
				fmt.Printf("    trial %d on %v: %s\n", r.TrialID, r.Input, reason)
				break
			}
		}
	}
	loggerFromContext(cmd.Context()).Debug("check finished", "runs", len(results), "elapsed", time.Since(start).Round(time.Millisecond))

	for _, n := range failed {
		if n > 0 {
			return errors.New("some algorithms left unsorted output")
		}
	}
	return nil
}

func exportTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	run, err := registry.Start(args[0], cfg.Input())
	if err != nil {
		return err
	}
	for _, m := range registry.DefaultMetrics() {
		run.AddMetric(m)
	}
	data, err := export.Collect(cmd.Context(), run)
	if err != nil {
		return err
	}

	w := os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "json":
		err = export.WriteJSON(w, data)
	case "csv":
		err = export.WriteCSV(w, data)
	case "svg":
		step := trace.Step{Array: data.Final}
		if n := len(data.Steps); n > 0 {
			last := data.Steps[n-1]
			step = trace.Step{Array: last.Array, Highlighted: last.Highlighted}
		}
		_, err = fmt.Fprintln(w, export.StepToSVG(step, 600, 300, "#5f87af", "#ff5f87"))
	default:
		return fmt.Errorf("unknown format %q (available: json, csv, svg)", format)
	}
	if err != nil {
		return err
	}

	if outFile != "" {
		loggerFromContext(cmd.Context()).Info("trace exported", "file", outFile, "steps", len(data.Steps))
	}
	return nil
}

func serve(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    addr,
		Handler: server.New(registry, logger),
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func printStatus(symbol, msg string, attr color.Attribute) {
	fmt.Printf("%s %s\n", color.New(attr).Sprint(symbol), msg)
}
