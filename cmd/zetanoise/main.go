// Command zetanoise generates zeta-modulated noise signals and prints zero
// ordinates, raw signals, or summary statistics.
//
// Examples:
//
//	zetanoise zeros -n 10
//	zetanoise generate --length 1024 --seed 42 --format csv > signal.csv
//	zetanoise stats --length 512 --peaks 20
//	zetanoise --config run.yaml stats
package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	zetanoise "github.com/laserjobs/ZetaNoise"
	"github.com/laserjobs/ZetaNoise/noise"
)

// settings holds the tunable parameters, loadable from a YAML file.
// Explicit command-line flags override file values.
type settings struct {
	NumZeros  int     `yaml:"num_zeros"`
	Precision int     `yaml:"precision"`
	GUEScale  float64 `yaml:"gue_scale"`
	Length    int     `yaml:"length"`
	Amplitude float64 `yaml:"amplitude"`
	Peaks     int     `yaml:"peaks"`
}

func defaultSettings() settings {
	return settings{
		NumZeros:  zetanoise.DefaultNumZeros,
		Precision: zetanoise.DefaultPrecision,
		GUEScale:  zetanoise.DefaultGUEScale,
		Length:    zetanoise.DefaultLength,
		Amplitude: zetanoise.DefaultAmplitude,
		Peaks:     zetanoise.DefaultNumPeaks,
	}
}

type app struct {
	log *logrus.Logger
	cfg settings

	configPath string
	verbose    bool
	seed       int64
	format     string
}

func main() {
	a := &app{
		log: logrus.New(),
		cfg: defaultSettings(),
	}

	root := &cobra.Command{
		Use:           "zetanoise",
		Short:         "Generate noise modulated by the Riemann zeta zeros",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML settings file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().IntVarP(&a.cfg.NumZeros, "zeros", "n", a.cfg.NumZeros, "number of zeta zeros")
	root.PersistentFlags().IntVar(&a.cfg.Precision, "precision", a.cfg.Precision, "decimal precision for zero computation")
	root.PersistentFlags().Float64Var(&a.cfg.GUEScale, "gue-scale", a.cfg.GUEScale, "GUE repulsion scale (0 disables)")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if a.verbose {
			a.log.SetLevel(logrus.DebugLevel)
		}

		return a.loadConfig(cmd)
	}

	root.AddCommand(a.zerosCmd(), a.generateCmd(), a.statsCmd())

	if err := root.Execute(); err != nil {
		a.log.Error(err)
		os.Exit(1)
	}
}

// loadConfig merges a YAML settings file under explicitly set flags.
func (a *app) loadConfig(cmd *cobra.Command) error {
	if a.configPath == "" {
		return nil
	}

	data, err := os.ReadFile(a.configPath)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	fileCfg := defaultSettings()
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", a.configPath, err)
	}

	// Flags win over file values.
	flags := cmd.Flags()
	if !flags.Changed("zeros") {
		a.cfg.NumZeros = fileCfg.NumZeros
	}

	if !flags.Changed("precision") {
		a.cfg.Precision = fileCfg.Precision
	}

	if !flags.Changed("gue-scale") {
		a.cfg.GUEScale = fileCfg.GUEScale
	}

	if !flags.Changed("length") {
		a.cfg.Length = fileCfg.Length
	}

	if !flags.Changed("amplitude") {
		a.cfg.Amplitude = fileCfg.Amplitude
	}

	if !flags.Changed("peaks") {
		a.cfg.Peaks = fileCfg.Peaks
	}

	return nil
}

func (a *app) newGenerator() (*zetanoise.Generator, error) {
	a.log.WithFields(logrus.Fields{
		"zeros":     a.cfg.NumZeros,
		"precision": a.cfg.Precision,
		"gue_scale": a.cfg.GUEScale,
	}).Debug("constructing generator")

	return zetanoise.New(a.cfg.NumZeros, a.cfg.Precision, a.cfg.GUEScale, zetanoise.WithLogger(a.log))
}

// genOptions returns the per-call options for signal generation.
func (a *app) genOptions(cmd *cobra.Command) []noise.GenOption {
	if !cmd.Flags().Changed("seed") {
		a.log.Debug("no seed given; output is not reproducible")
		return nil
	}

	return []noise.GenOption{noise.WithSeed(a.seed)}
}

func (a *app) zerosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zeros",
		Short: "Print the zero ordinates used for modulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := a.newGenerator()
			if err != nil {
				return err
			}

			if a.format == "json" {
				return json.NewEncoder(os.Stdout).Encode(gen.Zeros())
			}

			for i, z := range gen.Zeros() {
				fmt.Printf("%4d  %.12f\n", i+1, z)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&a.format, "format", "text", "output format: text or json")

	return cmd
}

func (a *app) generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a noise signal and write it to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := a.newGenerator()
			if err != nil {
				return err
			}

			signal, err := gen.Generate(a.cfg.Length, a.cfg.Amplitude, a.genOptions(cmd)...)
			if err != nil {
				return err
			}

			switch a.format {
			case "json":
				return json.NewEncoder(os.Stdout).Encode(signal)
			case "csv":
				return writeCSV(signal)
			default:
				return fmt.Errorf("unknown format %q (want csv or json)", a.format)
			}
		},
	}

	cmd.Flags().IntVar(&a.cfg.Length, "length", a.cfg.Length, "signal length in samples")
	cmd.Flags().Float64Var(&a.cfg.Amplitude, "amplitude", a.cfg.Amplitude, "modulation amplitude")
	cmd.Flags().Int64Var(&a.seed, "seed", 0, "random seed for reproducible output")
	cmd.Flags().StringVar(&a.format, "format", "csv", "output format: csv or json")

	return cmd
}

func (a *app) statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Generate a signal and print its summary statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := a.newGenerator()
			if err != nil {
				return err
			}

			signal, err := gen.Generate(a.cfg.Length, a.cfg.Amplitude, a.genOptions(cmd)...)
			if err != nil {
				return err
			}

			summary, err := gen.Stats(signal, a.cfg.Peaks)
			if err != nil {
				return err
			}

			out := map[string]float64{
				"mean":                summary.Mean,
				"std":                 summary.Std,
				"spectrum_mean_power": summary.SpectrumMeanPower,
				"avg_peak_spacing":    summary.AvgPeakSpacing,
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")

			return enc.Encode(out)
		},
	}

	cmd.Flags().IntVar(&a.cfg.Length, "length", a.cfg.Length, "signal length in samples")
	cmd.Flags().Float64Var(&a.cfg.Amplitude, "amplitude", a.cfg.Amplitude, "modulation amplitude")
	cmd.Flags().Int64Var(&a.seed, "seed", 0, "random seed for reproducible output")
	cmd.Flags().IntVar(&a.cfg.Peaks, "peaks", a.cfg.Peaks, "number of spectral peaks for spacing statistics")

	return cmd
}

// writeCSV emits one sample per row as (index, value).
func writeCSV(signal []float64) error {
	w := csv.NewWriter(os.Stdout)

	if err := w.Write([]string{"index", "value"}); err != nil {
		return err
	}

	for i, v := range signal {
		row := []string{strconv.Itoa(i), strconv.FormatFloat(v, 'g', -1, 64)}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}
