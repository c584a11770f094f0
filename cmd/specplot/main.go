// Command specplot overlays best-fit gamma-ray spectra with their
// one-sigma bands.
//
// Usage:
//
//	specplot -config spectra.yaml [-out file.png|file.svg] [-sed]
//
// Each spectrum may be attenuated by an EBL model at a given redshift.
// The output format follows the file extension.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-ebl/ebl"
	"github.com/cwbudde/algo-ebl/spectrum"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("specplot", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "YAML figure description (required)")
	out := flags.String("out", "spectra.png", "output file; .png, .svg, .pdf or .eps")
	sed := flags.Bool("sed", false, "plot E^2 dN/dE instead of dN/dE")
	tables := flags.String("tables", "", "directory with EBL table files not bundled in the binary")
	verbose := flags.Bool("v", false, "log debug messages")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *configPath == "" {
		fmt.Fprintf(stderr, "error: -config is required\n")
		flags.Usage()
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	eblOpts := []ebl.Option{ebl.WithLogger(logger)}
	if *tables != "" {
		eblOpts = append(eblOpts, ebl.WithTables(os.DirFS(*tables)))
	}

	p, err := render(stdout, cfg, *sed, eblOpts)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if err := p.Save(vg.Length(cfg.Width)*vg.Inch, vg.Length(cfg.Height)*vg.Inch, *out); err != nil {
		fmt.Fprintf(stderr, "error: save %s: %v\n", *out, err)
		return 1
	}
	logger.Debug("figure written", "file", *out, "spectra", len(cfg.Spectra))
	return 0
}

// render builds the figure and prints each spectrum's parameters to w.
func render(w io.Writer, cfg *Config, sed bool, eblOpts []ebl.Option) (*plot.Plot, error) {
	ylabel := cfg.YLabel
	if ylabel == "" {
		ylabel = "dN/dE [TeV^-1 cm^-2 s^-1]"
		if sed {
			ylabel = "E^2 dN/dE [erg cm^-2 s^-1]"
		}
	}
	p := spectrum.NewPlot(cfg.Title, cfg.XLabel, ylabel)

	for i, sc := range cfg.Spectra {
		s, err := buildSpectrum(sc, eblOpts)
		if err != nil {
			return nil, fmt.Errorf("spectrum %d (%s): %w", i, sc.Label, err)
		}

		var c color.Color = spectrum.Palette(i)
		if sc.Color != "" {
			if c, err = parseColor(sc.Color); err != nil {
				return nil, fmt.Errorf("spectrum %d (%s): %w", i, sc.Label, err)
			}
		}

		if sed {
			err = s.AddSED(p, c)
		} else {
			err = s.AddDNDE(p, c)
		}
		if err != nil {
			return nil, err
		}

		fmt.Fprintf(w, "%s:\n%s\n", sc.Label, s)
	}
	return p, nil
}

func buildSpectrum(sc SpectrumConfig, eblOpts []ebl.Option) (*spectrum.Spectrum, error) {
	shape, err := spectrum.ParseShape(sc.Shape)
	if err != nil {
		return nil, err
	}

	opts := []spectrum.Option{spectrum.WithShift(sc.Shift)}
	if sc.Points > 0 {
		opts = append(opts, spectrum.WithPoints(sc.Points))
	}
	if sc.EBL != nil {
		id, err := ebl.ParseModelID(sc.EBL.Model)
		if err != nil {
			return nil, err
		}
		m, err := ebl.New(sc.EBL.Redshift, id, eblOpts...)
		if err != nil {
			return nil, err
		}
		opts = append(opts, spectrum.WithAttenuation(m))
	}

	return spectrum.New(shape, sc.Params, sc.Scale, sc.Cov, sc.EMin, sc.EMax, sc.Label, opts...)
}
