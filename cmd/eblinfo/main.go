// Command eblinfo prints EBL optical depths, transmissions and horizon
// energies.
//
// Usage:
//
//	eblinfo [flags]
//
// Without -config it evaluates a single model and redshift given by flags.
//
// Examples:
//
//	eblinfo -list
//	eblinfo -model 1 -z 0.1 -energies 0.1,1,10 -horizon
//	eblinfo -model dominguez2011 -z 0.3 -tables ./tables
//	eblinfo -config jobs.yaml -v
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-ebl/ebl"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("eblinfo", flag.ContinueOnError)
	flags.SetOutput(stderr)
	model := flags.String("model", ebl.Franceschini2008.String(), "model name or id (see -list)")
	z := flags.Float64("z", 0.1, "source redshift")
	energies := flags.String("energies", "", "comma-separated energies in TeV")
	flux := flags.String("flux", "", "comma-separated intrinsic flux, one value or one per energy")
	horizon := flags.Bool("horizon", false, "also print the horizon energy")
	tol := flags.Float64("tol", ebl.DefaultHorizonTolerance, "horizon tolerance on tau=1")
	list := flags.Bool("list", false, "list available models")
	tables := flags.String("tables", "", "directory with table files not bundled in the binary")
	configPath := flags.String("config", "", "YAML job file")
	verbose := flags.Bool("v", false, "log debug messages")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: eblinfo [flags]\n\n")
		fmt.Fprintf(stderr, "Prints EBL optical depths, transmissions and horizon energies.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  eblinfo -list\n")
		fmt.Fprintf(stderr, "  eblinfo -model 1 -z 0.1 -energies 0.1,1,10 -horizon\n")
		fmt.Fprintf(stderr, "  eblinfo -config jobs.yaml\n")
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *list {
		if err := printList(stdout); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var cfg *Config
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	} else {
		job, err := flagJob(*model, *z, *energies, *flux, *horizon)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 2
		}
		cfg = &Config{Tolerance: *tol, Jobs: []Job{job}}
		applyDefaults(cfg)
		if err := cfg.validate(); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 2
		}
	}
	if *tables != "" {
		cfg.Tables = *tables
	}

	opts := []ebl.Option{ebl.WithLogger(logger)}
	if cfg.Tables != "" {
		opts = append(opts, ebl.WithTables(os.DirFS(cfg.Tables)))
	}

	status := 0
	for i, job := range cfg.Jobs {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		if err := runJob(stdout, job, cfg.Tolerance, opts); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			status = 1
		}
	}
	return status
}

func flagJob(model string, z float64, energies, flux string, horizon bool) (Job, error) {
	e, err := parseFloats(energies)
	if err != nil {
		return Job{}, fmt.Errorf("-energies: %w", err)
	}
	f, err := parseFloats(flux)
	if err != nil {
		return Job{}, fmt.Errorf("-flux: %w", err)
	}
	return Job{Model: model, Redshift: z, Energies: e, Flux: f, Horizon: horizon}, nil
}

func parseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func printList(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "ID\tName\tFile\tRedshift\tUnit\tBundled\tReference\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "--\t----\t----\t--------\t----\t-------\t---------\n"); err != nil {
		return err
	}
	bundled := ebl.BundledTables()
	for _, id := range ebl.Models() {
		meta, err := ebl.Lookup(id)
		if err != nil {
			return err
		}
		unit := "TeV"
		if meta.EnergyUnit == ebl.GeV {
			unit = "GeV"
		}
		embedded := "no"
		if _, err := fs.Stat(bundled, meta.File); err == nil {
			embedded = "yes"
		}
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%g-%g (%d)\t%s\t%s\t%s\n",
			int(id), meta.Name, meta.File,
			meta.MinRedshift(), meta.MaxRedshift(), len(meta.Redshift),
			unit, embedded, meta.Reference,
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func runJob(w io.Writer, job Job, tol float64, opts []ebl.Option) error {
	id, err := ebl.ParseModelID(job.Model)
	if err != nil {
		return err
	}
	m, err := ebl.New(job.Redshift, id, opts...)
	if err != nil {
		return err
	}

	tau := m.TauAll(job.Energies)
	trans := m.Transmission(job.Energies)
	var absorbed []float64
	if len(job.Flux) > 0 {
		if absorbed, err = m.AbsorbAll(job.Flux, job.Energies); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "%s (%s), z = %g\n", m.Name(), job.Model, m.Redshift())
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := "E [TeV]\ttau\texp(-tau)"
	if absorbed != nil {
		header += "\tflux\tabsorbed"
	}
	fmt.Fprintln(tw, header)
	for i, e := range job.Energies {
		fmt.Fprintf(tw, "%.4g\t%.6g\t%.6g", e, tau[i], trans[i])
		if absorbed != nil {
			f := job.Flux[0]
			if len(job.Flux) > 1 {
				f = job.Flux[i]
			}
			fmt.Fprintf(tw, "\t%.4g\t%.4g", f, absorbed[i])
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if job.Horizon {
		h, err := m.HorizonEnergy(tol)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "horizon energy: %.4g TeV\n", h)
	}
	return nil
}
