package ebl

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-ebl/interp"
)

//go:embed data/*.dat
var bundled embed.FS

// BundledTables returns the table files embedded in the package.
func BundledTables() fs.FS {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		panic(fmt.Sprintf("ebl: embedded tables: %v", err))
	}
	return sub
}

// Table is a tabulated optical-depth grid. Tau is indexed [energy][redshift].
type Table struct {
	Energy   []float64
	Redshift []float64
	Tau      [][]float64
}

// Validate checks the grid invariants: both axes strictly increasing with at
// least two points, Tau shaped len(Energy) x len(Redshift), and every entry a
// non-negative number (+Inf allowed).
func (t Table) Validate() error {
	if len(t.Energy) < 2 {
		return fmt.Errorf("%w: %d energy rows, need at least 2", ErrDataFormat, len(t.Energy))
	}
	if len(t.Redshift) < 2 {
		return fmt.Errorf("%w: %d redshift columns, need at least 2", ErrDataFormat, len(t.Redshift))
	}
	if i, ok := interp.StrictlyIncreasing(t.Energy); !ok {
		return fmt.Errorf("%w: energy grid not increasing at row %d (%v after %v)",
			ErrDataFormat, i, t.Energy[i], t.Energy[i-1])
	}
	if i, ok := interp.StrictlyIncreasing(t.Redshift); !ok {
		return fmt.Errorf("%w: redshift grid not increasing at column %d (%v after %v)",
			ErrDataFormat, i, t.Redshift[i], t.Redshift[i-1])
	}
	if len(t.Tau) != len(t.Energy) {
		return fmt.Errorf("%w: %d tau rows for %d energies", ErrDataFormat, len(t.Tau), len(t.Energy))
	}
	for j, row := range t.Tau {
		if len(row) != len(t.Redshift) {
			return fmt.Errorf("%w: row %d has %d tau values, want %d",
				ErrDataFormat, j, len(row), len(t.Redshift))
		}
		for k, v := range row {
			if math.IsNaN(v) || v < 0 {
				return fmt.Errorf("%w: tau[%d][%d] = %v", ErrDataFormat, j, k, v)
			}
		}
	}
	return nil
}

// Column returns a copy of the optical depths at redshift column k.
func (t Table) Column(k int) []float64 {
	col := make([]float64, len(t.Tau))
	for j, row := range t.Tau {
		col[j] = row[k]
	}
	return col
}

// ParseTable reads a whitespace-separated table whose first column is energy
// in unit and whose remaining columns are optical depths, one per entry of
// redshift. Blank lines and lines starting with '#' are skipped, as is a
// single non-numeric header line before the first data row.
//
// The returned energies are in TeV. The table is validated before returning.
func ParseTable(r io.Reader, redshift []float64, unit EnergyUnit) (Table, error) {
	if unit <= 0 {
		unit = TeV
	}
	t := Table{Redshift: append([]float64(nil), redshift...)}
	want := len(redshift) + 1

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	headerSeen := false
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		values, err := parseFields(fields)
		if err != nil {
			if len(t.Energy) == 0 && !headerSeen {
				headerSeen = true
				continue
			}
			return Table{}, fmt.Errorf("%w: line %d: %v", ErrDataFormat, lineNo, err)
		}
		if len(values) != want {
			return Table{}, fmt.Errorf("%w: line %d has %d columns, want %d (energy + %d redshifts)",
				ErrDataFormat, lineNo, len(values), want, len(redshift))
		}

		t.Energy = append(t.Energy, values[0]/float64(unit))
		t.Tau = append(t.Tau, values[1:])
	}
	if err := sc.Err(); err != nil {
		return Table{}, fmt.Errorf("ebl: reading table: %w", err)
	}

	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	return t, nil
}

func parseFields(fields []string) ([]float64, error) {
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("column %d: %q is not a number", i+1, f)
		}
		values[i] = v
	}
	return values, nil
}

// LoadTable reads and validates the table for id from fsys. When fsys is nil
// or does not contain the file, the bundled tables are consulted.
func LoadTable(fsys fs.FS, id ModelID) (Table, error) {
	meta, err := Lookup(id)
	if err != nil {
		return Table{}, err
	}

	f, err := openTable(fsys, meta.File)
	if err != nil {
		return Table{}, fmt.Errorf("ebl: open %s table: %w", meta.Name, err)
	}
	defer f.Close()

	t, err := ParseTable(f, meta.Redshift, meta.EnergyUnit)
	if err != nil {
		return Table{}, fmt.Errorf("%s (%s): %w", meta.Name, meta.File, err)
	}
	return t, nil
}

func openTable(fsys fs.FS, name string) (fs.File, error) {
	if fsys != nil {
		f, err := fsys.Open(name)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return BundledTables().Open(name)
}
