package ebl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing/fstest"
)

// recordHandler is a slog.Handler that keeps every record it receives.
type recordHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *recordHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordHandler) warnings() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []string
	for _, r := range h.records {
		if r.Level == slog.LevelWarn {
			out = append(out, r.Message)
		}
	}
	return out
}

func newRecorder() (*recordHandler, Option) {
	h := &recordHandler{}
	return h, WithLogger(slog.New(h))
}

var quiet = WithLogger(slog.New(slog.DiscardHandler))

// synthTable renders a table file for meta with energies given in the file's
// unit and tau = f(energyTeV, z).
func synthTable(meta Metadata, energies []float64, f func(e, z float64) float64) string {
	var b strings.Builder
	b.WriteString("# synthetic\n")
	for _, e := range energies {
		fmt.Fprintf(&b, "%g", e)
		for _, z := range meta.Redshift {
			fmt.Fprintf(&b, " %g", f(e/float64(meta.EnergyUnit), z))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// synthFS builds an in-memory tables FS holding a synthetic table for id.
func synthFS(id ModelID, energies []float64, f func(e, z float64) float64) fstest.MapFS {
	meta, err := Lookup(id)
	if err != nil {
		panic(err)
	}
	return fstest.MapFS{
		meta.File: &fstest.MapFile{Data: []byte(synthTable(meta, energies, f))},
	}
}

// linearTau grows with both energy and redshift.
func linearTau(e, z float64) float64 { return e * z }
