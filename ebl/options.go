package ebl

import (
	"io/fs"
	"log/slog"
)

// DefaultMaxHorizonSteps bounds the geometric horizon search. At 1% per step
// this spans more than eight decades of energy.
const DefaultMaxHorizonSteps = 2000

// Option configures a Model.
type Option func(*config)

type config struct {
	logger          *slog.Logger
	tables          fs.FS
	maxHorizonSteps int
}

func defaultConfig() config {
	return config{
		maxHorizonSteps: DefaultMaxHorizonSteps,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	return cfg
}

// WithLogger sets the logger that receives out-of-range warnings and debug
// messages. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithTables sets the filesystem table files are read from. Files missing
// from fsys fall back to the bundled tables.
func WithTables(fsys fs.FS) Option {
	return func(cfg *config) {
		cfg.tables = fsys
	}
}

// WithMaxHorizonSteps caps the number of steps HorizonEnergy may take.
// Non-positive values are ignored.
func WithMaxHorizonSteps(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxHorizonSteps = n
		}
	}
}
