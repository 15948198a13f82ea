package file

import (
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/filekv/go-filekv/internal/options"
)

const (
	// defaultPollInterval is how long Get and Wait sleep between attempts.
	defaultPollInterval = 10 * time.Millisecond

	defaultFileMode = os.FileMode(0o644)
)

// storeOptions contains configuration options for a Store.
type storeOptions struct {
	pollInterval time.Duration
	fileMode     os.FileMode
	logger       *zap.Logger
}

// Option is a function that configures a Store.
type Option func(*storeOptions)

// WithPollInterval configures how long Get and Wait sleep between polls of
// the shared log. The default is 10ms.
func WithPollInterval(interval time.Duration) Option {
	return func(opts *storeOptions) {
		opts.pollInterval = interval
	}
}

// WithFileMode configures the permission bits used when the store creates
// the log file. The default is 0644.
func WithFileMode(mode os.FileMode) Option {
	return func(opts *storeOptions) {
		opts.fileMode = mode
	}
}

// WithLogger configures a logger for debug-level tracing of log replay and
// appends. The default logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *storeOptions) {
		opts.logger = logger
	}
}

func defaultOptions() storeOptions {
	return storeOptions{
		pollInterval: defaultPollInterval,
		fileMode:     defaultFileMode,
		logger:       zap.NewNop(),
	}
}

func applyOptions(opts []Option) storeOptions {
	cbs := make([]options.Callback[storeOptions], 0, len(opts))
	for _, opt := range opts {
		cbs = append(cbs, options.Callback[storeOptions](opt))
	}

	return options.Apply(defaultOptions, cbs)
}
