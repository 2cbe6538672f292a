package haar

import (
	"runtime"

	"github.com/cwbudde/algo-wavelet/dsp/buffer"
)

// Option configures the 2D pyramid transforms.
type Option func(*config)

type config struct {
	workers int
	pool    *buffer.Pool
}

var defaultPool = buffer.NewPool()

func defaultConfig() config {
	return config{
		workers: 1,
		pool:    defaultPool,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithWorkers processes rows (then columns) of each level on n goroutines.
// n <= 0 selects GOMAXPROCS. The default is sequential.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		cfg.workers = n
	}
}

// WithPool supplies the scratch pool used for row and column temporaries.
func WithPool(p *buffer.Pool) Option {
	return func(cfg *config) {
		if p != nil {
			cfg.pool = p
		}
	}
}
