package core

// ProcessorConfig defines common signal settings shared by generators and
// transform front ends.
type ProcessorConfig struct {
	SampleRate   float64
	SignalLength int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the defaults used by the demo tools.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate:   48000,
		SignalLength: 64,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithSignalLength sets the signal length. Only powers of two are accepted;
// anything else leaves the current value untouched.
func WithSignalLength(n int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if IsPowerOfTwo(n) {
			cfg.SignalLength = n
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
