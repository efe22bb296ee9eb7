package vector

// PoolConfig controls how a Pool sizes and retains vectors.
type PoolConfig struct {
	// InitialCapacity is reserved on every vector handed out by Get.
	InitialCapacity int
	// MaxRetainedCapacity drops vectors whose capacity exceeds it on Put.
	// Zero keeps every vector.
	MaxRetainedCapacity int
}

// PoolOption mutates a PoolConfig.
type PoolOption func(*PoolConfig)

// DefaultPoolConfig returns the configuration used when no options are given.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		InitialCapacity:     0,
		MaxRetainedCapacity: 0,
	}
}

// WithInitialCapacity sets the capacity reserved by Get.
func WithInitialCapacity(n int) PoolOption {
	return func(cfg *PoolConfig) {
		if n > 0 {
			cfg.InitialCapacity = n
		}
	}
}

// WithMaxRetainedCapacity sets the largest capacity Put keeps for reuse.
func WithMaxRetainedCapacity(n int) PoolOption {
	return func(cfg *PoolConfig) {
		if n > 0 {
			cfg.MaxRetainedCapacity = n
		}
	}
}

// ApplyPoolOptions applies zero or more options to the default config.
func ApplyPoolOptions(opts ...PoolOption) PoolConfig {
	cfg := DefaultPoolConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
