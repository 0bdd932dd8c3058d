package magickit

import (
	"sync"
	"time"

	"github.com/gobeaver/beaver-kit/config"
)

// Global instance
var (
	defaultIdent Identifier
	defaultOnce  sync.Once
	defaultErr   error
)

// Builder provides a way to create Identifier instances with custom
// environment variable prefixes
type Builder struct {
	prefix string
}

// WithPrefix creates a new Builder with the specified prefix
func WithPrefix(prefix string) *Builder {
	return &Builder{prefix: prefix}
}

// Init initializes the global Identifier instance using the builder's prefix
func (b *Builder) Init() error {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return err
	}
	return Init(cfg)
}

// New creates a new Identifier instance using the builder's prefix
func (b *Builder) New() (Identifier, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return nil, err
	}
	return NewFromConfig(cfg)
}

// Init initializes the global identifier instance. Without an explicit
// config the environment is consulted.
func Init(configs ...*Config) error {
	defaultOnce.Do(func() {
		var cfg *Config
		if len(configs) > 0 {
			cfg = configs[0]
		} else {
			cfg, defaultErr = GetConfig()
			if defaultErr != nil {
				return
			}
		}

		defaultIdent, defaultErr = NewFromConfig(cfg)
	})

	return defaultErr
}

// Default returns the global identifier instance. Init must have been
// called first.
func Default() Identifier {
	return defaultIdent
}

// NewFromConfig creates a new identifier instance with the given
// config, wrapping the raw binding in a caching decorator when result
// caching is enabled.
func NewFromConfig(cfg *Config) (Identifier, error) {
	m, err := New(cfg.options()...)
	if err != nil {
		return nil, err
	}

	var ident Identifier = m
	if cfg.CacheEnabled {
		cache := NewMemoryCache()
		if cfg.CacheMaxEntries > 0 {
			cache = NewMemoryCacheWithLimit(cfg.CacheMaxEntries)
		}
		ident = NewCachingIdentifier(ident, cache,
			WithCacheTTL(time.Duration(cfg.CacheTTLSeconds)*time.Second),
		)
	}

	return ident, nil
}
