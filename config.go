package magickit

import (
	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Database is an optional magic database path (colon-separated for
	// multiple files). Empty means the system default.
	Database string `env:"MAGICKIT_DATABASE"`

	// Result mode
	MIME         bool `env:"MAGICKIT_MIME,default:false"`
	MIMEEncoding bool `env:"MAGICKIT_MIME_ENCODING,default:false"`

	// Detection behavior
	KeepGoing      bool `env:"MAGICKIT_KEEP_GOING,default:false"`
	Uncompress     bool `env:"MAGICKIT_UNCOMPRESS,default:false"`
	FollowSymlinks bool `env:"MAGICKIT_FOLLOW_SYMLINKS,default:false"`
	PreserveATime  bool `env:"MAGICKIT_PRESERVE_ATIME,default:false"`

	// Result caching. CacheMaxEntries bounds the cache size;
	// 0 means unlimited.
	CacheEnabled    bool  `env:"MAGICKIT_CACHE_ENABLED,default:false"`
	CacheTTLSeconds int64 `env:"MAGICKIT_CACHE_TTL_SECONDS,default:300"`
	CacheMaxEntries int   `env:"MAGICKIT_CACHE_MAX_ENTRIES,default:0"`

	// Scanner defaults: comma-separated glob patterns
	ScanInclude string `env:"MAGICKIT_SCAN_INCLUDE"`
	ScanExclude string `env:"MAGICKIT_SCAN_EXCLUDE"`

	// Watcher event coalescing window in milliseconds; 0 classifies
	// every filesystem event immediately.
	WatchDebounceMS int64 `env:"MAGICKIT_WATCH_DEBOUNCE_MS,default:0"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// options translates the config into handle options.
func (c *Config) options() []Option {
	var flags Flag
	if c.MIME {
		flags |= FlagMIMEType
	} else if c.MIMEEncoding {
		flags |= FlagMIMEEncoding
	}
	if c.KeepGoing {
		flags |= FlagContinue
	}
	if c.Uncompress {
		flags |= FlagCompress
	}
	if c.FollowSymlinks {
		flags |= FlagSymlink
	}
	if c.PreserveATime {
		flags |= FlagPreserveATime
	}

	opts := []Option{WithFlags(flags)}
	if c.Database != "" {
		opts = append(opts, WithDatabase(c.Database))
	}
	return opts
}
