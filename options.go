package magickit

// Option represents a configuration option for a Magic handle
type Option func(*Options)

// Options contains all possible options for opening a handle
type Options struct {
	// Flags is the libmagic flag bitmask the handle is opened with
	Flags Flag

	// Databases lists magic database files to load instead of the
	// system default
	Databases []string
}

func applyOptions(opts []Option) Options {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// WithFlags sets the raw flag bitmask, replacing any flags set by
// earlier options
func WithFlags(flags Flag) Option {
	return func(o *Options) {
		o.Flags = flags
	}
}

// WithMIMEType makes the handle return MIME types instead of textual
// descriptions
func WithMIMEType() Option {
	return func(o *Options) {
		o.Flags |= FlagMIMEType
	}
}

// WithMIMEEncoding makes the handle return the MIME encoding (charset)
func WithMIMEEncoding() Option {
	return func(o *Options) {
		o.Flags |= FlagMIMEEncoding
	}
}

// WithKeepGoing makes the handle report all matches instead of
// stopping at the first
func WithKeepGoing() Option {
	return func(o *Options) {
		o.Flags |= FlagContinue
	}
}

// WithUncompress makes the handle look inside compressed files
func WithUncompress() Option {
	return func(o *Options) {
		o.Flags |= FlagCompress
	}
}

// WithFollowSymlinks makes the handle follow symlinks instead of
// describing the link itself
func WithFollowSymlinks() Option {
	return func(o *Options) {
		o.Flags |= FlagSymlink
	}
}

// WithPreserveATime restores file access times after reading
func WithPreserveATime() Option {
	return func(o *Options) {
		o.Flags |= FlagPreserveATime
	}
}

// WithRaw disables translation of unprintable characters in results
func WithRaw() Option {
	return func(o *Options) {
		o.Flags |= FlagRaw
	}
}

// WithDatabase loads the magic databases at the given paths instead of
// the system default
func WithDatabase(paths ...string) Option {
	return func(o *Options) {
		o.Databases = append(o.Databases, paths...)
	}
}
