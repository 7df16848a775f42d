package load

type Options struct {
	// MaxDepth is the maximum container nesting depth the JSON parser
	// accepts. Values <= 0 keep the parser's default.
	//
	// Default: 0.
	MaxDepth int
}

// Option is the functional option type.
type Option func(*Options)

// MaxDepth sets the maximum container nesting depth for JSON input.
func MaxDepth(n int) Option {
	return func(opts *Options) {
		opts.MaxDepth = n
	}
}

func newDefault() *Options {
	return &Options{}
}

// ParseOptions parses functional options and merges them into the defaults.
func ParseOptions(setters ...Option) *Options {
	opts := newDefault()
	for _, setter := range setters {
		setter(opts)
	}
	return opts
}
