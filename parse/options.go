package parse

// DefaultMaxDepth bounds container nesting so that adversarial input cannot
// exhaust the goroutine stack through the mutually recursive descent.
const DefaultMaxDepth = 1000

type Options struct {
	// Maximum container nesting depth before the parse fails with
	// ErrDepthExceeded.
	//
	// Default: DefaultMaxDepth.
	MaxDepth int
}

// Option is the functional option type.
type Option func(*Options)

// MaxDepth sets the maximum container nesting depth. Values <= 0 keep the
// default.
func MaxDepth(n int) Option {
	return func(opts *Options) {
		if n > 0 {
			opts.MaxDepth = n
		}
	}
}

func newDefault() *Options {
	return &Options{
		MaxDepth: DefaultMaxDepth,
	}
}

// ParseOptions parses functional options and merges them into the defaults.
func ParseOptions(setters ...Option) *Options {
	opts := newDefault()
	for _, setter := range setters {
		setter(opts)
	}
	return opts
}
