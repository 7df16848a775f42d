package store

type Options struct {
	// Output file name (without file extension).
	//
	// Default: "".
	Name string
	// Validate re-parses the marshaled output with an independent JSON
	// parser before writing it.
	//
	// Default: false.
	Validate bool
}

// Option is the functional option type.
type Option func(*Options)

// Name sets the output file name (without file extension).
func Name(name string) Option {
	return func(opts *Options) {
		opts.Name = name
	}
}

// Validate enables post-marshal validation of the output text.
func Validate(validate bool) Option {
	return func(opts *Options) {
		opts.Validate = validate
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
