// Package options provides functional options for the top-level APIs.
package options

const (
	DefaultLogMode  = "SIMPLE"
	DefaultLogLevel = "INFO"

	DefaultMaxDepth = 1000
)

type Options struct {
	// Log options.
	Log *LogOption `yaml:"log"`
	// Parse options.
	Parse *ParseOption `yaml:"parse"`
	// Output options.
	Output *OutputOption `yaml:"output"`
}

// LogOption specifies how the logger behaves.
type LogOption struct {
	// Log mode: SIMPLE, FULL.
	//
	// Default: "SIMPLE".
	Mode string `yaml:"mode"`
	// Log level: DEBUG, INFO, WARN, ERROR.
	//
	// Default: "INFO".
	Level string `yaml:"level"`
	// Log filename: set this if you want to write log messages to files.
	//
	// Default: "".
	Filename string `yaml:"filename"`
	// Log sink: CONSOLE, FILE, and MULTI.
	//
	// Default: "CONSOLE".
	Sink string `yaml:"sink"`
}

// ParseOption specifies parser behavior.
type ParseOption struct {
	// MaxDepth is the maximum container nesting depth the parser accepts.
	//
	// Default: 1000.
	MaxDepth int `yaml:"maxDepth"`
}

// OutputOption specifies how output text is produced.
type OutputOption struct {
	// Validate re-parses the produced output with an independent JSON
	// parser before writing it out.
	//
	// Default: false.
	Validate bool `yaml:"validate"`
}

// Option is the functional option type.
type Option func(*Options)

// Log sets the log options.
func Log(o *LogOption) Option {
	return func(opts *Options) {
		opts.Log = o
	}
}

// Parse sets the parse options.
func Parse(o *ParseOption) Option {
	return func(opts *Options) {
		opts.Parse = o
	}
}

// Output sets the output options.
func Output(o *OutputOption) Option {
	return func(opts *Options) {
		opts.Output = o
	}
}

// NewDefault returns the default options.
func NewDefault() *Options {
	return &Options{
		Log: &LogOption{
			Mode:  DefaultLogMode,
			Level: DefaultLogLevel,
		},
		Parse: &ParseOption{
			MaxDepth: DefaultMaxDepth,
		},
		Output: &OutputOption{},
	}
}

// ParseOptions parses functional options and merges them into the defaults.
func ParseOptions(setters ...Option) *Options {
	opts := NewDefault()
	for _, setter := range setters {
		setter(opts)
	}
	return opts
}
