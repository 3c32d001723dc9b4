package tag

// Options holds configuration for default tag processing
type Options struct {
	tagName  string
	maxDepth int
}

// Option is a function that configures Options
type Option func(*Options)

// WithTagName sets the tag name to look for (default: "default")
func WithTagName(name string) Option {
	return func(o *Options) {
		o.tagName = name
	}
}

// WithMaxDepth sets the maximum recursion depth (default: 32)
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		o.maxDepth = depth
	}
}

// newOptions creates a new Options with defaults
func newOptions(opts []Option) *Options {
	options := &Options{
		tagName:  "default",
		maxDepth: 32,
	}

	for _, opt := range opts {
		opt(options)
	}

	return options
}
