package drafthtml

import "github.com/riverfjs/drafthtml/internal/keys"

// KeyGenerator hands out block keys for one document.
type KeyGenerator = keys.Generator

// RandomKeys returns a generator of collision-checked 5-character keys.
func RandomKeys() KeyGenerator {
	return keys.Random()
}

// SequentialKeys returns a generator of "0", "1", "2", ...
func SequentialKeys() KeyGenerator {
	return keys.Sequential()
}

// ConvertOptions holds options for a conversion call.
type ConvertOptions struct {
	Config *Config
	Keys   KeyGenerator
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig sets a custom Config.
func WithConfig(config *Config) Option {
	return func(opts *ConvertOptions) {
		opts.Config = config
	}
}

// WithKeyGenerator sets the block key generator. A generator keeps state, so
// pass a fresh one per call unless keys should stay unique across documents.
func WithKeyGenerator(gen KeyGenerator) Option {
	return func(opts *ConvertOptions) {
		opts.Keys = gen
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.Config == nil {
		options.Config = DefaultConfig()
	}
	if options.Keys == nil {
		options.Keys = keys.Random()
	}
	return options
}
