package tile

// Config holds the build-time bounds-check toggle for element access,
// resolved at construction from functional options. It is a plain
// configuration struct consulted once, never mutable process-wide state —
// the same functional-options idiom used throughout this module
// (layout.Option mirrors it for CheckDims).
type Config struct {
	CheckBounds bool
}

// Option configures a Tile at construction.
type Option func(*Config)

// WithCheckBounds enables the build-time bounds-check toggle: out-of-range
// element access returns an OutOfRangeError instead of the default
// undefined behaviour. Off by default, since the check costs a branch on
// every access that most release builds don't want to pay for.
func WithCheckBounds() Option {
	return func(c *Config) { c.CheckBounds = true }
}

func resolveConfig(opts ...Option) Config {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
