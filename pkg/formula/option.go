package formula

// Option configures tokenizing and parsing.
type Option func(*config)

type config struct {
	whitespace Whitespace
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithWhitespace selects the characters that may separate tokens. The
// default is SpaceOnly.
func WithWhitespace(w Whitespace) Option {
	return func(c *config) { c.whitespace = w }
}
