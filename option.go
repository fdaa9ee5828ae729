// option.go — per-kind construction policy.
package usererror

// config is the construction policy a Kind applies to every error it builds.
// Derived kinds start from a copy of their parent's config.
type config struct {
	defaultMsg   string
	captureStack bool
	stackDepth   int
}

// Option configures a kind created by Extend or KindOf.
type Option func(*config)

// WithDefaultMessage sets the message Default uses for this kind and, unless
// they override it, for kinds derived from it.
func WithDefaultMessage(msg string) Option {
	return func(c *config) {
		c.defaultMsg = msg
	}
}

// WithoutStack disables stack capture for the kind. Construction stays
// allocation-light and Stack returns nil.
func WithoutStack() Option {
	return func(c *config) {
		c.captureStack = false
	}
}

// WithStack re-enables stack capture on a kind whose parent disabled it.
func WithStack() Option {
	return func(c *config) {
		c.captureStack = true
	}
}

// WithStackDepth bounds the number of captured frames. Values <= 0 restore the
// default bound.
func WithStackDepth(n int) Option {
	return func(c *config) {
		if n <= 0 {
			n = defaultMaxDepth
		}
		c.stackDepth = n
	}
}

func (c config) derive(opts []Option) config {
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}
