package pipeline

import "github.com/rs/zerolog"

// Option configures compilation.
type Option func(*compiler)

// WithLogger logs compiled levels and executions at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(c *compiler) { c.log = log }
}
