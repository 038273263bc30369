package sassrender

import "github.com/thatguystone/sassrender/internal"

// An Option is passed to NewRegistry() to change default options
type Option interface {
	applyTo(r *Registry)
}

type option func(r *Registry)

func (o option) applyTo(r *Registry) { o(r) }

// LogTo sets the log function
func LogTo(logf func(string, ...interface{})) Option {
	return option(func(r *Registry) {
		r.log = internal.NewLogger("sassrender", logf)
	})
}
