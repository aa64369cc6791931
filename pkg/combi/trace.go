package combi

import "github.com/charmbracelet/log"

// Option configures the optional ambient behavior of a combinator
// constructor. Only SectionP currently takes options — it is the one
// combinator with enough internal structure (bullet match, window build,
// shift) to be worth tracing.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger attaches a *log.Logger that SectionP logs to at Debug level on
// bullet match, body window construction and span shift. A nil logger (the
// default when no option is given) disables tracing entirely.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func buildOptions(opts []Option) *options {
	o := &options{}
	for _, apply := range opts {
		apply(o)
	}
	return o
}

func (o *options) debug(msg string, keyvals ...interface{}) {
	if o == nil || o.logger == nil {
		return
	}
	o.logger.Debug(msg, keyvals...)
}
