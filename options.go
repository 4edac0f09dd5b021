package emit

type settings struct {
	log Logger
}

func defaultSettings() *settings {
	return &settings{log: noopLogger{}}
}

// Option configures an Emitter or a standalone Registry at construction time.
type Option func(*settings)

// WithLogger routes the registry's debug traces through l.
func WithLogger(l Logger) Option {
	return func(s *settings) { s.log = l }
}
