package emit

// Logger is the surface the package traces registry activity through. The
// default is a noop; inject an implementation with WithLogger. Listener
// failures are never logged, they are returned to the emit caller.
type Logger interface {
	WithField(key string, value any) Logger
	Debugf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) WithField(string, any) Logger { return noopLogger{} }

func (noopLogger) Debugf(string, ...any) {}
