package log

// nullLogger is a logger that discards everything. Useful for tests
// that construct a Machine without caring about its log output.
type nullLogger struct{}

func (n nullLogger) Infof(format string, args ...interface{})  {}
func (n nullLogger) Errorf(format string, args ...interface{}) {}
func (n nullLogger) Debugf(format string, args ...interface{}) {}

// NewNullLogger returns a logger that does nothing.
func NewNullLogger() Logger {
	return nullLogger{}
}
